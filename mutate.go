package vlseq

import (
	"fmt"
	"unsafe"
)

// Insert inserts values immediately before index, preserving the relative
// order of all existing elements. index may equal Len(), which appends.
// The first inserted element ends up at index; indices of elements before
// index are unaffected.
//
// Inserting elements that alias the sequence's own storage (such as a view
// returned by Data) is safe: values are copied out before the live range is
// shifted or the storage is reallocated.
func (s *Seq[T]) Insert(index int, values ...T) error {
	if index < 0 || index > s.size {
		return fmt.Errorf("%w: insert position %d with size %d", ErrIndexOutOfBounds, index, s.size)
	}
	if len(values) == 0 {
		return nil
	}
	if s.size+len(values) <= s.Cap() {
		s.insertInPlace(index, values)
	} else {
		s.insertGrow(index, values)
	}
	return nil
}

// PushBack appends an element, growing storage as needed.
func (s *Seq[T]) PushBack(value T) {
	err := s.Insert(s.size, value)
	assert(err == nil, "PushBack: append position cannot be out of bounds")
}

// insertInPlace opens a window of len(values) slots at index within the
// authoritative buffer and fills it. No allocation, except when values alias
// the region about to be shifted.
func (s *Seq[T]) insertInPlace(index int, values []T) {
	buf := s.active()
	if index < s.size && overlaps(values, buf[:s.size]) {
		values = append([]T(nil), values...)
	}
	copy(buf[index+len(values):s.size+len(values)], buf[index:s.size])
	copy(buf[index:], values)
	s.size += len(values)
}

// insertGrow allocates a heap buffer sized by the growth policy and assembles
// prefix, values and suffix into it. The previous storage is read completely
// before it is released, so values may alias it.
func (s *Seq[T]) insertGrow(index int, values []T) {
	from := s.mode
	dst := make([]T, s.capacityFor(s.size+len(values)))
	src := s.active()
	n := copy(dst, src[:index])
	n += copy(dst[n:], values)
	copy(dst[n:], src[index:s.size])
	if s.mode == StorageInline {
		clear(s.inlineStore[:])
	}
	s.heap = dst
	s.mode = StorageHeap
	s.size += len(values)
	s.fireTransition(from)
}

// Erase removes the element range [first,last), shifting all elements after
// last leftward. If the sequence is heap-backed and the resulting size fits
// the inline threshold, storage migrates back to the inline store and the
// heap buffer is released.
func (s *Seq[T]) Erase(first, last int) error {
	if first < 0 || last < first || last > s.size {
		return fmt.Errorf("%w: erase range [%d,%d) with size %d", ErrInvalidRange, first, last, s.size)
	}
	if first == last {
		return nil
	}
	buf := s.active()
	copy(buf[first:], buf[last:s.size])
	removed := last - first
	clear(buf[s.size-removed : s.size])
	s.size -= removed
	if s.mode == StorageHeap && s.size <= s.cfg.InlineCap {
		s.shrinkToInline()
	}
	return nil
}

// Remove removes the single element at index.
func (s *Seq[T]) Remove(index int) error {
	if index < 0 || index >= s.size {
		return fmt.Errorf("%w: remove position %d with size %d", ErrIndexOutOfBounds, index, s.size)
	}
	return s.Erase(index, index+1)
}

// PopBack removes the last element. It is a no-op on an empty sequence.
func (s *Seq[T]) PopBack() {
	if s.size == 0 {
		return
	}
	err := s.Erase(s.size-1, s.size)
	assert(err == nil, "PopBack: last element range cannot be invalid")
}

// Clear removes all elements. A heap-backed sequence reverts to inline
// storage and releases its heap buffer.
func (s *Seq[T]) Clear() {
	if s.mode == StorageHeap {
		s.size = 0
		s.shrinkToInline()
		return
	}
	clear(s.inlineStore[:s.size])
	s.size = 0
}

// overlaps reports whether two slices share backing array elements.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	elem := unsafe.Sizeof(a[0])
	alo := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	blo := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	ahi := alo + uintptr(len(a))*elem
	bhi := blo + uintptr(len(b))*elem
	return alo < bhi && blo < ahi
}
