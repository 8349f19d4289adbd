package vlseq

// Equal reports whether two sequences hold the same elements in the same
// order. Capacity and storage mode take no part in the comparison: an inline
// sequence and a heap-backed one holding equal elements compare equal.
func (s *Seq[T]) Equal(other *Seq[T]) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.size != other.size {
		return false
	}
	a, b := s.active(), other.active()
	for i := 0; i < s.size; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
//
// The copy mirrors the source's storage shape: an inline source clones without
// allocation beyond the container itself, a heap-backed source clones into a
// freshly owned heap buffer of equal capacity.
func (s *Seq[T]) Clone() *Seq[T] {
	if s == nil {
		return nil
	}
	cloned := &Seq[T]{
		cfg:  s.cfg,
		mode: s.mode,
		size: s.size,
	}
	if s.mode == StorageHeap {
		cloned.heap = make([]T, len(s.heap))
		copy(cloned.heap, s.heap[:s.size])
	} else {
		copy(cloned.inlineStore[:], s.inlineStore[:s.size])
	}
	return cloned
}

// CopyFrom makes s an independent deep copy of src, releasing any heap buffer
// s previously owned. The configuration is copied along with the elements.
// Copying a sequence onto itself is a no-op.
func (s *Seq[T]) CopyFrom(src *Seq[T]) {
	if s == src || src == nil {
		return
	}
	clear(s.inlineStore[:])
	s.cfg = src.cfg
	s.mode = src.mode
	s.size = src.size
	if src.mode == StorageHeap {
		s.heap = make([]T, len(src.heap))
		copy(s.heap, src.heap[:src.size])
	} else {
		s.heap = nil
		copy(s.inlineStore[:], src.inlineStore[:src.size])
	}
}
