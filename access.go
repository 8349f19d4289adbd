package vlseq

import "fmt"

// At returns the element at index, bounds-checked.
func (s *Seq[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= s.size {
		return zero, fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfBounds, index, s.size)
	}
	return s.active()[index], nil
}

// Get returns the element at index without a checked error path.
//
// Callers must guarantee 0 <= index < Len(); violations panic.
func (s *Seq[T]) Get(index int) T {
	return s.active()[:s.size][index]
}

// Set replaces the element at index, bounds-checked.
func (s *Seq[T]) Set(index int, value T) error {
	if index < 0 || index >= s.size {
		return fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfBounds, index, s.size)
	}
	s.active()[index] = value
	return nil
}

// First returns the first element.
func (s *Seq[T]) First() (T, error) {
	return s.At(0)
}

// Last returns the last element.
func (s *Seq[T]) Last() (T, error) {
	return s.At(s.size - 1)
}

// Index returns the position of the first element equal to value, or -1 if no
// element matches. The scan is linear over the live range.
func (s *Seq[T]) Index(value T) int {
	for i, v := range s.active()[:s.size] {
		if v == value {
			return i
		}
	}
	return -1
}

// Contains reports whether some live element equals value.
func (s *Seq[T]) Contains(value T) bool {
	return s.Index(value) >= 0
}

// Data returns the live elements as a borrowed view into the authoritative
// storage. Writes through the view are visible to the sequence. The view is
// invalidated by any capacity-changing mutation; it must not be appended to.
func (s *Seq[T]) Data() []T {
	return s.active()[:s.size:s.size]
}
