package vlseq

import "iter"

// Each visits elements in order.
//
// Iteration stops early if fn returns false. Mutating the sequence from
// within fn is undefined.
func (s *Seq[T]) Each(fn func(value T) bool) {
	if fn == nil {
		return
	}
	for _, v := range s.active()[:s.size] {
		if !fn(v) {
			return
		}
	}
}

// Values returns an iterator over all elements in order.
func (s *Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.active()[:s.size] {
			if !yield(v) {
				return
			}
		}
	}
}

// Range returns an iterator over index/element pairs in order.
func (s *Seq[T]) Range() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.active()[:s.size] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// RangeBack returns an iterator over index/element pairs in reverse order.
func (s *Seq[T]) RangeBack() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		buf := s.active()
		for i := s.size - 1; i >= 0; i-- {
			if !yield(i, buf[i]) {
				return
			}
		}
	}
}
