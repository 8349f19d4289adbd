package vlseq

import (
	"fmt"
	"iter"
)

// Seq is a variable-length sequence of elements with small-buffer storage.
//
// Elements live in a fixed inline store while the size does not exceed the
// configured inline threshold N, and in an exclusively owned heap buffer
// beyond that. The container shifts, grows and shrinks storage transparently;
// see the package documentation for the storage invariants.
//
// A Seq must be created through one of the constructors. It is not safe for
// concurrent use.
type Seq[T comparable] struct {
	cfg  Config
	mode StorageMode
	size int
	// inlineStore is the fixed backing storage for inline mode; live elements
	// are inlineStore[:size] while mode == StorageInline. While the heap
	// buffer is authoritative the inline store is kept zeroed, so a spilled
	// sequence never pins dead element references.
	inlineStore [MaxInlineCap]T
	// heap is the owned spill buffer; nil in inline mode. In heap mode
	// len(heap) is the authoritative capacity and always exceeds the inline
	// threshold.
	heap []T
}

// New creates an empty sequence with validated configuration.
func New[T comparable](cfg Config) (*Seq[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Seq[T]{cfg: cfg}, nil
}

// NewFill creates a sequence holding count copies of value.
//
// The sequence starts out inline if count fits the inline threshold, otherwise
// it is heap-backed from the start, sized by the growth policy.
func NewFill[T comparable](cfg Config, count int, value T) (*Seq[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative fill count %d", ErrInvalidRange, count)
	}
	s, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	if count > s.cfg.InlineCap {
		s.heap = make([]T, s.capacityFor(count))
		s.mode = StorageHeap
	}
	buf := s.active()
	for i := 0; i < count; i++ {
		buf[i] = value
	}
	s.size = count
	return s, nil
}

// FromSlice creates a sequence holding a copy of elems, in order.
//
// The input slice is not retained; the sequence owns its storage exclusively.
func FromSlice[T comparable](cfg Config, elems []T) (*Seq[T], error) {
	s, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	if len(elems) > s.cfg.InlineCap {
		s.heap = make([]T, s.capacityFor(len(elems)))
		s.mode = StorageHeap
	}
	copy(s.active(), elems)
	s.size = len(elems)
	return s, nil
}

// Collect creates a sequence from a Go iterator, in iteration order.
func Collect[T comparable](cfg Config, elems iter.Seq[T]) (*Seq[T], error) {
	s, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return s, nil
	}
	for v := range elems {
		s.PushBack(v)
	}
	return s, nil
}

// Config returns a copy of the effective sequence configuration.
func (s *Seq[T]) Config() Config {
	return s.cfg
}

// Len returns the number of live elements.
func (s *Seq[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the sequence has no elements.
func (s *Seq[T]) IsEmpty() bool {
	return s.size == 0
}

// String renders the live elements for debugging.
func (s *Seq[T]) String() string {
	return fmt.Sprint(s.Data())
}
