package vlseq

// StorageMode identifies which storage region of a sequence is authoritative.
//
// The mode is a first-class tag rather than an inference from capacity values,
// so that storage dispatch is exhaustive and cannot be confused by numeric
// coincidence.
type StorageMode uint8

const (
	// StorageInline marks the fixed inline store as authoritative.
	StorageInline StorageMode = iota
	// StorageHeap marks the owned heap buffer as authoritative.
	StorageHeap
)

func (m StorageMode) String() string {
	switch m {
	case StorageInline:
		return "inline"
	case StorageHeap:
		return "heap"
	}
	return "invalid"
}

// Transition describes a single storage migration of a sequence.
//
// Size and Cap are the values after the migration completed.
type Transition struct {
	From StorageMode
	To   StorageMode
	Size int
	Cap  int
}

// active returns the authoritative buffer at full capacity length.
//
// Live elements are active()[:size]; slots beyond that are vacant capacity.
func (s *Seq[T]) active() []T {
	if s.mode == StorageHeap {
		return s.heap
	}
	return s.inlineStore[:s.cfg.InlineCap]
}

// Cap returns the maximum element count the authoritative storage can hold
// without reallocation.
func (s *Seq[T]) Cap() int {
	if s.mode == StorageHeap {
		return len(s.heap)
	}
	return s.cfg.InlineCap
}

// IsInline reports whether the sequence currently lives in its inline store,
// i.e. holds no heap allocation.
func (s *Seq[T]) IsInline() bool {
	return s.mode == StorageInline
}

// capacityFor computes the capacity for holding total elements: the inline
// threshold while it suffices, otherwise ceil(1.5 * total).
func (s *Seq[T]) capacityFor(total int) int {
	if total <= s.cfg.InlineCap {
		return s.cfg.InlineCap
	}
	return (3*total + 1) / 2
}

// shrinkToInline copies the live elements back into the inline store and
// releases the heap buffer. The caller must have ensured size <= InlineCap.
func (s *Seq[T]) shrinkToInline() {
	assert(s.mode == StorageHeap, "shrinkToInline called in inline mode")
	assert(s.size <= s.cfg.InlineCap, "shrinkToInline with size above inline threshold")
	copy(s.inlineStore[:], s.heap[:s.size])
	s.heap = nil
	s.mode = StorageInline
	s.fireTransition(StorageHeap)
}

func (s *Seq[T]) fireTransition(from StorageMode) {
	tracer().Debugf("seq storage %s -> %s (size=%d, cap=%d)", from, s.mode, s.size, s.Cap())
	if s.cfg.OnTransition != nil {
		s.cfg.OnTransition(Transition{
			From: from,
			To:   s.mode,
			Size: s.size,
			Cap:  s.Cap(),
		})
	}
}
