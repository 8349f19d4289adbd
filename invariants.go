package vlseq

import "fmt"

// Check validates structural container invariants.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving.
func (s *Seq[T]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil sequence", ErrInvalidConfig)
	}
	if err := s.cfg.validate(); err != nil {
		return err
	}
	if s.size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, s.size)
	}
	switch s.mode {
	case StorageInline:
		if s.heap != nil {
			return fmt.Errorf("%w: inline mode with heap buffer present", ErrInvalidConfig)
		}
		if s.size > s.cfg.InlineCap {
			return fmt.Errorf("%w: inline size %d exceeds threshold %d",
				ErrInvalidConfig, s.size, s.cfg.InlineCap)
		}
	case StorageHeap:
		if s.heap == nil {
			return fmt.Errorf("%w: heap mode without heap buffer", ErrInvalidConfig)
		}
		if len(s.heap) <= s.cfg.InlineCap {
			return fmt.Errorf("%w: heap capacity %d must exceed inline threshold %d",
				ErrInvalidConfig, len(s.heap), s.cfg.InlineCap)
		}
		if s.size > len(s.heap) {
			return fmt.Errorf("%w: size %d exceeds heap capacity %d",
				ErrInvalidConfig, s.size, len(s.heap))
		}
	default:
		return fmt.Errorf("%w: unknown storage mode %d", ErrInvalidConfig, s.mode)
	}
	if s.Cap() < s.cfg.InlineCap {
		return fmt.Errorf("%w: capacity %d below inline threshold %d",
			ErrInvalidConfig, s.Cap(), s.cfg.InlineCap)
	}
	return nil
}
