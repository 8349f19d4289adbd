package vlseq

import "fmt"

const (
	// MaxInlineCap is the fixed per-sequence inline storage footprint in
	// elements. Config.InlineCap may select any threshold up to this bound.
	MaxInlineCap = 16
	// DefaultInlineCap is the inline threshold used when Config.InlineCap is
	// left zero.
	DefaultInlineCap = MaxInlineCap
)

// Config configures a sequence container.
type Config struct {
	// InlineCap is the inline element threshold N: the sequence stays free of
	// heap allocations while its size does not exceed N. Zero selects
	// DefaultInlineCap. Valid values are 1..MaxInlineCap.
	InlineCap int
	// OnTransition, when set, is called synchronously after every storage
	// migration (inline to heap, heap regrow, heap back to inline). The hook
	// runs on the mutating goroutine; it must not call back into the sequence.
	OnTransition func(Transition)
}

func (cfg Config) normalized() Config {
	if cfg.InlineCap == 0 {
		cfg.InlineCap = DefaultInlineCap
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.InlineCap < 1 || cfg.InlineCap > MaxInlineCap {
		return fmt.Errorf("%w: inline capacity must be in 1..%d", ErrInvalidConfig, MaxInlineCap)
	}
	return nil
}
