package enumerate

// Option configures Run's progress reporting via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Run.
type Options struct {
	// OnProgress is called once each time processed-weight crosses one or
	// more ProgressInterval boundaries: canonical shapes processed, counted by
	// equivalence-class size rather than unique shapes, since each
	// canonical shape silently stands in for every rotation and mirror
	// of itself.
	OnProgress func(processed uint64)

	// ProgressInterval is the processed-weight step between OnProgress
	// calls. The default suits a production-scale run; tests lower it to
	// observe the callback without a full enumeration.
	ProgressInterval uint64
}

// DefaultOptions returns an Options with sane defaults:
//   - no-op progress callback
//   - ProgressInterval of 10,000,000
func DefaultOptions() Options {
	return Options{
		OnProgress:       func(uint64) {},
		ProgressInterval: 10_000_000,
	}
}

// WithProgress installs a callback invoked once each time the processed
// weight crosses one or more ProgressInterval boundaries.
func WithProgress(fn func(processed uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithProgressInterval overrides the default 10,000,000 progress step.
// Non-positive values are ignored.
func WithProgressInterval(n uint64) Option {
	return func(o *Options) {
		if n > 0 {
			o.ProgressInterval = n
		}
	}
}
