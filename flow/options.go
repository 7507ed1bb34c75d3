package flow

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultVerbose keeps per-round tracing behind klog verbosity 2.
	DefaultVerbose = false

	// DefaultEnsureOptimal accepts any consistent layering; validators only
	// compare against the maximally-delayed one when asked to.
	DefaultEnsureOptimal = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	verbose       bool
	ensureOptimal bool
}

// WithVerbose promotes the finder's per-round trace events from klog
// verbosity 2 to unconditional info logging.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithEnsureOptimal makes validators additionally re-solve the instance
// and require the supplied layering to equal the maximally-delayed one,
// failing with ErrNotMaximallyDelayed otherwise.
func WithEnsureOptimal() Option {
	return func(o *Options) { o.ensureOptimal = true }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		verbose:       DefaultVerbose,
		ensureOptimal: DefaultEnsureOptimal,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
