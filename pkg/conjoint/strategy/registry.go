package strategy

// Strategy names accepted by the registry. The active strategy is an
// experiment-level configuration choice fixed at boot, never per call.
const (
	NameSeeded      = "seeded"
	NameBalanced    = "balanced"
	NameFactorial   = "factorial"
	NameConstrained = "constrained"
	NameDOptimal    = "doptimal"
)

// Options carries the per-variant tuning knobs.
type Options struct {
	MinDifferences int
	Rules          []Rule
}

// New builds the named strategy, defaulting to balanced for unknown names so
// a misconfigured deployment still produces usable pairs.
func New(name string, opts Options) Strategy {
	switch name {
	case NameSeeded:
		return NewSeededRandom()
	case NameFactorial:
		return NewFullFactorial()
	case NameConstrained:
		return NewConstrainedRandom(opts.Rules)
	case NameDOptimal:
		return NewDOptimal()
	case NameBalanced:
		return NewBalancedRandom(opts.MinDifferences)
	default:
		return NewBalancedRandom(opts.MinDifferences)
	}
}
