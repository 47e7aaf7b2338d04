package arrange

// Option configures Arrange.
type Option func(*options)

type options struct {
	showSolutions bool
}

// WithSolutions adds the solution line under each problem.
func WithSolutions(show bool) Option {
	return func(o *options) {
		o.showSolutions = show
	}
}

// Arrange validates the problems and lays them out. Validation failures are
// returned as *ValidationError.
func Arrange(problems []string, opts ...Option) (*Arrangement, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := Validate(problems)
	if err != nil {
		return nil, err
	}
	return Layout(parsed, o.showSolutions), nil
}

// Format is the text-mode form of Arrange: it returns the arranged problems,
// or the validation message in place of the arrangement.
func Format(problems []string, showSolution bool) string {
	arrangement, err := Arrange(problems, WithSolutions(showSolution))
	if err != nil {
		return err.Error()
	}
	return arrangement.String()
}
