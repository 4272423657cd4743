package assign

import (
	"github.com/unimelb-cmce-10002/group-generator/internal/logging"
)

// Option configures an Assigner.
type Option func(*Assigner)

// WithSizes sets the preferred and minimum group sizes. The larger of the
// two is treated as preferred and the smaller as the floor, so the order of
// the arguments does not matter. Only the pair {3,4} is supported; anything
// else makes New fail with errors.ErrUnsupportedGroupSizes.
func WithSizes(preferred, minimum int) Option {
	return func(a *Assigner) {
		a.preferred = preferred
		a.minimum = minimum
	}
}

// WithLabelPrefix makes the assigner stamp each student with a group label
// of the form "<prefix> Group <id>". Without a prefix no label is stamped
// and the output layer builds its own from the tutorial and group id.
func WithLabelPrefix(prefix string) Option {
	return func(a *Assigner) {
		a.labelPrefix = prefix
	}
}

// WithLogger sets the logger for the assigner.
func WithLogger(logger *logging.Logger) Option {
	return func(a *Assigner) {
		a.logger = logger
	}
}
