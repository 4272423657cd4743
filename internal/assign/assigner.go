// Package assign places students into working groups within their tutorial.
// Tutorials are processed independently in ascending numeric order, each one
// shuffled with randomness drawn from a single seeded source, so a fixed
// seed and a fixed input order always reproduce the same assignment.
package assign

import (
	"fmt"
	"math/rand"

	"github.com/unimelb-cmce-10002/group-generator/internal/errors"
	"github.com/unimelb-cmce-10002/group-generator/internal/logging"
	"github.com/unimelb-cmce-10002/group-generator/internal/partition"
	"github.com/unimelb-cmce-10002/group-generator/internal/roster"
)

// Assigner splits a roster into working groups of 3 and 4 per tutorial.
type Assigner struct {
	seed        int64
	preferred   int
	minimum     int
	labelPrefix string
	logger      *logging.Logger
}

// New creates an Assigner for the given shuffle seed. The seed must be
// threaded through from the caller unchanged: it is the only source of
// randomness for the whole run.
//
// Defaults: preferred size 4, minimum size 3, no label prefix.
func New(seed int64, opts ...Option) (*Assigner, error) {
	a := &Assigner{
		seed:      seed,
		preferred: partition.MaxSize,
		minimum:   partition.MinSize,
		logger:    logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}

	// The larger size is always the preferred one.
	if a.minimum > a.preferred {
		a.preferred, a.minimum = a.minimum, a.preferred
	}
	if a.minimum != partition.MinSize || a.preferred != partition.MaxSize {
		return nil, errors.NewConfigError(
			fmt.Sprintf("got preferred=%d minimum=%d", a.preferred, a.minimum),
			errors.ErrUnsupportedGroupSizes,
		).WithField("assign.preferred_size")
	}

	return a, nil
}

// Assign returns a copy of students with tutorial-scoped group ids stamped
// on every record. The input slice is never mutated.
//
// Per tutorial, members are shuffled and then dealt into groups following
// the size sequence from partition.Sizes: group 1 takes the first sizes[0]
// shuffled members, group 2 the next sizes[1], and so on.
//
// The run fails fast: the first tutorial whose headcount cannot be packed
// aborts the whole assignment with a *errors.PartitionError tagged with
// that tutorial, and no output is returned for any tutorial.
func (a *Assigner) Assign(students []roster.Student) ([]roster.Student, error) {
	out := make([]roster.Student, len(students))
	copy(out, students)

	// Indices into out, keyed by tutorial, in input order.
	byTutorial := make(map[int][]int)
	for i := range out {
		t := out[i].Tutorial
		byTutorial[t] = append(byTutorial[t], i)
	}

	// One random source for the whole run, consumed tutorial by tutorial in
	// ascending order. Changing the visiting order would change every
	// tutorial's draw, so the order is part of the reproducibility contract.
	rng := rand.New(rand.NewSource(a.seed))

	log := a.logger.WithSeed(a.seed)
	for _, tutorial := range roster.Tutorials(out) {
		members := byTutorial[tutorial]
		rng.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})

		sizes, err := partition.Sizes(len(members))
		if err != nil {
			var pErr *errors.PartitionError
			if errors.As(err, &pErr) {
				return nil, pErr.WithStratum(tutorial)
			}
			return nil, err
		}

		pos := 0
		for g, size := range sizes {
			for k := 0; k < size; k++ {
				s := &out[members[pos+k]]
				s.GroupID = g + 1
				if a.labelPrefix != "" {
					s.GroupLabel = fmt.Sprintf("%s Group %d", a.labelPrefix, g+1)
				}
			}
			pos += size
		}

		log.WithTutorial(tutorial).Debug("packed tutorial",
			"students", len(members),
			"groups", len(sizes),
		)
	}

	return out, nil
}

// Seed returns the shuffle seed the assigner was built with.
func (a *Assigner) Seed() int64 {
	return a.seed
}
