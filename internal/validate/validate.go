// Package validate checks an assignment after the fact. It only inspects
// the final (tutorial, group) membership counts, so it is independent of how
// the assignment was produced and catches any packing or stamping bug that
// left a group outside the allowed sizes.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unimelb-cmce-10002/group-generator/internal/roster"
)

// Violation is one group whose membership count failed a check.
type Violation struct {
	// Tutorial is the tutorial group number the group belongs to.
	Tutorial int
	// Group is the tutorial-scoped group id.
	Group int
	// Count is the observed membership count.
	Count int
}

// String renders the violation for user-facing messaging.
func (v Violation) String() string {
	return fmt.Sprintf("tutorial %d group %d has %d students", v.Tutorial, v.Group, v.Count)
}

// Violations is the full set of failing groups from one validation pass.
// It implements error, but callers are expected to treat it as data: an
// empty slice means the assignment passed, a non-empty one carries every
// failing group so the caller can report them all at once.
type Violations []Violation

// Error implements the error interface for Violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	if len(vs) == 1 {
		return vs[0].String()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d group size violations:\n", len(vs)))
	for i, v := range vs {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, v.String()))
	}
	return sb.String()
}

// OK reports whether the validation pass found no violations.
func (vs Violations) OK() bool {
	return len(vs) == 0
}

// GroupCount returns the number of distinct (tutorial, group) pairs in
// assigned, counting only stamped records.
func GroupCount(assigned []roster.Student) int {
	type key struct{ tutorial, group int }

	seen := make(map[key]bool)
	for i := range assigned {
		if assigned[i].GroupID > 0 {
			seen[key{assigned[i].Tutorial, assigned[i].GroupID}] = true
		}
	}
	return len(seen)
}

// Check recomputes the membership count of every (tutorial, group) pair in
// assigned and flags each group that is smaller than minSize or, when
// allowed is non-empty, whose count is not in allowed. A nil or empty
// allowed set disables the set check and leaves only the minimum, so a
// config with `allowed_sizes: []` behaves the same as one with the key
// absent.
//
// Unassigned records (group id 0) are always flagged, whatever their
// count, so stamping gaps surface instead of hiding.
//
// Check never stops at the first failure; the result lists every failing
// group, ordered by tutorial then group id. Whether a failure aborts the
// run or is merely logged is the caller's policy.
func Check(assigned []roster.Student, minSize int, allowed []int) Violations {
	type key struct{ tutorial, group int }

	counts := make(map[key]int)
	for i := range assigned {
		counts[key{assigned[i].Tutorial, assigned[i].GroupID}]++
	}

	allowedSet := make(map[int]bool, len(allowed))
	for _, n := range allowed {
		allowedSet[n] = true
	}

	var violations Violations
	for k, count := range counts {
		if k.group == 0 || count < minSize || (len(allowed) > 0 && !allowedSet[count]) {
			violations = append(violations, Violation{
				Tutorial: k.tutorial,
				Group:    k.group,
				Count:    count,
			})
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Tutorial != violations[j].Tutorial {
			return violations[i].Tutorial < violations[j].Tutorial
		}
		return violations[i].Group < violations[j].Group
	})
	return violations
}
