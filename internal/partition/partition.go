// Package partition computes how a tutorial's headcount splits into working
// groups of 3 and 4. The split always uses as many groups of 4 as the count
// allows, falling back to groups of 3 only to absorb the remainder.
package partition

import (
	"github.com/unimelb-cmce-10002/group-generator/internal/errors"
)

// Group size bounds supported by the packing scheme.
const (
	// MinSize is the smallest group the scheme can produce.
	MinSize = 3
	// MaxSize is the preferred group size.
	MaxSize = 4
)

// Sizes returns the group sizes for a tutorial of n students, largest groups
// first. The result is the unique maximal-fours decomposition of n into parts
// of 3 and 4: no other valid split contains more groups of 4.
//
// The split is driven by n mod 4:
//
//	r == 0: n/4 groups of 4
//	r == 1: (n-9)/4 groups of 4, then three groups of 3 (4+4+1 -> 3+3+3)
//	r == 2: (n-6)/4 groups of 4, then two groups of 3   (4+2 -> 3+3)
//	r == 3: (n-3)/4 groups of 4, then one group of 3
//
// n == 0 yields an empty slice: an empty tutorial forms zero groups.
// For n in {1, 2, 5} no decomposition exists and Sizes returns a
// *errors.PartitionError wrapping errors.ErrInfeasiblePartition.
//
// Sizes is a pure function: the order of the returned slice is fixed for a
// given n, which keeps downstream assignment reproducible.
func Sizes(n int) ([]int, error) {
	if n == 0 {
		return []int{}, nil
	}
	if n == 1 || n == 2 || n == 5 {
		return nil, errors.NewPartitionError(n)
	}

	var fours, threes int
	switch n % 4 {
	case 0:
		fours = n / 4
	case 1:
		fours = (n - 9) / 4
		threes = 3
	case 2:
		fours = (n - 6) / 4
		threes = 2
	case 3:
		fours = (n - 3) / 4
		threes = 1
	}

	sizes := make([]int, 0, fours+threes)
	for i := 0; i < fours; i++ {
		sizes = append(sizes, MaxSize)
	}
	for i := 0; i < threes; i++ {
		sizes = append(sizes, MinSize)
	}
	return sizes, nil
}

// Feasible reports whether a tutorial of n students can be split at all.
// Only 1, 2 and 5 have no valid split; 0 splits into zero groups.
func Feasible(n int) bool {
	return n != 1 && n != 2 && n != 5
}
