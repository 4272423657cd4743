package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimelb-cmce-10002/group-generator/internal/assign"
	"github.com/unimelb-cmce-10002/group-generator/internal/roster"
)

// assigned builds students with explicit (tutorial, group, count) cells.
func assigned(cells map[[2]int]int) []roster.Student {
	var students []roster.Student
	for cell, count := range cells {
		for i := 0; i < count; i++ {
			students = append(students, roster.Student{
				ID:       fmt.Sprintf("t%d-g%d-s%d", cell[0], cell[1], i),
				Tutorial: cell[0],
				GroupID:  cell[1],
			})
		}
	}
	return students
}

func TestCheck_Passes(t *testing.T) {
	students := assigned(map[[2]int]int{
		{1, 1}: 4, {1, 2}: 4, {1, 3}: 3,
		{2, 1}: 3, {2, 2}: 3, {2, 3}: 3,
	})

	vs := Check(students, 3, []int{3, 4})

	require.True(t, vs.OK())
	require.Empty(t, vs)
}

func TestCheck_MinimumSize(t *testing.T) {
	students := assigned(map[[2]int]int{
		{1, 1}: 4,
		{1, 2}: 2, // undersized
		{2, 1}: 1, // undersized
	})

	vs := Check(students, 3, nil)

	require.False(t, vs.OK())
	require.Equal(t, Violations{
		{Tutorial: 1, Group: 2, Count: 2},
		{Tutorial: 2, Group: 1, Count: 1},
	}, vs)
}

func TestCheck_AllowedSizes(t *testing.T) {
	students := assigned(map[[2]int]int{
		{1, 1}: 4,
		{1, 2}: 5, // oversized: meets the minimum but not the allowed set
		{1, 3}: 3,
	})

	vs := Check(students, 3, []int{3, 4})

	require.Equal(t, Violations{{Tutorial: 1, Group: 2, Count: 5}}, vs)
}

func TestCheck_NilAllowedSkipsSetCheck(t *testing.T) {
	students := assigned(map[[2]int]int{{1, 1}: 7})

	vs := Check(students, 3, nil)

	require.True(t, vs.OK())
}

func TestCheck_EmptyAllowedSkipsSetCheck(t *testing.T) {
	// An explicit `allowed_sizes: []` in config unmarshals to a non-nil
	// empty slice; it must behave exactly like nil, not flag every group.
	students := assigned(map[[2]int]int{
		{1, 1}: 4,
		{1, 2}: 7,
	})

	vs := Check(students, 3, []int{})

	require.True(t, vs.OK())
}

func TestCheck_RaisedMinimumFlagsOnlyThrees(t *testing.T) {
	// With minimum 4 every 3-person group is a violation, and only those.
	students := assigned(map[[2]int]int{
		{1, 1}: 4, {1, 2}: 3,
		{2, 1}: 3, {2, 2}: 4,
	})

	vs := Check(students, 4, []int{3, 4})

	require.Equal(t, Violations{
		{Tutorial: 1, Group: 2, Count: 3},
		{Tutorial: 2, Group: 1, Count: 3},
	}, vs)
}

func TestCheck_UnassignedStudentsAreFlagged(t *testing.T) {
	students := assigned(map[[2]int]int{
		{1, 1}: 3,
		{1, 0}: 1, // never stamped
	})

	vs := Check(students, 3, []int{3, 4})

	require.Equal(t, Violations{{Tutorial: 1, Group: 0, Count: 1}}, vs)
}

func TestCheck_EmptyInput(t *testing.T) {
	require.True(t, Check(nil, 3, []int{3, 4}).OK())
}

// TestCheck_FreshAssignmentAlwaysPasses runs the real assigner over a spread
// of tutorial sizes and confirms validation accepts its output.
func TestCheck_FreshAssignmentAlwaysPasses(t *testing.T) {
	var students []roster.Student
	for tutorial, n := range map[int]int{1: 3, 2: 11, 3: 9, 4: 26, 5: 40} {
		for i := 0; i < n; i++ {
			students = append(students, roster.Student{
				ID:       fmt.Sprintf("t%d-s%d", tutorial, i),
				Tutorial: tutorial,
			})
		}
	}

	a, err := assign.New(99)
	require.NoError(t, err)

	out, err := a.Assign(students)
	require.NoError(t, err)

	vs := Check(out, 3, []int{3, 4})
	assert.True(t, vs.OK(), "violations: %v", vs)
}

func TestViolations_Error(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Violations{}.Error())
	})

	t.Run("single", func(t *testing.T) {
		vs := Violations{{Tutorial: 2, Group: 3, Count: 2}}
		assert.Equal(t, "tutorial 2 group 3 has 2 students", vs.Error())
	})

	t.Run("multiple", func(t *testing.T) {
		vs := Violations{
			{Tutorial: 1, Group: 1, Count: 2},
			{Tutorial: 2, Group: 4, Count: 5},
		}
		msg := vs.Error()
		assert.Contains(t, msg, "2 group size violations")
		assert.Contains(t, msg, "tutorial 1 group 1 has 2 students")
		assert.Contains(t, msg, "tutorial 2 group 4 has 5 students")
	})
}
