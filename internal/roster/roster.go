// Package roster models the student roster exported from the learning
// management system and the thin I/O around it: CSV reading and writing,
// extraction of the tutorial number from free-text section labels, and a
// YAML override table for manual corrections.
package roster

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/unimelb-cmce-10002/group-generator/internal/errors"
)

// Student is one roster record. Before assignment it carries the tutorial
// group number parsed from the LMS section label; after assignment it gains
// a tutorial-scoped group id and, optionally, a display label.
type Student struct {
	// ID is the institutional student identifier.
	ID string
	// Name is the student's display name.
	Name string
	// Email is the student's contact address, when the export includes one.
	Email string
	// Section is the raw LMS section label (e.g. "Tutorial 07 Wed 10:00").
	Section string
	// Tutorial is the tutorial group number extracted from Section.
	Tutorial int
	// GroupID is the assigned working-group id, scoped to the tutorial and
	// starting at 1. Zero means unassigned.
	GroupID int
	// GroupLabel is an optional human-readable label for the assigned group.
	GroupLabel string
	// Extra holds columns from the export the tool does not interpret.
	// They are preserved verbatim on write so the file can be re-uploaded.
	Extra map[string]string
}

// Assigned reports whether the student has been placed in a group.
func (s *Student) Assigned() bool {
	return s.GroupID > 0
}

// tutorialNumberRe extracts the first run of digits from a section label.
// LMS exports zero-pad the number and append day/time text, so "Tutorial 07
// Wed 10:00" parses as 7.
var tutorialNumberRe = regexp.MustCompile(`\d+`)

// ParseTutorialLabel extracts the tutorial group number from a free-text
// section label. Labels with no digits return errors.ErrNoTutorialNumber
// wrapped in a *errors.RosterError naming the label.
func ParseTutorialLabel(label string) (int, error) {
	match := tutorialNumberRe.FindString(label)
	if match == "" {
		return 0, errors.NewRosterError(
			"cannot parse section label "+strconv.Quote(strings.TrimSpace(label)),
			errors.ErrNoTutorialNumber,
		)
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		// Only reachable when the digit run overflows int.
		return 0, errors.NewRosterError(
			"tutorial number out of range in label "+strconv.Quote(label),
			err,
		)
	}
	return n, nil
}

// Tutorials returns the distinct tutorial group numbers present in students,
// in ascending order. This is the canonical processing order for assignment.
func Tutorials(students []Student) []int {
	seen := make(map[int]bool)
	var nums []int
	for i := range students {
		if !seen[students[i].Tutorial] {
			seen[students[i].Tutorial] = true
			nums = append(nums, students[i].Tutorial)
		}
	}
	sort.Ints(nums)
	return nums
}
