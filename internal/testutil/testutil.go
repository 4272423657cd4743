// Package testutil provides shared fixtures for group-generator tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// RosterCSV builds a roster export in the LMS column layout with the
// given number of students per tutorial. Student IDs are sequential and
// unique across tutorials.
func RosterCSV(counts map[int]int) string {
	var b strings.Builder
	b.WriteString("Student ID,Name,Email,Tutorial Group\n")

	tutorials := make([]int, 0, len(counts))
	for tut := range counts {
		tutorials = append(tutorials, tut)
	}
	// Stable fixture order so generated IDs don't depend on map iteration
	for i := 0; i < len(tutorials); i++ {
		for j := i + 1; j < len(tutorials); j++ {
			if tutorials[j] < tutorials[i] {
				tutorials[i], tutorials[j] = tutorials[j], tutorials[i]
			}
		}
	}

	id := 1000
	for _, tut := range tutorials {
		for i := 0; i < counts[tut]; i++ {
			id++
			fmt.Fprintf(&b, "%d,Student %d,s%d@student.example.edu,Tutorial %d\n", id, id, id, tut)
		}
	}
	return b.String()
}

// WriteRosterCSV writes a generated roster into dir and returns its path.
func WriteRosterCSV(t *testing.T, dir string, counts map[int]int) string {
	t.Helper()

	path := filepath.Join(dir, "roster.csv")
	if err := os.WriteFile(path, []byte(RosterCSV(counts)), 0o644); err != nil {
		t.Fatalf("failed to write roster fixture: %v", err)
	}
	return path
}

// WriteFile writes content into dir under name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
