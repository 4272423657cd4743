// Package report renders user-facing terminal output for assignment runs:
// the per-tutorial summary after a successful run and the violation list
// when the size check fails.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unimelb-cmce-10002/group-generator/internal/roster"
	"github.com/unimelb-cmce-10002/group-generator/internal/util"
	"github.com/unimelb-cmce-10002/group-generator/internal/validate"
)

// Styles used across report output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Summary renders the per-tutorial group breakdown of an assignment.
func Summary(assigned []roster.Student) string {
	type groupKey struct{ tutorial, group int }

	counts := make(map[groupKey]int)
	for i := range assigned {
		counts[groupKey{assigned[i].Tutorial, assigned[i].GroupID}]++
	}

	// Group sizes per tutorial, ordered by group id.
	sizesByTutorial := make(map[int][]int)
	for k := range counts {
		sizesByTutorial[k.tutorial] = append(sizesByTutorial[k.tutorial], k.group)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Group assignment"))
	b.WriteString("\n\n")

	totalGroups := 0
	for _, tutorial := range roster.Tutorials(assigned) {
		groups := sizesByTutorial[tutorial]
		sort.Ints(groups)

		parts := make([]string, len(groups))
		students := 0
		for i, g := range groups {
			n := counts[groupKey{tutorial, g}]
			parts[i] = fmt.Sprintf("%d", n)
			students += n
		}
		totalGroups += len(groups)

		b.WriteString(fmt.Sprintf("  Tutorial %-3d %d students in %d groups ",
			tutorial, students, len(groups)))
		b.WriteString(mutedStyle.Render("(" + strings.Join(parts, "+") + ")"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(successStyle.Render(fmt.Sprintf("✓ %d students assigned to %d groups",
		len(assigned), totalGroups)))
	b.WriteString("\n")
	return b.String()
}

// Groups renders the full membership listing, one line per group, for
// verbose output. Lines are truncated to width visual columns.
func Groups(assigned []roster.Student, width int) string {
	type groupKey struct{ tutorial, group int }

	members := make(map[groupKey][]string)
	labels := make(map[groupKey]string)
	for i := range assigned {
		s := &assigned[i]
		k := groupKey{s.Tutorial, s.GroupID}
		name := s.Name
		if name == "" {
			name = s.ID
		}
		members[k] = append(members[k], name)
		if labels[k] == "" {
			labels[k] = s.GroupLabel
		}
	}

	var b strings.Builder
	for _, tutorial := range roster.Tutorials(assigned) {
		var groups []int
		for k := range members {
			if k.tutorial == tutorial {
				groups = append(groups, k.group)
			}
		}
		sort.Ints(groups)

		for _, g := range groups {
			k := groupKey{tutorial, g}
			label := labels[k]
			if label == "" {
				label = fmt.Sprintf("Tutorial %d Group %d", tutorial, g)
			}
			line := fmt.Sprintf("  %s: %s", label, util.JoinTruncated(members[k], width))
			b.WriteString(util.TruncateANSI(line, width) + "\n")
		}
	}
	return b.String()
}

// Violations renders a failed size check, one line per failing group.
func Violations(vs validate.Violations) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %d group size violations", len(vs))))
	b.WriteString("\n")
	for _, v := range vs {
		b.WriteString("  " + v.String() + "\n")
	}
	return b.String()
}

// CheckPassed renders the success banner for the standalone check command.
func CheckPassed(groups int) string {
	return successStyle.Render(fmt.Sprintf("✓ all %d groups within allowed sizes", groups)) + "\n"
}
