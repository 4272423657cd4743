package roster

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unimelb-cmce-10002/group-generator/internal/errors"
)

// Overrides maps student IDs to replacement tutorial group numbers. Course
// staff maintain this table by hand to move students whose LMS enrolment is
// wrong, or to redistribute a tutorial whose headcount cannot be packed.
type Overrides map[string]int

// LoadOverrides reads an override table from a YAML file of the form:
//
//	"1023456": 7
//	"1047live": 3
//
// A missing file is not an error; it yields an empty table so callers can
// pass the configured path unconditionally.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Overrides{}, nil
	}
	if err != nil {
		return nil, errors.NewRosterError("cannot read overrides file", err).WithPath(path)
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, errors.NewRosterError("cannot parse overrides file", err).WithPath(path)
	}
	if ov == nil {
		ov = Overrides{}
	}
	return ov, nil
}

// Apply returns a copy of students with overridden tutorial numbers. Every
// override must match a roster record: stale IDs in the table almost always
// mean the wrong roster file, so they fail with errors.ErrUnknownStudent
// naming each unmatched ID rather than being silently dropped.
func (ov Overrides) Apply(students []Student) ([]Student, error) {
	out := make([]Student, len(students))
	copy(out, students)

	matched := make(map[string]bool, len(ov))
	for i := range out {
		if tutorial, ok := ov[out[i].ID]; ok {
			out[i].Tutorial = tutorial
			matched[out[i].ID] = true
		}
	}

	if len(matched) < len(ov) {
		var missing []string
		for id := range ov {
			if !matched[id] {
				missing = append(missing, id)
			}
		}
		sort.Strings(missing)
		return nil, errors.NewRosterError(
			fmt.Sprintf("overrides for %s match no roster record", strings.Join(missing, ", ")),
			errors.ErrUnknownStudent,
		)
	}

	return out, nil
}
