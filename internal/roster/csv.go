package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unimelb-cmce-10002/group-generator/internal/errors"
)

// Column headers recognized in LMS exports. Matching is case-insensitive and
// ignores surrounding whitespace.
const (
	colID      = "id"
	colName    = "name"
	colEmail   = "email"
	colSection = "tutorial"
	colGroupID = "group_id"
	colGroup   = "group"
)

// headerAliases maps the header names seen in exports from different LMS
// versions onto the canonical column names.
var headerAliases = map[string]string{
	"id":             colID,
	"student id":     colID,
	"student_id":     colID,
	"name":           colName,
	"student name":   colName,
	"email":          colEmail,
	"email address":  colEmail,
	"tutorial":       colSection,
	"tutorial group": colSection,
	"section":        colSection,
	"group_id":       colGroupID,
	"group id":       colGroupID,
	"group":          colGroup,
}

// Roster is a parsed roster file: the student records plus enough header
// information to write the file back out in its original column order.
type Roster struct {
	// Students are the records in file order.
	Students []Student
	// ExtraColumns are the headers of uninterpreted columns, in file order.
	ExtraColumns []string
}

// ReadCSV parses a roster export. The first record is treated as a header;
// an "id" and a "tutorial" (or "section") column are required, everything
// unrecognized is preserved in Student.Extra. The tutorial number is parsed
// from the section label as each record is read, so a malformed label fails
// with the offending line number.
func ReadCSV(r io.Reader) (*Roster, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewRosterError("file is empty", errors.ErrEmptyRoster)
	}
	if err != nil {
		return nil, errors.NewRosterError("cannot read header", err)
	}

	// Map each column index to a canonical name, or record it as extra.
	canonical := make([]string, len(header))
	var extras []string
	seen := make(map[string]bool)
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if name, ok := headerAliases[key]; ok && !seen[name] {
			canonical[i] = name
			seen[name] = true
			continue
		}
		canonical[i] = ""
		extras = append(extras, h)
	}

	for _, required := range []string{colID, colSection} {
		if !seen[required] {
			return nil, errors.NewRosterError(
				fmt.Sprintf("header has no %q column", required),
				errors.ErrMissingColumn,
			)
		}
	}

	var students []Student
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.NewRosterError("cannot read record", err).WithLine(line)
		}

		s := Student{Extra: make(map[string]string)}
		for i, value := range record {
			if i >= len(canonical) {
				break
			}
			switch canonical[i] {
			case colID:
				s.ID = strings.TrimSpace(value)
			case colName:
				s.Name = value
			case colEmail:
				s.Email = value
			case colSection:
				s.Section = value
			case colGroupID:
				if v := strings.TrimSpace(value); v != "" {
					id, convErr := strconv.Atoi(v)
					if convErr != nil {
						return nil, errors.NewRosterError("group_id is not an integer", convErr).WithLine(line)
					}
					s.GroupID = id
				}
			case colGroup:
				s.GroupLabel = value
			default:
				s.Extra[header[i]] = value
			}
		}

		tutorial, err := ParseTutorialLabel(s.Section)
		if err != nil {
			var rErr *errors.RosterError
			if errors.As(err, &rErr) {
				return nil, rErr.WithLine(line)
			}
			return nil, err
		}
		s.Tutorial = tutorial

		students = append(students, s)
	}

	if len(students) == 0 {
		return nil, errors.NewRosterError("no records after header", errors.ErrEmptyRoster)
	}

	return &Roster{Students: students, ExtraColumns: extras}, nil
}

// WriteCSV writes students as an assignment file ready for re-upload. The
// layout is the canonical columns, then any preserved extra columns, then
// the assignment columns group_id and group. The group label column falls
// back to "Tutorial <n> Group <id>" when the assigner did not stamp one.
func WriteCSV(w io.Writer, students []Student, extraColumns []string) error {
	cw := csv.NewWriter(w)

	header := []string{colID, colName, colEmail, colSection}
	header = append(header, extraColumns...)
	header = append(header, colGroupID, colGroup)
	if err := cw.Write(header); err != nil {
		return errors.NewRosterError("cannot write header", err)
	}

	for i := range students {
		s := &students[i]
		record := []string{s.ID, s.Name, s.Email, s.Section}
		for _, col := range extraColumns {
			record = append(record, s.Extra[col])
		}

		label := s.GroupLabel
		if label == "" && s.Assigned() {
			label = fmt.Sprintf("Tutorial %d Group %d", s.Tutorial, s.GroupID)
		}
		record = append(record, strconv.Itoa(s.GroupID), label)

		if err := cw.Write(record); err != nil {
			return errors.NewRosterError("cannot write record", err).WithLine(i + 2)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.NewRosterError("cannot flush output", err)
	}
	return nil
}
