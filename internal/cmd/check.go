package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/unimelb-cmce-10002/group-generator/internal/config"
	"github.com/unimelb-cmce-10002/group-generator/internal/report"
	"github.com/unimelb-cmce-10002/group-generator/internal/roster"
	"github.com/unimelb-cmce-10002/group-generator/internal/validate"
)

var (
	checkInput   string
	checkVerbose bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate group sizes in an existing assignment CSV",
	Long: `Check re-reads an assignment CSV and verifies every group against the
configured size rules. All violations are reported, not just the first,
and the command exits nonzero if any are found.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "assignment CSV to validate (required)")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "print every group with its members")

	_ = checkCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	in, err := os.Open(checkInput)
	if err != nil {
		return fmt.Errorf("failed to open assignment: %w", err)
	}
	rs, err := roster.ReadCSV(in)
	_ = in.Close()
	if err != nil {
		return err
	}

	violations := validate.Check(rs.Students, cfg.Validation.MinimumSize, cfg.Validation.AllowedSizes)
	if !violations.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), report.Violations(violations))
		return violations
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.CheckPassed(validate.GroupCount(rs.Students)))
	if checkVerbose {
		fmt.Fprintln(cmd.OutOrStdout(), report.Groups(rs.Students, terminalWidth()))
	}
	return nil
}

// terminalWidth reports the width of the attached terminal, or a fixed
// width when stdout is not a terminal (pipes, tests).
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
