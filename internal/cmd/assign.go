package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unimelb-cmce-10002/group-generator/internal/assign"
	"github.com/unimelb-cmce-10002/group-generator/internal/config"
	"github.com/unimelb-cmce-10002/group-generator/internal/logging"
	"github.com/unimelb-cmce-10002/group-generator/internal/report"
	"github.com/unimelb-cmce-10002/group-generator/internal/roster"
	"github.com/unimelb-cmce-10002/group-generator/internal/validate"
)

var (
	assignInput       string
	assignOutput      string
	assignSeed        int64
	assignPreferred   int
	assignMinimum     int
	assignLabelPrefix string
	assignOverrides   string
	assignForce       bool
	assignVerbose     bool
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Deal a roster export into groups and write the assignment CSV",
	Long: `Assign reads a roster CSV, shuffles each tutorial with the configured
seed, packs students into groups of 4 (falling back to 3 where the
headcount requires it), and writes the result as a new CSV.

The same roster and seed always produce the same assignment. Group
numbering restarts at 1 within each tutorial.

If any group would violate the size rules the assignment is aborted and
nothing is written, unless --force is given.`,
	RunE: runAssign,
}

func init() {
	assignCmd.Flags().StringVarP(&assignInput, "input", "i", "", "roster CSV export to read (required)")
	assignCmd.Flags().StringVarP(&assignOutput, "output", "o", "", "assignment CSV to write (required)")
	assignCmd.Flags().Int64Var(&assignSeed, "seed", 0, "shuffle seed (default from config)")
	assignCmd.Flags().IntVar(&assignPreferred, "preferred-size", 0, "group size to maximize (default from config)")
	assignCmd.Flags().IntVar(&assignMinimum, "min-size", 0, "smallest group size allowed (default from config)")
	assignCmd.Flags().StringVar(&assignLabelPrefix, "label-prefix", "", "stamp groups with \"<prefix> Group <n>\" labels")
	assignCmd.Flags().StringVar(&assignOverrides, "overrides", "", "YAML file moving students between tutorials (default from config)")
	assignCmd.Flags().BoolVar(&assignForce, "force", false, "write the output even when size validation fails")
	assignCmd.Flags().BoolVarP(&assignVerbose, "verbose", "v", false, "print every group with its members")

	_ = assignCmd.MarkFlagRequired("input")
	_ = assignCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	// Flags override config where set
	seed := cfg.Assign.Seed
	if cmd.Flags().Changed("seed") {
		seed = assignSeed
	}
	preferred := cfg.Assign.PreferredSize
	if cmd.Flags().Changed("preferred-size") {
		preferred = assignPreferred
	}
	minimum := cfg.Assign.MinimumSize
	if cmd.Flags().Changed("min-size") {
		minimum = assignMinimum
	}
	labelPrefix := cfg.Assign.LabelPrefix
	if cmd.Flags().Changed("label-prefix") {
		labelPrefix = assignLabelPrefix
	}
	overridesPath := cfg.Paths.Overrides
	if cmd.Flags().Changed("overrides") {
		overridesPath = assignOverrides
	}

	logger, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	runID := uuid.New().String()
	assigner, err := assign.New(seed,
		assign.WithSizes(preferred, minimum),
		assign.WithLabelPrefix(labelPrefix),
		assign.WithLogger(logger.WithRun(runID)),
	)
	if err != nil {
		return err
	}

	// The assigner owns the seed from here on; log the one it will use.
	log := logger.WithRun(runID).WithSeed(assigner.Seed())
	log.Info("starting assignment", "input", assignInput, "output", assignOutput)

	in, err := os.Open(assignInput)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	rs, err := roster.ReadCSV(in)
	_ = in.Close()
	if err != nil {
		return err
	}
	log.Info("roster loaded", "students", len(rs.Students), "tutorials", len(roster.Tutorials(rs.Students)))

	students := rs.Students
	if overridesPath != "" {
		ov, err := roster.LoadOverrides(overridesPath)
		if err != nil {
			return err
		}
		if len(ov) > 0 {
			students, err = ov.Apply(students)
			if err != nil {
				return err
			}
			log.Info("overrides applied", "path", overridesPath, "moved", len(ov))
		}
	}

	assigned, err := assigner.Assign(students)
	if err != nil {
		return err
	}

	violations := validate.Check(assigned, cfg.Validation.MinimumSize, cfg.Validation.AllowedSizes)
	if !violations.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), report.Violations(violations))
		log.Warn("size validation failed", "violations", len(violations))
		if !assignForce {
			return violations
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "writing anyway (--force)")
	}

	out, err := os.Create(assignOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := roster.WriteCSV(out, assigned, rs.ExtraColumns); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info("assignment written", "students", len(assigned), "groups", validate.GroupCount(assigned))

	fmt.Fprintln(cmd.OutOrStdout(), report.Summary(assigned))
	if assignVerbose {
		fmt.Fprintln(cmd.OutOrStdout(), report.Groups(assigned, terminalWidth()))
	}
	return nil
}

// newRunLogger builds the run logger from config. Logging disabled in
// config means all output is discarded rather than skipping log calls.
func newRunLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Paths.LogFile, logging.ParseLevel(cfg.Logging.Level), logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}
