package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unimelb-cmce-10002/group-generator/internal/config"
	"github.com/unimelb-cmce-10002/group-generator/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "group-generator",
	Short: "Assign students to working groups within their tutorials",
	Long: `Group-generator turns an LMS roster export into a group-assignment file
ready for re-upload. Students are split within each tutorial into groups
of 4 where possible and groups of 3 where arithmetic requires it, using
a seeded shuffle so runs are reproducible.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
	}
	return err
}

// errorHint suggests a next step for errors the user can act on directly:
// configuration problems need a flag or config change, user-facing data
// problems need a roster or overrides fix.
func errorHint(err error) string {
	switch {
	case errors.IsConfigError(err):
		return "adjust the flags or " + config.ConfigFile() + " and re-run"
	case errors.IsUserFacing(err):
		return "fix the roster or overrides file and re-run"
	default:
		return ""
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default %s)", config.ConfigFile()))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/group-generator")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GROUP_GENERATOR")
	// Replace dots with underscores for nested keys in env vars
	// e.g., GROUP_GENERATOR_ASSIGN_SEED for assign.seed
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
