package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamekit-labs/forge/internal/branding"
	"github.com/gamekit-labs/forge/internal/config"
	"github.com/gamekit-labs/forge/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds engine projects (Demo, Game, Test) and writes material and
texture descriptors for raw mesh and image assets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(cmd.ErrOrStderr(), verbose)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Report every file created or skipped")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
}

// UsageError marks errors caused by malformed command lines. Execute prints
// the offending command's usage after them.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Execute runs the root command with build info injected via ldflags. Errors
// are logged once here; callers only decide the exit status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	logging.Error(err.Error())
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	}
	return err
}

// withUsage wraps a positional-args validator so its failures are reported
// as usage errors. Validation is skipped when --version was given.
func withUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if versionRequested(cmd) {
			return nil
		}
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// addVersionFlag gives a tool command its own --version/-v flag.
func addVersionFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("version", "v", false, "Print version and exit")
}

func versionRequested(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("version")
	return err == nil && v
}

func printToolVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", branding.CLIName(), cmd.Name(), buildVersion)
}
