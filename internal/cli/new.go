package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gamekit-labs/forge/internal/config"
	"github.com/gamekit-labs/forge/internal/layout"
	"github.com/gamekit-labs/forge/internal/logging"
	"github.com/gamekit-labs/forge/internal/project"
	"github.com/gamekit-labs/forge/internal/scaffold"
)

var (
	newWithSource  bool
	newLinkMedia   bool
	newAliasPolicy string
)

func init() {
	newCmd.Flags().BoolVar(&newWithSource, "with-src", false, "Also create the src/ directory")
	newCmd.Flags().BoolVar(&newLinkMedia, "link-media", false, "Alias the engine's shared media into data/")
	newCmd.Flags().StringVar(&newAliasPolicy, "alias-policy", "", "What to do when the media alias exists: skip or replace (default from config)")
	addVersionFlag(newCmd)
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <kind> <name> [path]",
	Short: "Scaffold a new engine project",
	Long: `Scaffold a new executable project: build configuration, a header and source
stub, and the data directory tree.

<kind> is one of ` + kindList() + ` (case-insensitive). <name> must start with a
letter and contain only letters, digits and underscores; it is lower-cased.
[path] defaults to ./<name>.

Examples:
  forge new game space
  forge new demo particles demos/particles --with-src --link-media`,
	Args: withUsage(cobra.RangeArgs(2, 3)),
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionRequested(cmd) {
			printToolVersion(cmd)
			return nil
		}

		rawPath := ""
		if len(args) == 3 {
			rawPath = args[2]
		}
		spec, err := project.Validate(args[0], args[1], rawPath)
		if err != nil {
			return err
		}

		settings, err := config.Current()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		policyValue := settings.AliasPolicy
		if cmd.Flags().Changed("alias-policy") {
			policyValue = newAliasPolicy
		}
		policy, err := layout.ParseAliasPolicy(policyValue)
		if err != nil {
			return err
		}

		result, err := scaffold.Generate(spec, scaffold.Options{
			Settings:    settings,
			WithSource:  newWithSource,
			LinkMedia:   newLinkMedia,
			AliasPolicy: policy,
		})
		if err != nil {
			return err
		}

		printScaffoldResult(cmd.OutOrStdout(), spec, result)
		return nil
	},
}

func kindList() string {
	names := make([]string, 0, len(project.Kinds()))
	for _, k := range project.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func printScaffoldResult(w io.Writer, spec project.Spec, result *scaffold.Result) {
	fmt.Fprintf(w, "Created %s %s at %s\n", strings.ToLower(string(spec.Kind)), spec.Name, filepath.ToSlash(result.Root))
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if result.Alias != "" {
		fmt.Fprintf(w, "  %s (alias %s)\n", result.Alias, result.AliasOutcome)
	}
	for _, warning := range result.Warnings {
		logging.Warn(warning)
	}
}
