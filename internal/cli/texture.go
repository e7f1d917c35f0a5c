package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gamekit-labs/forge/internal/asset"
	"github.com/gamekit-labs/forge/internal/descriptor"
	"github.com/gamekit-labs/forge/internal/logging"
)

var (
	textureDir  string
	textureOpts descriptor.TextureOptions
)

func init() {
	textureCmd.Flags().StringVarP(&textureDir, "dir", "d", ".", "Directory the .texture files are written to")
	textureCmd.Flags().StringVarP(&textureOpts.Filter, "filter", "f", "", "Filter mode: "+strings.Join(descriptor.FilterModes(), ", "))
	textureCmd.Flags().StringVarP(&textureOpts.Address, "address", "a", "", "Address mode: "+strings.Join(descriptor.AddressModes(), ", "))
	textureCmd.Flags().BoolVarP(&textureOpts.Rectangular, "rectangular", "r", false, "Mark the textures as rectangular")
	textureCmd.Flags().BoolVarP(&textureOpts.Mipmapped, "mipmapped", "m", false, "Mark the textures as mipmapped")
	addVersionFlag(textureCmd)
	rootCmd.AddCommand(textureCmd)
}

var textureCmd = &cobra.Command{
	Use:   "texture [flags] <file.png>...",
	Short: "Write a texture descriptor for every image",
	Long: `Write one .texture descriptor per .png input, named after the image file.
Existing descriptors are never overwritten; other inputs are ignored.`,
	Args: withUsage(cobra.ArbitraryArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionRequested(cmd) {
			printToolVersion(cmd)
			return nil
		}

		if err := requireDir(textureDir); err != nil {
			return err
		}
		// Copied once; every descriptor of the run shares the same options.
		opts := textureOpts
		if err := opts.Validate(); err != nil {
			return err
		}

		var descriptors []descriptor.Descriptor
		for _, path := range args {
			if !asset.IsImageSource(path) {
				continue
			}
			name, ok := asset.ExtractTextureName(path)
			if !ok {
				continue
			}
			descriptors = append(descriptors, descriptor.NewTexture(name, opts))
		}

		report, err := descriptor.NewWriter(nil).WriteAll(textureDir, descriptors)
		if err != nil {
			return err
		}
		logReport("texture", report)
		return nil
	},
}

// requireDir fails unless dir is an existing directory.
func requireDir(dir string) error {
	ok, err := afero.IsDir(afero.NewOsFs(), dir)
	if err != nil || !ok {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// logReport summarizes a descriptor batch. Like the per-file messages it is
// only shown with --verbose.
func logReport(kind string, report *descriptor.Report) {
	logging.Debug("Descriptors done", "kind", kind, "written", len(report.Written), "skipped", len(report.Skipped))
}
