package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamekit-labs/forge/internal/asset"
	"github.com/gamekit-labs/forge/internal/config"
	"github.com/gamekit-labs/forge/internal/descriptor"
)

var (
	materialDir     string
	materialProgram string
)

func init() {
	materialCmd.Flags().StringVarP(&materialDir, "dir", "d", ".", "Directory the .material files are written to")
	materialCmd.Flags().StringVarP(&materialProgram, "program", "p", "", "Program the materials render with (default from config)")
	addVersionFlag(materialCmd)
	rootCmd.AddCommand(materialCmd)
}

var materialCmd = &cobra.Command{
	Use:   "material [flags] <file.obj>...",
	Short: "Write a material descriptor for every material a mesh uses",
	Long: `Scan Wavefront .obj files for usemtl statements and write one .material
descriptor per distinct material name. Existing descriptors are never
overwritten; other inputs are ignored.`,
	Args: withUsage(cobra.ArbitraryArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionRequested(cmd) {
			printToolVersion(cmd)
			return nil
		}

		if err := requireDir(materialDir); err != nil {
			return err
		}

		program := materialProgram
		if program == "" {
			settings, err := config.Current()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			program = settings.MaterialProgram
		}

		var meshes []string
		for _, path := range args {
			if asset.IsMeshSource(path) {
				meshes = append(meshes, path)
			}
		}

		names, err := asset.ExtractMaterialNames(meshes)
		if err != nil {
			return err
		}

		descriptors := make([]descriptor.Descriptor, 0, len(names))
		for _, name := range names {
			descriptors = append(descriptors, descriptor.NewMaterial(name, program))
		}

		report, err := descriptor.NewWriter(nil).WriteAll(materialDir, descriptors)
		if err != nil {
			return err
		}
		logReport("material", report)
		return nil
	},
}
