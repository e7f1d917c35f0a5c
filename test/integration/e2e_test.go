//go:build integration

package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gamekit-labs/forge/internal/asset"
	"github.com/gamekit-labs/forge/internal/config"
	"github.com/gamekit-labs/forge/internal/descriptor"
	"github.com/gamekit-labs/forge/internal/layout"
	"github.com/gamekit-labs/forge/internal/platform"
	"github.com/gamekit-labs/forge/internal/project"
	"github.com/gamekit-labs/forge/internal/scaffold"
)

// TestFullFlowScaffoldAndDescribe tests the complete flow:
// scaffold a game -> describe its meshes and images into the data tree ->
// rerun everything and verify nothing is rewritten.
func TestFullFlowScaffoldAndDescribe(t *testing.T) {
	env := setupTestEnv(t)
	meshes, images := setupAssets(t, env.AssetDir)

	// Step 1: scaffold the project with the shared-media alias.
	engineRoot := filepath.Join(env.ProjectDir, "wendy", "media", "wendy")
	if err := os.MkdirAll(engineRoot, 0755); err != nil {
		t.Fatal(err)
	}
	root := filepath.Join(env.ProjectDir, "space")

	spec, err := project.Validate("GAME", "Space", root)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	opts := scaffold.Options{
		Settings:    config.Defaults(),
		WithSource:  true,
		LinkMedia:   platform.IsAliasSupported(),
		AliasPolicy: layout.AliasSkip,
	}
	result, err := scaffold.Generate(spec, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, f := range []string{"CMakeLists.txt", "Game.h", "Game.cpp"} {
		assertFileExists(t, filepath.Join(root, f))
	}
	for _, d := range []string{"src", "data/fonts", "data/sounds", "data/shaders", "data/models", "data/textures"} {
		assertDirExists(t, filepath.Join(root, filepath.FromSlash(d)))
	}
	if opts.LinkMedia {
		if result.AliasOutcome != layout.LinkCreated {
			t.Errorf("alias outcome = %s, want created", result.AliasOutcome)
		}
		if len(result.Warnings) != 0 {
			t.Errorf("unexpected warnings: %v", result.Warnings)
		}
	}

	cmake := readFile(t, filepath.Join(root, "CMakeLists.txt"))
	assertContains(t, cmake, "org.elmindreda.games.space")

	// Step 2: materials from the meshes into data/models.
	modelsDir := filepath.Join(root, "data", "models")
	var objs []string
	for _, m := range meshes {
		if asset.IsMeshSource(m) {
			objs = append(objs, m)
		}
	}
	names, err := asset.ExtractMaterialNames(objs)
	if err != nil {
		t.Fatalf("ExtractMaterialNames: %v", err)
	}
	if got := strings.Join(names, ","); got != "Slate,Stone,Wood" {
		t.Fatalf("material names = %s", got)
	}

	writer := descriptor.NewWriter(nil)
	var materials []descriptor.Descriptor
	for _, name := range names {
		materials = append(materials, descriptor.NewMaterial(name, "default"))
	}
	report, err := writer.WriteAll(modelsDir, materials)
	if err != nil {
		t.Fatalf("WriteAll materials: %v", err)
	}
	if len(report.Written) != 3 || len(report.Skipped) != 0 {
		t.Errorf("materials report = %+v", report)
	}

	// Step 3: textures from the images into data/textures.
	texturesDir := filepath.Join(root, "data", "textures")
	texOpts := descriptor.TextureOptions{Filter: "trilinear", Mipmapped: true}
	var textures []descriptor.Descriptor
	for _, img := range images {
		if name, ok := asset.ExtractTextureName(img); ok {
			textures = append(textures, descriptor.NewTexture(name, texOpts))
		}
	}
	if _, err := writer.WriteAll(texturesDir, textures); err != nil {
		t.Fatalf("WriteAll textures: %v", err)
	}
	if got := strings.Join(dirEntries(t, texturesDir), ","); got != "brick.texture,grass.texture" {
		t.Errorf("textures dir = %s", got)
	}
	assertContains(t, readFile(t, filepath.Join(texturesDir, "brick.texture")),
		`<texture version="1" filter="trilinear" mipmapped="true" image="brick">`)

	// Step 4: rerun. Artifacts are regenerated, descriptors are left alone.
	writeFile(t, filepath.Join(root, "Game.h"), "// scribbled\n")
	writeFile(t, filepath.Join(modelsDir, "Wood.material"), "hand tuned")

	if _, err := scaffold.Generate(spec, opts); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	assertContains(t, readFile(t, filepath.Join(root, "Game.h")), "class Game")

	report, err = writer.WriteAll(modelsDir, materials)
	if err != nil {
		t.Fatalf("second WriteAll: %v", err)
	}
	if len(report.Written) != 0 || len(report.Skipped) != 3 {
		t.Errorf("second materials report = %+v", report)
	}
	if got := readFile(t, filepath.Join(modelsDir, "Wood.material")); got != "hand tuned" {
		t.Errorf("Wood.material was rewritten: %q", got)
	}
}

// TestConflictStopsScaffold verifies a file squatting on a required
// directory aborts the run before any artifact is written.
func TestConflictStopsScaffold(t *testing.T) {
	env := setupTestEnv(t)
	root := filepath.Join(env.ProjectDir, "probe")
	writeFile(t, filepath.Join(root, "data", "models"), "not a directory")

	spec, err := project.Validate("test", "probe", root)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	_, err = scaffold.Generate(spec, scaffold.Options{Settings: config.Defaults()})
	if !errors.Is(err, layout.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	assertNotExists(t, filepath.Join(root, "CMakeLists.txt"))
	assertNotExists(t, filepath.Join(root, "Test.h"))
	assertDirExists(t, filepath.Join(root, "data", "fonts"))
}
