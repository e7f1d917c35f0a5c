//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // FORGE_HOME, holds config.yaml
	ProjectDir string // where projects are scaffolded
	AssetDir   string // raw meshes and images
}

// setupTestEnv creates isolated temp directories and points FORGE_HOME at
// one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		AssetDir:   t.TempDir(),
	}
	t.Setenv("FORGE_HOME", env.HomeDir)
	return env
}

// setupAssets writes a small set of raw assets: two meshes sharing a
// material, two images and a file every tool must ignore.
func setupAssets(t *testing.T, dir string) (meshes, images []string) {
	t.Helper()

	house := filepath.Join(dir, "models", "house.obj")
	writeFile(t, house, `# house
o walls
usemtl Wood
f 1 2 3
usemtl Wood
o roof
usemtl Slate
f 3 4 5
usemtl Wood
`)
	fence := filepath.Join(dir, "models", "fence.obj")
	writeFile(t, fence, "o fence\r\nusemtl Wood\r\nusemtl Stone\r\n")

	brick := filepath.Join(dir, "images", "brick.png")
	writeFile(t, brick, "\x89PNG")
	grass := filepath.Join(dir, "images", "grass.png")
	writeFile(t, grass, "\x89PNG")

	writeFile(t, filepath.Join(dir, "README.md"), "usemtl Paper\n")

	return []string{house, fence, filepath.Join(dir, "README.md")},
		[]string{brick, grass, filepath.Join(dir, "README.md")}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s (%v)", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file but got directory: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (%v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected directory but got file: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
