package asset

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const crateOBJ = `# crate
mtllib crate.mtl
o Crate
v 0 0 0
usemtl Wood
f 1 2 3
usemtl Stone
f 1 2 3
usemtl Wood
f 1 2 3
usemtl Wood
`

func TestExtractMaterialNamesFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"dedup and sort", crateOBJ, []string{"Stone", "Wood"}},
		{"crlf line endings", "usemtl Brick\r\nusemtl Brick\r\n", []string{"Brick"}},
		{"indented directive ignored", "  usemtl Wood\n", []string{}},
		{"trailing words ignored", "usemtl Wood Stone\n", []string{}},
		{"non word characters ignored", "usemtl wood-oak\n", []string{}},
		{"other directives ignored", "mtllib x.mtl\nusemtlWood\n", []string{}},
		{"underscore and digits", "usemtl metal_2\n", []string{"metal_2"}},
		{"tab separator", "usemtl\tGlass\n", []string{"Glass"}},
		{"trailing whitespace", "usemtl Glass  \t\nusemtl  Iron\n", []string{"Glass", "Iron"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make(map[string]struct{})
			if err := ExtractMaterialNamesFrom(strings.NewReader(tt.input), names); err != nil {
				t.Fatalf("ExtractMaterialNamesFrom() error: %v", err)
			}
			got := sortedKeys(names)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractMaterialNamesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "crate.obj", crateOBJ)
	second := writeFile(t, dir, "wall.obj", "usemtl Stone\nusemtl Marble\n")

	got, err := ExtractMaterialNames([]string{first, second})
	if err != nil {
		t.Fatalf("ExtractMaterialNames() error: %v", err)
	}

	want := []string{"Marble", "Stone", "Wood"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractMaterialNames() = %v, want %v", got, want)
	}
}

func TestExtractMaterialNamesMissingFile(t *testing.T) {
	_, err := ExtractMaterialNames([]string{filepath.Join(t.TempDir(), "missing.obj")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.obj") {
		t.Errorf("error should name the file, got: %v", err)
	}
}

func TestExtractTextureName(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"brick.png", "brick", true},
		{"textures/walls/brick.png", "brick", true},
		{"/abs/path/grass_01.png", "grass_01", true},
		{"brick.jpg", "", false},
		{"brick.png.bak", "", false},
		{"textures/", "", false},
		{".png", "", false},
		{`a\b.png`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ExtractTextureName(tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractTextureName(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSourceFilters(t *testing.T) {
	if !IsMeshSource("models/crate.obj") || IsMeshSource("models/crate.mtl") {
		t.Error("IsMeshSource should accept only .obj paths")
	}
	if !IsImageSource("brick.png") || IsImageSource("brick.tga") {
		t.Error("IsImageSource should accept only .png paths")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
