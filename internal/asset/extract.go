package asset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

const (
	meshExtension  = ".obj"
	imageExtension = ".png"
)

var (
	materialPattern = regexp.MustCompile(`^usemtl\s+(\w+)\s*$`)
	texturePattern  = regexp.MustCompile(`([^/]+)\.png$`)
)

// IsMeshSource reports whether path names an OBJ mesh.
func IsMeshSource(path string) bool {
	return strings.HasSuffix(path, meshExtension)
}

// IsImageSource reports whether path names a PNG image.
func IsImageSource(path string) bool {
	return strings.HasSuffix(path, imageExtension)
}

// ExtractMaterialNamesFrom scans r line by line and adds every material
// named by a "usemtl" directive to names. Lines that do not match are
// ignored.
func ExtractMaterialNamesFrom(r io.Reader, names map[string]struct{}) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if m := materialPattern.FindStringSubmatch(line); m != nil {
			names[m[1]] = struct{}{}
		}
	}
	return scanner.Err()
}

// ExtractMaterialNames reads every file in paths and returns the sorted,
// duplicate-free set of material names they use. All files are read before
// the result is returned.
func ExtractMaterialNames(paths []string) ([]string, error) {
	names := make(map[string]struct{})
	for _, p := range paths {
		if err := extractFile(p, names); err != nil {
			return nil, err
		}
	}
	return sortedKeys(names), nil
}

func extractFile(path string, names map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := ExtractMaterialNamesFrom(f, names); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// ExtractTextureName returns the base name of a PNG path without its
// extension. ok is false when path does not end in ".png" or when the name
// contains a backslash, which no descriptor file name may hold.
func ExtractTextureName(path string) (name string, ok bool) {
	m := texturePattern.FindStringSubmatch(path)
	if m == nil || strings.Contains(m[1], `\`) {
		return "", false
	}
	return m[1], true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
