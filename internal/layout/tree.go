package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrConflict marks a required path occupied by something that is not a
// directory.
var ErrConflict = errors.New("path blocked")

// ConflictError reports the path that blocked tree creation.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s blocked: exists and is not a directory", e.Path)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// PathSet is a sorted, duplicate-free set of slash-separated relative paths.
type PathSet []string

// NewPathSet cleans, sorts and deduplicates paths. Empty entries and entries
// that clean to "." are dropped.
func NewPathSet(paths ...string) PathSet {
	seen := make(map[string]bool, len(paths))
	set := make(PathSet, 0, len(paths))
	for _, p := range paths {
		clean := filepath.ToSlash(filepath.Clean(strings.TrimSpace(p)))
		if clean == "." || clean == "" || seen[clean] {
			continue
		}
		seen[clean] = true
		set = append(set, clean)
	}
	sort.Strings(set)
	return set
}

// With returns a new set containing the receiver's paths plus extra.
func (s PathSet) With(extra ...string) PathSet {
	all := make([]string, 0, len(s)+len(extra))
	all = append(all, s...)
	all = append(all, extra...)
	return NewPathSet(all...)
}

// EnsureTree makes every path in set exist as a directory under root. Paths
// are processed in set order. Existing directories are left alone. The first
// path found occupied by a non-directory aborts the walk with a
// *ConflictError; directories created before that point stay in place.
// The returned slice lists the set entries that had to be created.
func EnsureTree(fs afero.Fs, root string, set PathSet) ([]string, error) {
	var created []string

	for _, rel := range set {
		full := filepath.Join(root, filepath.FromSlash(rel))

		info, err := fs.Stat(full)
		if err == nil {
			if info.IsDir() {
				continue
			}
			return created, &ConflictError{Path: full}
		}

		if err := fs.MkdirAll(full, 0755); err != nil {
			if blocked := blockingAncestor(fs, root, rel); blocked != "" {
				return created, &ConflictError{Path: blocked}
			}
			return created, fmt.Errorf("creating directory %s: %w", full, err)
		}
		created = append(created, rel)
	}

	return created, nil
}

// blockingAncestor returns the first path from root down to rel that exists
// and is not a directory, or "" if there is none.
func blockingAncestor(fs afero.Fs, root, rel string) string {
	current := root
	candidates := append([]string{""}, strings.Split(rel, "/")...)
	for _, part := range candidates {
		if part != "" {
			current = filepath.Join(current, part)
		}
		info, err := fs.Stat(current)
		if err != nil {
			if os.IsNotExist(err) {
				return ""
			}
			continue
		}
		if !info.IsDir() {
			return current
		}
	}
	return ""
}
