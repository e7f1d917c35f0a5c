package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrAliasUnsupported is returned when the platform refuses to create a
// symbolic link.
var ErrAliasUnsupported = errors.New("directory aliases are not supported on this system")

// ErrNotAlias is returned when an alias operation targets a real file or
// directory.
var ErrNotAlias = errors.New("path exists and is not an alias")

// CreateAlias creates a symbolic link at link pointing to target. A relative
// target is interpreted relative to the directory containing link, the same
// way the operating system resolves it.
func CreateAlias(target, link string) error {
	err := os.Symlink(target, link)
	if err == nil {
		return nil
	}
	if runtime.GOOS == "windows" && errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("creating alias %s: %w (enable developer mode)", link, ErrAliasUnsupported)
	}
	return fmt.Errorf("creating alias %s -> %s: %w", link, target, err)
}

// IsAlias reports whether path exists and is a symbolic link. A missing path
// is not an error.
func IsAlias(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// ReadAliasTarget returns the target an alias points to, as written.
func ReadAliasTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("reading alias %s: %w", path, err)
	}
	return target, nil
}

// ResolveAliasTarget returns the absolute location an alias points to. The
// location does not have to exist.
func ResolveAliasTarget(path string) (string, error) {
	target, err := ReadAliasTarget(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target), nil
	}
	return filepath.Join(filepath.Dir(path), target), nil
}

// RemoveAlias removes the alias at path. It refuses to remove anything that
// is not a symbolic link.
func RemoveAlias(path string) error {
	ok, err := IsAlias(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}
	if !ok {
		if _, statErr := os.Lstat(path); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("removing %s: %w", path, ErrNotAlias)
	}
	return os.Remove(path)
}

// IsAliasSupported returns true if the current platform can create symbolic
// links. On Windows this attempts a throwaway link.
func IsAliasSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	dir, err := os.MkdirTemp("", "forge-alias-test")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	return os.Symlink(dir, filepath.Join(dir, "link")) == nil
}
