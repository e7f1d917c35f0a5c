package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gamekit-labs/forge/internal/platform"
)

// AliasPolicy decides what happens when the alias path already exists.
type AliasPolicy string

const (
	// AliasSkip leaves any existing entry untouched.
	AliasSkip AliasPolicy = "skip"
	// AliasReplace recreates an existing alias that points elsewhere. Real
	// files and directories are never replaced.
	AliasReplace AliasPolicy = "replace"
)

// ParseAliasPolicy converts a configuration value to an AliasPolicy.
func ParseAliasPolicy(s string) (AliasPolicy, error) {
	switch p := AliasPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case AliasSkip, AliasReplace:
		return p, nil
	}
	return "", fmt.Errorf("invalid alias policy %q: must be %q or %q", s, AliasSkip, AliasReplace)
}

// Alias describes a directory alias inside the project.
type Alias struct {
	Path   string // relative to the project root, e.g. "data/wendy"
	Target string // written verbatim into the link, usually relative
	Policy AliasPolicy
}

// LinkOutcome reports what LinkSharedAssets did.
type LinkOutcome int

const (
	LinkCreated LinkOutcome = iota
	LinkSkipped
	LinkReplaced
)

func (o LinkOutcome) String() string {
	switch o {
	case LinkCreated:
		return "created"
	case LinkSkipped:
		return "skipped"
	case LinkReplaced:
		return "replaced"
	}
	return "unknown"
}

// LinkSharedAssets creates the alias under root. The target does not have to
// exist; it is normally a sibling checkout of the engine's shared media.
func LinkSharedAssets(root string, a Alias) (LinkOutcome, error) {
	link := filepath.Join(root, filepath.FromSlash(a.Path))

	if _, err := os.Lstat(link); err != nil {
		if !os.IsNotExist(err) {
			return 0, fmt.Errorf("inspecting %s: %w", link, err)
		}
		if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
			return 0, fmt.Errorf("creating directory for alias %s: %w", link, err)
		}
		if err := platform.CreateAlias(a.Target, link); err != nil {
			return 0, err
		}
		return LinkCreated, nil
	}

	if a.Policy != AliasReplace {
		return LinkSkipped, nil
	}

	isAlias, err := platform.IsAlias(link)
	if err != nil {
		return 0, fmt.Errorf("inspecting %s: %w", link, err)
	}
	if !isAlias {
		return 0, &ConflictError{Path: link}
	}

	current, err := platform.ReadAliasTarget(link)
	if err != nil {
		return 0, err
	}
	if current == a.Target {
		return LinkSkipped, nil
	}

	if err := platform.RemoveAlias(link); err != nil {
		return 0, err
	}
	if err := platform.CreateAlias(a.Target, link); err != nil {
		return 0, err
	}
	return LinkReplaced, nil
}
