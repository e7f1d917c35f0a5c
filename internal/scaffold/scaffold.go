package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/gamekit-labs/forge/internal/config"
	"github.com/gamekit-labs/forge/internal/layout"
	"github.com/gamekit-labs/forge/internal/platform"
	"github.com/gamekit-labs/forge/internal/project"
)

// Data holds all template variables available to scaffold templates. Every
// artifact of one run is rendered from the same Data value.
type Data struct {
	Kind           string // e.g., "Game"
	KindLower      string // e.g., "game"
	Name           string // e.g., "space"
	DisplayName    string // e.g., "Space"
	Engine         string // e.g., "wendy"
	EngineTitle    string // e.g., "Wendy"
	EngineUpper    string // e.g., "WENDY"
	BundleID       string // e.g., "org.elmindreda.games.space"
	CMakeMinimum   string
	ProjectVersion string
	CXXStandard    string
	DataDir        string
	HeaderFile     string
	SourceFile     string
	Sources        []string
}

// Artifact is one rendered file, relative to the project root.
type Artifact struct {
	Path    string
	Content string
}

// Options controls a scaffold run.
type Options struct {
	Fs          afero.Fs         // defaults to the OS filesystem
	Settings    *config.Settings // defaults to config.Defaults()
	WithSource  bool             // also create the source directory
	LinkMedia   bool             // create the shared-media alias (always on the OS filesystem)
	AliasPolicy layout.AliasPolicy
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Root         string
	CreatedDirs  []string
	Files        []string
	Alias        string
	AliasOutcome layout.LinkOutcome
	Warnings     []string
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Settings == nil {
		o.Settings = config.Defaults()
	}
	if o.AliasPolicy == "" {
		o.AliasPolicy = layout.AliasSkip
	}
	return o
}

// NewData derives the template variables from a validated spec and the
// generator settings.
func NewData(spec project.Spec, settings *config.Settings) (*Data, error) {
	g, err := loadGeneration()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = config.Defaults()
	}

	engine := settings.EngineName
	if engine == "" {
		return nil, fmt.Errorf("engine name is not configured")
	}
	d := &Data{
		Kind:           string(spec.Kind),
		KindLower:      spec.KindLower(),
		Name:           spec.Name,
		DisplayName:    spec.DisplayName(),
		Engine:         engine,
		EngineTitle:    strings.ToUpper(engine[:1]) + engine[1:],
		EngineUpper:    strings.ToUpper(engine),
		BundleID:       fmt.Sprintf("%s.%ss.%s", settings.BundlePrefix, spec.KindLower(), spec.Name),
		CMakeMinimum:   config.ShortVersion(settings.CMakeMinimum),
		ProjectVersion: config.ShortVersion(settings.ProjectVersion),
		CXXStandard:    settings.CXXStandard,
		DataDir:        g.DataDir,
		HeaderFile:     string(spec.Kind) + ".h",
		SourceFile:     string(spec.Kind) + ".cpp",
	}
	d.Sources = []string{d.SourceFile}
	return d, nil
}

// RequiredPaths returns the directory set a project needs.
func RequiredPaths(withSource bool) (layout.PathSet, error) {
	g, err := loadGeneration()
	if err != nil {
		return nil, err
	}
	return layout.NewPathSet(g.requiredPaths(withSource)...), nil
}

// Render produces the build configuration, header and source artifacts for
// spec. Nothing is written.
func Render(spec project.Spec, settings *config.Settings) ([]Artifact, error) {
	g, err := loadGeneration()
	if err != nil {
		return nil, err
	}
	data, err := NewData(spec, settings)
	if err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(g.Artifacts))
	for _, a := range g.Artifacts {
		outPath, err := expand(a.Template+" path", a.Path, data)
		if err != nil {
			return nil, err
		}
		content, err := renderFile(a.Template, data)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Path: outPath, Content: content})
	}
	return artifacts, nil
}

// Write stores artifacts under root, replacing any existing files.
func Write(fs afero.Fs, root string, artifacts []Artifact) ([]string, error) {
	files := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		outPath := filepath.Join(root, filepath.FromSlash(a.Path))
		if err := afero.WriteFile(fs, outPath, []byte(a.Content), 0644); err != nil {
			return files, fmt.Errorf("writing %s: %w", outPath, err)
		}
		files = append(files, a.Path)
	}
	return files, nil
}

// MediaAlias returns the shared-media alias for the configured engine.
func MediaAlias(settings *config.Settings, policy layout.AliasPolicy) (layout.Alias, error) {
	g, err := loadGeneration()
	if err != nil {
		return layout.Alias{}, err
	}
	data := &Data{Engine: settings.EngineName, DataDir: g.DataDir}

	aliasPath, err := expand("media alias path", g.MediaAlias.Path, data)
	if err != nil {
		return layout.Alias{}, err
	}
	target, err := expand("media alias target", g.MediaAlias.Target, data)
	if err != nil {
		return layout.Alias{}, err
	}
	return layout.Alias{Path: aliasPath, Target: target, Policy: policy}, nil
}

// Generate runs the whole scaffold pipeline for spec: directory tree,
// optional media alias, then the rendered artifacts. A directory conflict
// stops the run before any artifact is written.
func Generate(spec project.Spec, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	paths, err := RequiredPaths(opts.WithSource)
	if err != nil {
		return nil, err
	}

	// Render before touching the filesystem so template problems never leave
	// a half-built tree behind.
	artifacts, err := Render(spec, opts.Settings)
	if err != nil {
		return nil, err
	}

	result := &Result{Root: spec.Root}

	created, err := layout.EnsureTree(opts.Fs, spec.Root, paths)
	result.CreatedDirs = created
	if err != nil {
		return result, err
	}

	if opts.LinkMedia {
		alias, err := MediaAlias(opts.Settings, opts.AliasPolicy)
		if err != nil {
			return result, err
		}
		outcome, err := layout.LinkSharedAssets(spec.Root, alias)
		if err != nil {
			return result, err
		}
		result.Alias = alias.Path
		result.AliasOutcome = outcome

		link := filepath.Join(spec.Root, filepath.FromSlash(alias.Path))
		if resolved, err := platform.ResolveAliasTarget(link); err == nil {
			if ok, _ := afero.DirExists(afero.NewOsFs(), resolved); !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("shared media not found at %s; %s is a dangling alias", resolved, alias.Path))
			}
		}
	}

	files, err := Write(opts.Fs, spec.Root, artifacts)
	result.Files = files
	if err != nil {
		return result, err
	}

	return result, nil
}
