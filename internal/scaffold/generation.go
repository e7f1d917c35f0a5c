package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"text/template"

	"go.yaml.in/yaml/v3"
)

//go:embed templates
var templateFS embed.FS

const (
	templatesDir   = "templates"
	generationFile = "generation.yaml"
	leftDelim      = "[["
	rightDelim     = "]]"
)

// generation describes the canonical project layout and the artifacts
// rendered into it.
type generation struct {
	DataDir    string   `yaml:"data_dir"`
	DataPaths  []string `yaml:"data_paths"`
	SourceDir  string   `yaml:"source_dir"`
	MediaAlias struct {
		Path   string `yaml:"path"`
		Target string `yaml:"target"`
	} `yaml:"media_alias"`
	Artifacts []artifactSpec `yaml:"artifacts"`
}

type artifactSpec struct {
	Template string `yaml:"template"`
	Path     string `yaml:"path"`
}

var (
	loadedGeneration *generation
	loadOnce         sync.Once
	loadErr          error
)

// loadGeneration parses the embedded generation.yaml once.
func loadGeneration() (*generation, error) {
	loadOnce.Do(func() {
		raw, err := fs.ReadFile(templateFS, path.Join(templatesDir, generationFile))
		if err != nil {
			loadErr = fmt.Errorf("reading %s: %w", generationFile, err)
			return
		}

		var g generation
		if err := yaml.Unmarshal(raw, &g); err != nil {
			loadErr = fmt.Errorf("parsing %s: %w", generationFile, err)
			return
		}
		if g.DataDir == "" || len(g.Artifacts) == 0 {
			loadErr = fmt.Errorf("%s: data_dir and artifacts are required", generationFile)
			return
		}
		loadedGeneration = &g
	})
	return loadedGeneration, loadErr
}

// requiredPaths returns the directories every project of this generation
// needs, relative to the project root.
func (g *generation) requiredPaths(withSource bool) []string {
	paths := make([]string, 0, len(g.DataPaths)+1)
	for _, p := range g.DataPaths {
		paths = append(paths, path.Join(g.DataDir, p))
	}
	if withSource && g.SourceDir != "" {
		paths = append(paths, g.SourceDir)
	}
	return paths
}

// expand executes a one-line template string such as an artifact path.
func expand(name, text string, data *Data) (string, error) {
	tmpl, err := template.New(name).Delims(leftDelim, rightDelim).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// renderFile executes an embedded template file.
func renderFile(name string, data *Data) (string, error) {
	raw, err := fs.ReadFile(templateFS, path.Join(templatesDir, name))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return expand(name, string(raw), data)
}
