package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the category of executable a project builds.
type Kind string

const (
	KindDemo Kind = "Demo"
	KindGame Kind = "Game"
	KindTest Kind = "Test"
)

// identifierPattern is the ASCII identifier grammar. Names are lower-cased
// before matching, so the upper-case range only matters to callers that
// match raw input.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

var (
	ErrInvalidKind = errors.New("invalid project kind")
	ErrInvalidName = errors.New("invalid project name")
)

// ValidationError names the offending field and value.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidKind):
		return fmt.Sprintf("%s is not a valid project type (want one of %s)", e.Value, strings.Join(kindNames(), ", "))
	case errors.Is(e.Err, ErrInvalidName):
		return fmt.Sprintf("%s is not a valid project name (must match %s)", e.Value, identifierPattern.String())
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Spec is a validated project specification.
type Spec struct {
	Kind Kind
	Name string
	Root string
}

// Kinds returns the accepted project kinds in display order.
func Kinds() []Kind {
	return []Kind{KindDemo, KindGame, KindTest}
}

func kindNames() []string {
	names := make([]string, 0, 3)
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return names
}

// ParseKind normalizes raw to its capitalized form and checks it against the
// accepted kinds.
func ParseKind(raw string) (Kind, error) {
	normalized := Kind(cases.Title(language.Und).String(strings.TrimSpace(raw)))
	for _, k := range Kinds() {
		if normalized == k {
			return k, nil
		}
	}
	return "", &ValidationError{Field: "kind", Value: string(normalized), Err: ErrInvalidKind}
}

// ValidName reports whether name satisfies the identifier grammar.
func ValidName(name string) bool {
	return identifierPattern.MatchString(name)
}

// Validate checks raw CLI input and returns the resulting Spec. An empty
// rawPath defaults to the normalized name.
func Validate(rawKind, rawName, rawPath string) (Spec, error) {
	kind, err := ParseKind(rawKind)
	if err != nil {
		return Spec{}, err
	}

	name := strings.ToLower(rawName)
	if !ValidName(name) {
		return Spec{}, &ValidationError{Field: "name", Value: name, Err: ErrInvalidName}
	}

	root := rawPath
	if root == "" {
		root = name
	}

	return Spec{Kind: kind, Name: name, Root: filepath.Clean(root)}, nil
}

// DisplayName returns the capitalized project name used for window titles
// and bundle names. Only the first letter changes; underscores do not start
// new words.
func (s Spec) DisplayName() string {
	if s.Name == "" {
		return ""
	}
	return strings.ToUpper(s.Name[:1]) + s.Name[1:]
}

// KindLower returns the lower-cased kind, as used in bundle identifiers and
// local variable names.
func (s Spec) KindLower() string {
	return strings.ToLower(string(s.Kind))
}
