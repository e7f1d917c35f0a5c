package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"

	"github.com/gamekit-labs/forge/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyEngineName      = "engine_name"
	KeyBundlePrefix    = "bundle_prefix"
	KeyCMakeMinimum    = "cmake_minimum"
	KeyProjectVersion  = "project_version"
	KeyCXXStandard     = "cxx_standard"
	KeyAliasPolicy     = "alias_policy"
	KeyMaterialProgram = "material_program"
)

var defaults = map[string]string{
	KeyEngineName:      "wendy",
	KeyBundlePrefix:    "org.elmindreda",
	KeyCMakeMinimum:    "2.6",
	KeyProjectVersion:  "0.1",
	KeyCXXStandard:     "c++0x",
	KeyAliasPolicy:     "skip",
	KeyMaterialProgram: "default",
}

var aliasPolicies = []string{"skip", "replace"}

// Settings is a validated snapshot of the generator configuration.
type Settings struct {
	EngineName      string
	BundlePrefix    string
	CMakeMinimum    *semver.Version
	ProjectVersion  *semver.Version
	CXXStandard     string
	AliasPolicy     string
	MaterialProgram string
}

// Dir returns the path to the config directory. FORGE_HOME overrides the
// default of ~/.forge.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Keys returns the recognized setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates a key-value pair, writes it and saves the config file.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := validateValue(key, value); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Current returns the validated settings from the loaded configuration.
func Current() (*Settings, error) {
	values := make(map[string]string, len(defaults))
	for k := range defaults {
		v := viper.GetString(k)
		if err := validateValue(k, v); err != nil {
			return nil, err
		}
		values[k] = v
	}

	cmakeMinimum, err := parseVersion(values[KeyCMakeMinimum])
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", KeyCMakeMinimum, err)
	}
	projectVersion, err := parseVersion(values[KeyProjectVersion])
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", KeyProjectVersion, err)
	}

	return &Settings{
		EngineName:      values[KeyEngineName],
		BundlePrefix:    values[KeyBundlePrefix],
		CMakeMinimum:    cmakeMinimum,
		ProjectVersion:  projectVersion,
		CXXStandard:     values[KeyCXXStandard],
		AliasPolicy:     values[KeyAliasPolicy],
		MaterialProgram: values[KeyMaterialProgram],
	}, nil
}

// Defaults returns the settings built from the built-in defaults only.
func Defaults() *Settings {
	return &Settings{
		EngineName:      defaults[KeyEngineName],
		BundlePrefix:    defaults[KeyBundlePrefix],
		CMakeMinimum:    semver.MustParse(defaults[KeyCMakeMinimum]),
		ProjectVersion:  semver.MustParse(defaults[KeyProjectVersion]),
		CXXStandard:     defaults[KeyCXXStandard],
		AliasPolicy:     defaults[KeyAliasPolicy],
		MaterialProgram: defaults[KeyMaterialProgram],
	}
}

func validateValue(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("config key %s must not be empty", key)
	}

	switch key {
	case KeyCMakeMinimum, KeyProjectVersion:
		if _, err := parseVersion(value); err != nil {
			return fmt.Errorf("config key %s: %q is not a version: %w", key, value, err)
		}
	case KeyAliasPolicy:
		for _, p := range aliasPolicies {
			if value == p {
				return nil
			}
		}
		return fmt.Errorf("config key %s must be one of %s, got %q", key, strings.Join(aliasPolicies, ", "), value)
	case KeyEngineName:
		if strings.ContainsAny(value, `/\ `) {
			return fmt.Errorf("config key %s must be a single path segment, got %q", key, value)
		}
	}
	return nil
}

// parseVersion strips a leading "v" and parses the version string. Short
// forms like "2.6" are accepted.
func parseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// ShortVersion formats v as "major.minor", adding the patch level only when
// it is non-zero.
func ShortVersion(v *semver.Version) string {
	if v.Patch() != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
