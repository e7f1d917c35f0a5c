// Package config manages user-level settings stored at ~/.forge/config.yaml.
// The settings supply the generation constants that are not part of a
// project specification: engine name, bundle identifier prefix, build-tool
// and language versions, the shared-media alias policy and the default
// material program.
package config
