// Package cli defines the Cobra command tree for the forge CLI. Each file
// registers one top-level command (new, material, texture, config, version)
// with the root command. Commands parse flags and arguments, then delegate
// to the project, scaffold, asset and descriptor packages.
package cli
