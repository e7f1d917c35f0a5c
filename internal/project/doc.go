// Package project validates the kind, name and root path of a project to be
// scaffolded and produces the immutable Spec every later stage works from.
package project
