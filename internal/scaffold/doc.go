// Package scaffold generates a new engine project: the directory tree, the
// optional shared-media alias, and the build configuration, header and
// source stubs rendered from embedded templates. It powers the "forge new"
// command.
//
// Templates use [[ ]] as action delimiters so CMake's ${VAR} syntax can be
// written verbatim.
package scaffold
