// Package layout builds the directory tree of a generated project. Every
// required directory is created if missing and accepted if already present;
// a non-directory in the way is a conflict that stops the run. It also
// establishes the optional alias from the project's data directory to a
// shared asset tree outside the project.
package layout
