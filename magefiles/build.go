//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Binary compiles forge into bin/ with version information stamped in.
func (Build) Binary() error {
	ldflags := fmt.Sprintf("-X main.version=%s -X main.date=%s",
		gitDescribe(), time.Now().UTC().Format(time.RFC3339))
	_, err := executeCmd("go", withArgs("build", "-ldflags", ldflags, "-o", "bin/forge", "."), withEnv("CGO_ENABLED=0"))
	return err
}

// Tidy runs go mod tidy.
func (Build) Tidy() error {
	if _, err := executeCmd("go", withArgs("mod", "tidy")); err != nil {
		return fmt.Errorf("failed to run go mod tidy: %w", err)
	}
	return nil
}
