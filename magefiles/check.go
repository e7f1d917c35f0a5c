//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Test runs the unit tests.
func (Check) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Lint runs go vet over every package.
func (Check) Lint() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// All runs the linters, then the tests.
func (Check) All() {
	mg.SerialDeps(Check.Lint, Check.Test)
}
