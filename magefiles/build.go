//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Game compiles the frogger binary into bin/.
func (Build) Game() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/frogger", "./cmd/frogger"), withStream())
	return err
}

// Tidy runs go mod tidy.
func (Build) Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"), withStream())
	return err
}
