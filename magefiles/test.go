//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// All runs every package test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Race runs the tests with the race detector; the config watcher is the only
// concurrent code.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./internal/config/...", "./internal/game/..."), withStream())
	return err
}

// Vet runs go vet.
func (Test) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
