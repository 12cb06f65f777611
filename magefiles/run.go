//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Game runs frogger with the config in the working directory.
func (Run) Game() error {
	fmt.Println("Run frogger...")
	_, err := executeCmd("go", withArgs("run", "./cmd/frogger", "-config", "frogger.toml"), withStream())
	return err
}

// Debug runs frogger with debug logging.
func (Run) Debug() error {
	mg.Deps(Build.Game)
	_, err := executeCmd("bin/frogger", withArgs("-log-level", "debug"), withStream())
	return err
}
