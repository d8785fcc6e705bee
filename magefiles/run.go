//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demonstration program, optionally with the config at $ENGINEUTILS_CONFIG.
func (Run) Demo() error {
	args := []string{"run", "main.go"}
	if cfg := configPath(); cfg != "" {
		args = append(args, "--config", cfg)
	}
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests with the race detector.
func (Run) Test() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "-count=1", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the math benchmarks.
func (Run) Bench() error {
	if _, err := executeCmd("go", withArgs("test", "-run", "^$", "-bench", ".", "-benchmem", "./..."), withDir("engine/math"), withStream()); err != nil {
		return err
	}
	return nil
}
