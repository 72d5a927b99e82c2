package toolchain

import (
	"os"
	"os/exec"
)

// Runner executes external commands for a project directory.
type Runner interface {
	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)

	// Run executes the command in dir with stdout and stderr passed
	// through to the caller's.
	Run(dir string, name string, args ...string) error

	// Output executes the command in dir and captures its stdout.
	// Stderr passes through.
	Output(dir string, name string, args ...string) ([]byte, error)
}

// ExecRunner is the os/exec backed Runner used outside of tests.
type ExecRunner struct{}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (ExecRunner) Run(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func (ExecRunner) Output(dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	return cmd.Output()
}
