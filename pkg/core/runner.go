// pkg/core/runner.go
package core

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Runner runs external tools. Strategies depend on this interface so tests
// can substitute a fake instead of invoking cmake, pkg-config or the binding
// generator.
type Runner interface {
	// Run executes the command, discarding stdout
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its stdout
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands via os/exec
type ExecRunner struct {
	// Logger receives the command lines when set
	Logger *log.Logger
}

// Run executes the command, discarding stdout
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	_, err := r.Output(ctx, name, args...)
	return err
}

// Output executes the command and returns its stdout
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	if r.Logger != nil {
		r.Logger.Printf("exec: %s %s", name, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %s: %w", name, msg, err)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return stdout.String(), nil
}
