// Package shell runs short-lived platform commands and collects their output.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolMissing reports that the command's binary is not on PATH.
var ErrToolMissing = errors.New("tool not found in PATH")

// Runner executes one argv synchronously and returns its combined output.
// Control surfaces depend on this interface so tests can script outcomes.
type Runner interface {
	Run(ctx context.Context, argv []string) (string, error)
}

// Exec is the production Runner backed by os/exec.
type Exec struct{}

// Run executes argv, waits for completion, and wraps failures with the
// trimmed combined output when the tool produced any.
func (Exec) Run(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("command argv cannot be empty")
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolMissing, argv[0])
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(out))
		if trimmed == "" {
			return "", fmt.Errorf("%s %v failed: %w", argv[0], argv[1:], err)
		}
		return trimmed, fmt.Errorf("%s %v failed: %w (%s)", argv[0], argv[1:], err, trimmed)
	}
	return strings.TrimSpace(string(out)), nil
}
