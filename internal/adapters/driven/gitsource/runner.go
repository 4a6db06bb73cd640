package gitsource

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git command and returns its stdout. It exists so
// tests can substitute a fake instead of a real repository.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// execRunner runs git as a subprocess with the repository as working
// directory.
type execRunner struct {
	dir string
}

func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.dir

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, fmt.Errorf("git %s failed: %w\n%s",
				strings.Join(args, " "), err, string(exitErr.Stderr))
		}
		return output, fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}

	return output, nil
}
