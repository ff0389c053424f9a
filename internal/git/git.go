package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atdrago/lint-staged/internal/output"
)

// Options controls where a git command runs.
type Options struct {
	// Cwd is the working directory for the command. Relative paths are
	// resolved against the current process directory. Empty means the
	// process directory itself.
	Cwd string

	// GitDir, when set, is passed as an explicit --git-dir override so the
	// command works even when Cwd is outside the repository.
	GitDir string
}

// CommandError is returned when the git binary exits non-zero.
// It carries the exit code and both captured output streams so callers
// can branch on expected failures (e.g. diff-index --exit-code).
type CommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("git %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
	}
	return fmt.Sprintf("git %s exited with code %d: %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

// Run executes a git command with the given arguments.
// It captures stdout and returns it as a trimmed string.
// Returns a *CommandError on non-zero exit.
func Run(opts Options, args ...string) (string, error) {
	return RunContext(context.Background(), opts, args...)
}

// RunContext executes a git command with the given context and arguments.
// It captures stdout and returns it as a trimmed string.
// Returns a *CommandError on non-zero exit.
func RunContext(ctx context.Context, opts Options, args ...string) (string, error) {
	out, err := Output(ctx, opts, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Output executes a git command and returns raw, untrimmed stdout bytes.
// Patch capture depends on this: diff-index --binary output must be
// preserved verbatim for git apply to accept it.
func Output(ctx context.Context, opts Options, args ...string) ([]byte, error) {
	argv := args
	if opts.GitDir != "" {
		argv = append([]string{"--git-dir", opts.GitDir}, args...)
	}

	cmd := exec.CommandContext(ctx, "git", argv...)
	if opts.Cwd != "" {
		dir, err := filepath.Abs(opts.Cwd)
		if err != nil {
			return nil, output.NewSystemErrorWithCause("resolving working directory "+opts.Cwd, err)
		}
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if git is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CommandError{
				Args:     argv,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}

		return nil, output.NewSystemErrorWithCause("git command failed", err)
	}

	return stdout.Bytes(), nil
}

// IsRepo checks if the directory selected by opts is inside a git repository.
func IsRepo(opts Options) bool {
	_, err := Run(opts, "rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the root directory of the repository selected by opts.
// Returns an error if not in a git repository.
func RepoRoot(opts Options) (string, error) {
	root, err := Run(opts, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// CurrentBranch returns the name of the current branch.
// Returns an error if not in a git repository or HEAD is detached.
func CurrentBranch(opts Options) (string, error) {
	branch, err := Run(opts, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get current branch", err)
	}
	return branch, nil
}

// HEAD returns the full SHA of the current HEAD commit.
// Returns an error if not in a git repository or no commits exist.
func HEAD(opts Options) (string, error) {
	sha, err := Run(opts, "rev-parse", "HEAD")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get HEAD", err)
	}
	return sha, nil
}
