package workflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/output"
)

// PatchName is the default file name for the captured unstaged-changes
// patch, created in the working directory.
const PatchName = ".lint-staged.patch"

// PatchPath returns the patch file location for the working directory
// selected by opts. An empty name selects PatchName.
func PatchPath(opts git.Options, name string) (string, error) {
	if name == "" {
		name = PatchName
	}
	dir := opts.Cwd
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", output.NewSystemErrorWithCause("resolving working directory "+dir, err)
	}
	return filepath.Join(abs, name), nil
}

// CapturePatch produces a binary patch holding exactly the unstaged
// modifications and writes it to the patch file, overwriting any stale
// patch from an earlier run. Returns the patch path, or "" when the
// working tree matches the index (nothing to stash).
//
// diff-index runs with --exit-code, so "a difference exists" is reported
// as exit code 1 with the patch bytes on stdout. That exit is the expected
// signal, converted here into a captured patch rather than surfaced as a
// failure. Every other non-zero exit propagates.
func CapturePatch(ctx context.Context, opts git.Options, name string) (string, error) {
	tree, err := writeTree(ctx, opts)
	if err != nil {
		return "", err
	}
	if tree == "" {
		return "", nil
	}

	_, err = git.Output(ctx, opts,
		"diff-index", "--ignore-submodules", "--binary", "--exit-code",
		"--no-color", "--no-ext-diff", tree, "--")
	if err == nil {
		// No difference between index and working tree.
		return "", nil
	}

	var cmdErr *git.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.ExitCode != 1 || cmdErr.Stdout == "" {
		return "", err
	}

	path, err := PatchPath(opts, name)
	if err != nil {
		return "", err
	}
	// The diff bytes must be written verbatim; git apply rejects patches
	// that were reflowed or trimmed.
	if err := os.WriteFile(path, []byte(cmdErr.Stdout), 0644); err != nil {
		return "", output.NewSystemErrorWithCause("writing patch file "+path, err)
	}
	return path, nil
}
