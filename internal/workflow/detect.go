package workflow

import (
	"context"
	"strings"

	"github.com/atdrago/lint-staged/internal/git"
)

// writeTree materializes the current index as a tree object and returns
// its identifier.
func writeTree(ctx context.Context, opts git.Options) (string, error) {
	return git.RunContext(ctx, opts, "write-tree")
}

// ListUnstagedFiles returns the paths whose working-tree content differs
// from the index. Returns an empty slice when the index materializes to no
// tree or when no differences exist.
func ListUnstagedFiles(ctx context.Context, opts git.Options) ([]string, error) {
	tree, err := writeTree(ctx, opts)
	if err != nil {
		return nil, err
	}
	if tree == "" {
		return nil, nil
	}

	out, err := git.RunContext(ctx, opts, "diff-index", "--name-only", tree, "--")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// HasUnstagedFiles reports whether the working tree has modifications not
// present in the index.
func HasUnstagedFiles(ctx context.Context, opts git.Options) (bool, error) {
	files, err := ListUnstagedFiles(ctx, opts)
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}
