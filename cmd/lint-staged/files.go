// Package main provides the entry point for the lint-staged CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/output"
	"github.com/atdrago/lint-staged/internal/workflow"
)

// newFilesCmd creates the files command.
func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List files with unstaged modifications",
		Long: `List the files whose working-tree content differs from the index.
These are the changes a save would stash away.

Examples:
  lint-staged files          # One path per line
  lint-staged files --json   # Output as JSON for scripting`,
		RunE: runFiles,
	}
}

// runFiles executes the files command.
func runFiles(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	opts, _, err := resolveSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if !git.IsRepo(opts) {
		err := output.NewSystemError("not in a git repository")
		printer.Error(err)
		return err
	}

	files, err := workflow.ListUnstagedFiles(cmd.Context(), opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"count": len(files),
			"files": files,
		})
	}

	for _, file := range files {
		printer.Println(file)
	}
	return nil
}
