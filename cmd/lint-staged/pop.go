// Package main provides the entry point for the lint-staged CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/output"
	"github.com/atdrago/lint-staged/internal/workflow"
)

// newPopCmd creates the pop command.
func newPopCmd() *cobra.Command {
	var patchFileFlag string
	cmd := &cobra.Command{
		Use:   "pop",
		Short: "Restore the stashed unstaged modifications",
		Long: `Bring back the unstaged modifications captured by a previous save,
reapplying them on top of any fixes your hooks staged in between.

When a staged fix overlaps a restored modification, both sides are
preserved: the fix stays in the index and the original edit returns to
the working tree. The command then exits with the conflict code so
scripts can tell the two outcomes apart.

Examples:
  lint-staged pop          # Restore after hooks ran
  lint-staged pop --json   # Output result as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPop(cmd, args, patchFileFlag)
		},
	}
	cmd.Flags().StringVar(&patchFileFlag, "patch-file", "", "Patch file name overriding the default")
	return cmd
}

// runPop executes the pop command.
func runPop(cmd *cobra.Command, _ []string, patchFileFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	opts, cfg, err := resolveSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if !git.IsRepo(opts) {
		err := output.NewSystemError("not in a git repository")
		printer.Error(err)
		return err
	}

	session, err := workflow.Resume(opts, resolvePatchName(patchFileFlag, cfg))
	if err != nil {
		if errors.Is(err, workflow.ErrNoPatch) {
			err = output.NewUserError("no saved patch to restore. Run 'lint-staged save' first")
		}
		printer.Error(err)
		return err
	}

	state, err := session.Restore(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}
	if err := session.Cleanup(cmd.Context()); err != nil {
		printer.Error(err)
		return err
	}

	if state == workflow.StateConflicted {
		conflictErr := output.NewConflictError(
			"staged fixes overlapped the restored modifications; " +
				"the fixes are staged and your original edits are back in the working tree")
		printer.Error(conflictErr)
		return conflictErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"state":      state.String(),
			"conflicted": false,
		})
	}
	printer.Println("Restored unstaged modifications.")
	return nil
}
