// Package main provides the entry point for the lint-staged CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/output"
	"github.com/atdrago/lint-staged/internal/workflow"
)

// newSaveCmd creates the save command.
func newSaveCmd() *cobra.Command {
	var patchFileFlag string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Stash unstaged modifications, leaving only staged content",
		Long: `Capture unstaged modifications as a patch and stash them away.

After save, the working tree holds exactly the content that will be
committed, so hooks and formatters cannot see or touch half-staged
edits. Run pop afterwards to bring the modifications back.

A clean working tree makes save a no-op.

Examples:
  lint-staged save                           # Stash with the default patch file
  lint-staged save --patch-file .fix.patch   # Use a custom patch file name
  lint-staged save --json                    # Output result as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, args, patchFileFlag)
		},
	}
	cmd.Flags().StringVar(&patchFileFlag, "patch-file", "", "Patch file name overriding the default")
	return cmd
}

// runSave executes the save command.
func runSave(cmd *cobra.Command, _ []string, patchFileFlag string) error {
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

	session := workflow.NewSession(opts, resolvePatchName(patchFileFlag, cfg))
	patch, err := session.Save(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"stashed": patch != "",
			"patch":   patch,
			"state":   session.State().String(),
		})
	}

	if patch == "" {
		printer.Println("Nothing to stash; working tree matches the index.")
		return nil
	}
	printer.Println("Stashed unstaged modifications.")
	printer.KeyValue("Patch", patch)
	printer.Println("Run 'lint-staged pop' after your hooks to bring them back.")
	return nil
}
