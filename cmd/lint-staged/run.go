// Package main provides the entry point for the lint-staged CLI.
package main

import (
	"context"
	"errors"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/atdrago/lint-staged/internal/config"
	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/ledger"
	"github.com/atdrago/lint-staged/internal/output"
	"github.com/atdrago/lint-staged/internal/workflow"
)

// newRunCmd creates the run command.
func newRunCmd() *cobra.Command {
	var strategyFlag string
	var patchFileFlag string
	cmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a hook command against staged content, then reconcile",
		Long: `Drive a full isolation cycle around a hook command:

  1. Reduce the working tree to staged content
  2. Run the command
  3. Stage any fixes the command made
  4. Bring the original unstaged modifications back

Two isolation strategies are available:
  patch  stash unstaged modifications as a binary patch (default)
  tree   snapshot the working tree as git tree objects

The working tree is restored even when the command fails; its exit is
then reported after the restore. When staged fixes overlap restored
modifications, the command exits with the conflict code and both sides
survive.

Examples:
  lint-staged run -- gofmt -w .              # Format only staged content
  lint-staged run --strategy tree -- make lint
  lint-staged run --json -- ./check.sh`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, strategyFlag, patchFileFlag)
		},
	}
	cmd.Flags().StringVar(&strategyFlag, "strategy", "", "Isolation strategy: patch or tree")
	cmd.Flags().StringVar(&patchFileFlag, "patch-file", "", "Patch file name overriding the default")
	return cmd
}

// runRun executes the run command.
func runRun(cmd *cobra.Command, args []string, strategyFlag, patchFileFlag string) error {
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

	strategy := strategyFlag
	if strategy == "" {
		strategy = cfg.Strategy
	}
	if strategy == "" {
		strategy = config.StrategyPatch
	}

	switch strategy {
	case config.StrategyPatch:
		err = runWithPatch(cmd, opts, resolvePatchName(patchFileFlag, cfg), args)
	case config.StrategyTree:
		err = runWithTree(cmd, opts, args)
	default:
		err = output.NewUserError("invalid strategy " + strategy + ": must be patch or tree")
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"strategy": strategy,
			"command":  args,
		})
	}
	printer.Println("Hook finished; working tree restored.")
	return nil
}

// runWithPatch drives the patch strategy: save, hook, stage fixes, restore.
// The restore runs even when the hook fails, so the user's unstaged
// modifications never stay locked away behind a broken hook.
func runWithPatch(cmd *cobra.Command, opts git.Options, patchName string, hookArgs []string) error {
	ctx := cmd.Context()
	session := workflow.NewSession(opts, patchName)

	patch, err := session.Save(ctx)
	if err != nil {
		return err
	}

	hookErr := execHook(ctx, cmd, opts, hookArgs)

	if patch == "" {
		// Nothing was stashed; the hook ran against the full tree.
		return hookErr
	}

	// Stage the hook's fixes so the restore lands on top of them. Only
	// tracked files: the patch file itself must stay untracked.
	if _, err := git.RunContext(ctx, opts, "add", "-u"); err != nil {
		return err
	}

	state, err := session.Restore(ctx)
	if err != nil {
		return err
	}
	if err := session.Cleanup(ctx); err != nil {
		return err
	}

	if hookErr != nil {
		return hookErr
	}
	if state == workflow.StateConflicted {
		return output.NewConflictError(
			"hook fixes overlapped your unstaged modifications; " +
				"the fixes are staged and your original edits are back in the working tree")
	}
	return nil
}

// runWithTree drives the tree strategy: snapshot, hook, record fixes,
// restore. Like the patch strategy, the original working tree comes back
// even when the hook fails.
func runWithTree(cmd *cobra.Command, opts git.Options, hookArgs []string) error {
	ctx := cmd.Context()
	ledg := ledger.NewLedger(opts)

	if err := ledg.Begin(ctx); err != nil {
		return err
	}

	hookErr := execHook(ctx, cmd, opts, hookArgs)

	if hookErr == nil {
		// Stage and record the hook's fixes so End keeps them in the index.
		if _, err := git.RunContext(ctx, opts, "add", "-u"); err != nil {
			return err
		}
		if _, err := ledg.Advance(ctx); err != nil {
			return err
		}
	}

	if err := ledg.End(ctx); err != nil {
		return err
	}
	return hookErr
}

// execHook runs the hook command in the working directory, streaming its
// output through the CLI's own streams. A non-zero exit becomes a user
// error carrying the hook's exit status.
func execHook(ctx context.Context, cmd *cobra.Command, opts git.Options, args []string) error {
	hook := exec.CommandContext(ctx, args[0], args[1:]...)
	hook.Dir = opts.Cwd
	hook.Stdout = cmd.OutOrStdout()
	hook.Stderr = cmd.ErrOrStderr()

	if err := hook.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output.NewUserError("hook command failed: " + err.Error())
		}
		return output.NewSystemErrorWithCause("running hook command "+args[0], err)
	}
	return nil
}
