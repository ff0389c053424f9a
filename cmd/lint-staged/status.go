// Package main provides the entry point for the lint-staged CLI.
package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/atdrago/lint-staged/internal/config"
	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/output"
	"github.com/atdrago/lint-staged/internal/workflow"
)

// statusResult holds the data for status output.
type statusResult struct {
	Repo          string   `json:"repo"`
	Branch        string   `json:"branch"`
	Head          string   `json:"head"`
	UnstagedCount int      `json:"unstaged_count"`
	UnstagedFiles []string `json:"unstaged_files,omitempty"`
	PatchPresent  bool     `json:"patch_present"`
	PatchPath     string   `json:"patch_path,omitempty"`
	Strategy      string   `json:"strategy"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var patchFileFlag string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show repository and session state",
		Long: `Show the current state of the repository and any active session.

Displays repository info (name, branch, HEAD), the number of files with
unstaged modifications, and whether a saved patch is waiting to be
restored.

Examples:
  lint-staged status          # Show human-readable status
  lint-staged status --json   # Output status as JSON for scripting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, args, patchFileFlag)
		},
	}
	cmd.Flags().StringVar(&patchFileFlag, "patch-file", "", "Patch file name overriding the default")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string, patchFileFlag string) error {
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

	result, err := gatherStatus(cmd, opts, cfg, patchFileFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		data := map[string]any{
			"repo":           result.Repo,
			"branch":         result.Branch,
			"head":           result.Head,
			"unstaged_count": result.UnstagedCount,
			"unstaged_files": result.UnstagedFiles,
			"patch_present":  result.PatchPresent,
			"strategy":       result.Strategy,
		}
		if result.PatchPresent {
			data["patch_path"] = result.PatchPath
		}
		return printer.Success(data)
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all status information.
func gatherStatus(cmd *cobra.Command, opts git.Options, cfg *config.Config, patchFileFlag string) (*statusResult, error) {
	root, err := git.RepoRoot(opts)
	if err != nil {
		return nil, err
	}

	branch, err := git.CurrentBranch(opts)
	if err != nil {
		return nil, err
	}

	head, err := git.HEAD(opts)
	if err != nil {
		return nil, err
	}

	files, err := workflow.ListUnstagedFiles(cmd.Context(), opts)
	if err != nil {
		return nil, err
	}

	patchPath, err := workflow.PatchPath(opts, resolvePatchName(patchFileFlag, cfg))
	if err != nil {
		return nil, err
	}
	_, statErr := os.Stat(patchPath)
	patchPresent := statErr == nil

	strategy := cfg.Strategy
	if strategy == "" {
		strategy = config.StrategyPatch
	}

	result := &statusResult{
		Repo:          filepath.Base(root),
		Branch:        branch,
		Head:          head,
		UnstagedCount: len(files),
		UnstagedFiles: files,
		PatchPresent:  patchPresent,
		Strategy:      strategy,
	}
	if patchPresent {
		result.PatchPath = patchPath
	}
	return result, nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Repository")
	printer.KeyValue("Repo", status.Repo)
	printer.KeyValue("Branch", status.Branch)
	printer.KeyValue("HEAD", status.Head[:min(12, len(status.Head))])

	printer.Section("Session")
	printer.KeyValue("Unstaged files", strconv.Itoa(status.UnstagedCount))
	printer.KeyValue("Strategy", status.Strategy)
	printer.KeyValue("Saved patch", formatBool(status.PatchPresent))
	if status.PatchPresent {
		printer.KeyValue("Patch file", status.PatchPath)
	}
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
