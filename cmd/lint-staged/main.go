// Package main provides the entry point for the lint-staged CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/atdrago/lint-staged/internal/config"
	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the lint-staged CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint-staged",
		Short: "Run hooks against staged content without losing unstaged work",
		Long: `lint-staged isolates unstaged modifications so hooks, linters, and
formatters see exactly the content that will be committed.

A typical pre-commit cycle:
  - save: stash unstaged modifications, leaving only staged content
  - run your hook or formatter against the working tree
  - pop: bring the unstaged modifications back on top of any fixes

The run command drives the whole cycle in one step. When hook fixes
overlap the restored modifications, both sides are preserved: the fix
stays staged and the original edit returns to the working tree.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'lint-staged --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("cwd", "", "Working directory to operate in")
	cmd.PersistentFlags().String("git-dir", "", "Path to the git directory when outside the repository")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "engine", Title: "Engine Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspect Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Engine commands: save, pop, run
	addGroupedCommand(cmd, newSaveCmd(), "engine")
	addGroupedCommand(cmd, newPopCmd(), "engine")
	addGroupedCommand(cmd, newRunCmd(), "engine")

	// Inspect commands: files, status
	addGroupedCommand(cmd, newFilesCmd(), "inspect")
	addGroupedCommand(cmd, newStatusCmd(), "inspect")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// resolveSettings combines persistent flags with the project configuration
// file. Flags win over file values; the file is optional.
func resolveSettings(cmd *cobra.Command) (git.Options, *config.Config, error) {
	cwd, _ := cmd.Root().PersistentFlags().GetString("cwd")
	gitDir, _ := cmd.Root().PersistentFlags().GetString("git-dir")

	dir := cwd
	if dir == "" {
		dir = "."
	}
	cfg, err := config.LoadDir(dir)
	if errors.Is(err, config.ErrNotFound) {
		cfg = &config.Config{}
	} else if err != nil {
		return git.Options{}, nil, output.NewUserError(err.Error())
	}

	if gitDir == "" {
		gitDir = cfg.GitDir
	}
	return git.Options{Cwd: cwd, GitDir: gitDir}, cfg, nil
}

// resolvePatchName picks the patch file name from the --patch-file flag or
// the configuration file. Empty means the built-in default.
func resolvePatchName(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.PatchFile
}
