// Package output provides structured output handling for the lint-staged CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and for scripts or hook runners
// that parse the result.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Stashed unstaged changes", "patch": path})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "patch": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped.
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, nothing to restore)
//	output.ExitSystemError // 2: System error (git failed, I/O error)
//	output.ExitConflict    // 3: Conflict (hook fixes collided with unstaged edits)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("no patch found; run 'lint-staged save' first")
//	output.NewSystemError("git command failed")
//	output.NewConflictError("unstaged changes restored with conflicts")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
