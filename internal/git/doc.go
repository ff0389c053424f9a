// Package git provides Git operations via exec for the lint-staged engine.
//
// This package wraps git commands by shelling out to the git executable,
// capturing stdout/stderr and surfacing non-zero exits as typed errors.
// Every other package goes through it; nothing else invokes the binary.
//
// # Running Git Commands
//
// Commands take an Options value selecting the working directory and an
// optional repository metadata directory:
//
//	opts := git.Options{Cwd: "/path/to/worktree"}
//	out, err := git.Run(opts, "status", "--short")
//	out, err := git.RunContext(ctx, opts, "write-tree")
//
// When Options.GitDir is set it is passed as --git-dir, so commands work
// even when Cwd lies outside the repository root. Options.Cwd is resolved
// to an absolute path before invocation.
//
// Run and RunContext return trimmed stdout. Output returns the raw bytes,
// which the patch capture path requires: binary diffs must reach git apply
// byte for byte.
//
// # Error Handling
//
// A non-zero exit produces a *CommandError carrying the exit code and the
// captured stdout/stderr. Callers that expect certain exits (diff-index
// --exit-code reporting a difference, apply refusing a patch) branch on it
// with errors.As:
//
//	var cmdErr *git.CommandError
//	if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
//	    // expected signal, not a failure
//	}
//
// A missing git binary is reported as a system error (exit code 2).
package git
