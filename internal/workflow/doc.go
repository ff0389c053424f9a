// Package workflow implements the stash/restore engine that isolates
// unstaged modifications from staged content.
//
// The engine lets an external hook (linter, formatter) run against exactly
// the content that will be committed, then brings the user's unstaged edits
// back, surviving collisions with hook-produced auto-fixes.
//
// # Session Lifecycle
//
// A Session is an explicit state machine: Clean → Stashed → Applied or
// Conflicted → Clean. One session per working directory at a time;
// concurrent sessions against the same repository are not supported.
//
//	session := workflow.NewSession(opts, "")
//	patch, err := session.Save(ctx)     // capture patch, stash unstaged edits
//	// ... hook runs against the staged-only working tree,
//	//     fixes are staged by the caller ...
//	result, err := session.Restore(ctx) // reapply the patch over hook fixes
//	err = session.Cleanup(ctx)          // drop the stash entry, delete the patch
//
// Save is a no-op when the working tree has no unstaged modifications.
// Restore ends in StateApplied when the patch reapplies cleanly, or in
// StateConflicted when hook fixes touched the same regions. In the
// conflicted case the engine reconciles both sides via the stash and a
// tree merge, leaving overlaps for the user to resolve. Conflicted is a
// handled outcome, not an error. Cleanup runs after either outcome so no
// stash entries or patch files leak.
//
// Resume reconstructs a Stashed session from the on-disk patch file, so
// save and restore can run as separate process invocations.
//
// # Change Detection
//
// ListUnstagedFiles and HasUnstagedFiles report working-tree content that
// differs from the index, by materializing the index as a tree object and
// diffing it against the working tree. Materialization is idempotent; git
// deduplicates identical tree content.
package workflow
