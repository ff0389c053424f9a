package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/output"
)

// State is the position of a Session in its lifecycle.
type State int

const (
	// StateClean means no stash is active.
	StateClean State = iota
	// StateStashed means a patch was captured and the working tree holds
	// exactly the staged content.
	StateStashed
	// StateApplied means the patch reapplied cleanly after the hook ran.
	StateApplied
	// StateConflicted means hook fixes collided with the captured edits;
	// both sides were reconciled, overlaps are left for the user.
	StateConflicted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateStashed:
		return "stashed"
	case StateApplied:
		return "applied"
	case StateConflicted:
		return "conflicted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrNoPatch is returned when restore is attempted without a captured patch.
var ErrNoPatch = errors.New("no patch found; nothing to restore")

// ErrSessionActive is returned when save is called while a stash from an
// earlier save has not been cleaned up.
var ErrSessionActive = errors.New("a stash is already in progress; restore and clean up first")

// Session is the stash/restore state machine for one working directory.
// It owns the patch file and the stash entry created by Save. At most one
// session may be active against a working directory at a time.
type Session struct {
	opts      git.Options
	patchName string
	patch     string
	state     State
}

// NewSession creates a Clean session for the working directory selected by
// opts. An empty patchName selects the default PatchName.
func NewSession(opts git.Options, patchName string) *Session {
	return &Session{opts: opts, patchName: patchName, state: StateClean}
}

// Resume reconstructs a Stashed session from an existing on-disk patch
// file, so restore can run in a different process than save.
// Returns ErrNoPatch when no patch file exists.
func Resume(opts git.Options, patchName string) (*Session, error) {
	path, err := PatchPath(opts, patchName)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoPatch
		}
		return nil, output.NewSystemErrorWithCause("checking patch file "+path, err)
	}
	return &Session{opts: opts, patchName: patchName, patch: path, state: StateStashed}, nil
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// PatchPath returns the captured patch location, or "" before Save has
// captured one.
func (s *Session) PatchPath() string {
	return s.patch
}

// Save captures the unstaged modifications as a patch and stashes them,
// leaving the working tree holding exactly the staged content. Returns the
// patch path, or "" when the working tree has no unstaged modifications
// (no-op, the session stays Clean).
//
// Any failure here happens before the hook runs; nothing destructive has
// touched the unstaged content yet, so the working tree is left as-is.
func (s *Session) Save(ctx context.Context) (string, error) {
	if s.state != StateClean {
		return "", ErrSessionActive
	}

	has, err := HasUnstagedFiles(ctx, s.opts)
	if err != nil {
		return "", err
	}
	if !has {
		return "", nil
	}

	patch, err := CapturePatch(ctx, s.opts, s.patchName)
	if err != nil {
		return "", err
	}
	if patch == "" {
		return "", nil
	}

	// Stash the working tree but keep the index, so the working directory
	// now reflects exactly the content that will be committed.
	if _, err := git.RunContext(ctx, s.opts, "stash", "--keep-index"); err != nil {
		return "", err
	}

	s.patch = patch
	s.state = StateStashed
	return patch, nil
}

// Restore brings the captured unstaged modifications back on top of the
// hook's fixes. The hook's fixes are expected to be staged by the caller
// before Restore runs.
//
// Returns StateApplied when the patch reapplies cleanly. When it does not
// (the fixes touch the same regions as the captured edits), Restore
// reconciles both sides through the stash and a tree merge and returns
// StateConflicted without an error. Any other command failure propagates:
// it likely means the stash is stuck and needs manual attention.
func (s *Session) Restore(ctx context.Context) (State, error) {
	if s.patch == "" {
		return StateClean, ErrNoPatch
	}
	if s.state != StateStashed {
		return s.state, fmt.Errorf("restore called in %s state", s.state)
	}

	// Drop working-tree edits the hook left behind; its staged fixes
	// survive in the index.
	if _, err := git.RunContext(ctx, s.opts, "checkout", "--", "."); err != nil {
		return s.state, err
	}

	_, applyErr := git.RunContext(ctx, s.opts, "apply", "--whitespace=nowarn", s.patch)
	if applyErr == nil {
		s.state = StateApplied
		return s.state, nil
	}

	// "Patch does not apply" is the expected conflict signal. Anything
	// else (git missing, I/O failure) is not ours to swallow.
	var cmdErr *git.CommandError
	if !errors.As(applyErr, &cmdErr) {
		return s.state, applyErr
	}

	if err := s.recoverConflict(ctx); err != nil {
		return s.state, err
	}
	s.state = StateConflicted
	return s.state, nil
}

// recoverConflict reconciles the hook's fixes with the originally stashed
// unstaged edits: stash the hook-fixed state, pop the original unstaged
// changes back on top of it, then merge the hook-fix stash into the index
// with a tree merge. Unresolved overlaps are left for the user.
func (s *Session) recoverConflict(ctx context.Context) error {
	if _, err := git.RunContext(ctx, s.opts, "stash"); err != nil {
		return err
	}
	if _, err := git.RunContext(ctx, s.opts, "stash", "pop", "stash@{1}"); err != nil {
		// pop exits non-zero when it writes conflict markers; the entry
		// is still applied, so recovery continues.
		if !isConflictExit(err) {
			return err
		}
	}
	if _, err := git.RunContext(ctx, s.opts, "read-tree", "-m", "-i", "stash@{0}"); err != nil {
		return err
	}
	return nil
}

// isConflictExit reports whether err is a git exit describing a content
// conflict rather than an operational failure.
func isConflictExit(err error) bool {
	var cmdErr *git.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.ExitCode != 1 {
		return false
	}
	combined := cmdErr.Stdout + cmdErr.Stderr
	return strings.Contains(combined, "CONFLICT") || strings.Contains(combined, "conflict")
}

// Cleanup drops the stash entry created during Save or conflict recovery
// and deletes the patch file, returning the session to Clean. It runs
// after Restore regardless of the outcome, so no stash entries or patch
// files leak. Cleanup on a Clean session is a no-op.
func (s *Session) Cleanup(ctx context.Context) error {
	if s.state == StateClean {
		return nil
	}

	if _, err := git.RunContext(ctx, s.opts, "stash", "drop"); err != nil {
		return err
	}
	if s.patch != "" {
		if err := os.Remove(s.patch); err != nil && !os.IsNotExist(err) {
			return output.NewSystemErrorWithCause("removing patch file "+s.patch, err)
		}
	}

	s.patch = ""
	s.state = StateClean
	return nil
}
