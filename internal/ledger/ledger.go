// Package ledger records index states as git tree objects so a run can be
// rewound or replayed without touching the stash. It backs the tree
// isolation strategy: the original working tree survives as a snapshot
// object inside the object database while hooks run against staged-only
// content.
package ledger

import (
	"context"
	"errors"

	"github.com/atdrago/lint-staged/internal/git"
)

// ErrNoSnapshot is returned when Advance or End run before Begin has
// captured a snapshot.
var ErrNoSnapshot = errors.New("no snapshot recorded; begin a ledger first")

// ErrActive is returned when Begin runs while a snapshot is already held.
var ErrActive = errors.New("a snapshot is already recorded; end the ledger first")

// Ledger tracks index trees across a hook run. Begin snapshots both the
// index and the full working tree, then reduces the working directory to
// staged content. Advance records the index after each staging step. End
// restores the original working tree and leaves the index at the last
// recorded tree.
//
// All snapshots are ordinary tree objects. They stay alive in the object
// database for the gc grace period, so even a crashed run loses nothing.
type Ledger struct {
	opts     git.Options
	trees    []string
	workTree string
}

// NewLedger creates an empty ledger for the working directory selected by
// opts.
func NewLedger(opts git.Options) *Ledger {
	return &Ledger{opts: opts}
}

// Trees returns the recorded index trees, oldest first. The first entry is
// the index as it stood at Begin.
func (l *Ledger) Trees() []string {
	return l.trees
}

// Active reports whether Begin has recorded a snapshot that End has not
// yet released.
func (l *Ledger) Active() bool {
	return l.workTree != ""
}

// Begin snapshots the index and the full working tree, then checks the
// staged content out into the working directory. After Begin the working
// directory holds exactly what would be committed; everything else lives
// in the workTree snapshot.
func (l *Ledger) Begin(ctx context.Context) error {
	if l.Active() {
		return ErrActive
	}

	index, err := git.RunContext(ctx, l.opts, "write-tree")
	if err != nil {
		return err
	}

	// Stage everything so write-tree captures the working directory,
	// untracked files included, as one tree object.
	if _, err := git.RunContext(ctx, l.opts, "add", "."); err != nil {
		return err
	}
	workTree, err := git.RunContext(ctx, l.opts, "write-tree")
	if err != nil {
		return err
	}

	// Put the index back and materialize it into the working directory.
	if _, err := git.RunContext(ctx, l.opts, "read-tree", index); err != nil {
		return err
	}
	if _, err := git.RunContext(ctx, l.opts, "checkout-index", "-af"); err != nil {
		return err
	}

	l.trees = []string{index}
	l.workTree = workTree
	return nil
}

// Advance records the current index as the next tree in the ledger. The
// caller stages the hook's fixes before calling Advance.
func (l *Ledger) Advance(ctx context.Context) (string, error) {
	if !l.Active() {
		return "", ErrNoSnapshot
	}

	tree, err := git.RunContext(ctx, l.opts, "write-tree")
	if err != nil {
		return "", err
	}
	l.trees = append(l.trees, tree)
	return tree, nil
}

// End restores the full working tree captured at Begin and leaves the
// index at the most recently recorded tree, so hook fixes stay staged
// while the user's unstaged and untracked content comes back.
func (l *Ledger) End(ctx context.Context) error {
	if !l.Active() {
		return ErrNoSnapshot
	}

	if _, err := git.RunContext(ctx, l.opts, "read-tree", l.workTree); err != nil {
		return err
	}
	if _, err := git.RunContext(ctx, l.opts, "checkout-index", "-af"); err != nil {
		return err
	}
	if _, err := git.RunContext(ctx, l.opts, "read-tree", l.trees[len(l.trees)-1]); err != nil {
		return err
	}

	l.trees = nil
	l.workTree = ""
	return nil
}
