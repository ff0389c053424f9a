package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const tenLines = "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\nnine\nten\n"

type testRepo struct {
	t   *testing.T
	dir string
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	repo := &testRepo{t: t, dir: t.TempDir()}
	repo.git("init", "--initial-branch=main")
	repo.git("config", "user.email", "test@example.com")
	repo.git("config", "user.name", "Test User")
	repo.write("a.txt", tenLines)
	repo.git("add", ".")
	repo.git("commit", "-m", "init")
	return repo
}

func (r *testRepo) git(args ...string) string {
	r.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()

	if err := os.WriteFile(filepath.Join(r.dir, name), []byte(content), 0644); err != nil {
		r.t.Fatalf("failed to write %s: %v", name, err)
	}
}

func (r *testRepo) read(name string) string {
	r.t.Helper()

	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		r.t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

func (r *testRepo) stashCount() int {
	r.t.Helper()

	out := r.git("stash", "list")
	if out == "" {
		return 0
	}
	return len(strings.Split(out, "\n"))
}

// execute runs the CLI with the given arguments against the repo and
// returns the combined output and the command error. The --cwd flag is
// inserted right after the subcommand so it never lands behind a "--"
// separator.
func (r *testRepo) execute(args ...string) (string, error) {
	r.t.Helper()

	argv := append([]string{args[0], "--cwd", r.dir}, args[1:]...)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(argv)
	err := cmd.Execute()
	return buf.String(), err
}

// findSubCmd walks the command tree for a direct subcommand by name.
func findSubCmd(t *testing.T, name string) *cobra.Command {
	t.Helper()

	root := newRootCmd()
	for _, sub := range root.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}
