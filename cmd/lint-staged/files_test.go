package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFilesCommand_CleanTree(t *testing.T) {
	repo := newTestRepo(t)

	out, err := repo.execute("files")
	if err != nil {
		t.Fatalf("files error = %v\n%s", err, out)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("files output = %q, want empty for clean tree", out)
	}
}

func TestFilesCommand_UnstagedEdits(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("a.txt", strings.Replace(tenLines, "ten", "TEN", 1))

	out, err := repo.execute("files")
	if err != nil {
		t.Fatalf("files error = %v\n%s", err, out)
	}
	if strings.TrimSpace(out) != "a.txt" {
		t.Errorf("files output = %q, want a.txt", out)
	}
}

func TestFilesCommand_JSON(t *testing.T) {
	repo := newTestRepo(t)
	repo.write("a.txt", strings.Replace(tenLines, "ten", "TEN", 1))

	out, err := repo.execute("files", "--json")
	if err != nil {
		t.Fatalf("files error = %v\n%s", err, out)
	}

	var result struct {
		Count int      `json:"count"`
		Files []string `json:"files"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, out)
	}
	if result.Count != 1 || len(result.Files) != 1 || result.Files[0] != "a.txt" {
		t.Errorf("files JSON = %+v, want one entry a.txt", result)
	}
}

func TestFilesCommand_NotARepo(t *testing.T) {
	repo := &testRepo{t: t, dir: t.TempDir()}

	_, err := repo.execute("files")
	if err == nil {
		t.Fatal("files in a non-repo directory should fail")
	}
}
