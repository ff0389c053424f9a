package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atdrago/lint-staged/internal/git"
	"github.com/atdrago/lint-staged/internal/workflow"
)

// --- Files tool ---

// FilesInput is the input for the files tool (no parameters needed).
type FilesInput struct{}

// FilesOutput is the output for the files tool.
type FilesOutput struct {
	Count int      `json:"count"           jsonschema:"number of files with unstaged modifications"`
	Files []string `json:"files,omitempty" jsonschema:"paths whose working-tree content differs from the index"`
}

func handleFiles(opts git.Options) mcp.ToolHandlerFor[FilesInput, FilesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ FilesInput) (*mcp.CallToolResult, FilesOutput, error) {
		files, err := workflow.ListUnstagedFiles(ctx, opts)
		if err != nil {
			return nil, FilesOutput{}, fmt.Errorf("listing unstaged files: %w", err)
		}
		return nil, FilesOutput{Count: len(files), Files: files}, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Repo          string `json:"repo"                 jsonschema:"repository name"`
	Branch        string `json:"branch"               jsonschema:"current branch"`
	Head          string `json:"head"                 jsonschema:"HEAD commit SHA"`
	UnstagedCount int    `json:"unstaged_count"       jsonschema:"number of files with unstaged modifications"`
	PatchPresent  bool   `json:"patch_present"        jsonschema:"whether a saved patch is waiting to be restored"`
	PatchPath     string `json:"patch_path,omitempty" jsonschema:"path to the saved patch file"`
}

func handleStatus(opts git.Options) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		root, err := git.RepoRoot(opts)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("getting repo root: %w", err)
		}

		branch, err := git.CurrentBranch(opts)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("getting current branch: %w", err)
		}

		head, err := git.HEAD(opts)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("getting HEAD: %w", err)
		}

		files, err := workflow.ListUnstagedFiles(ctx, opts)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("listing unstaged files: %w", err)
		}

		patchPath, err := workflow.PatchPath(opts, "")
		if err != nil {
			return nil, StatusOutput{}, err
		}
		_, statErr := os.Stat(patchPath)
		present := statErr == nil

		out := StatusOutput{
			Repo:          filepath.Base(root),
			Branch:        branch,
			Head:          head,
			UnstagedCount: len(files),
			PatchPresent:  present,
		}
		if present {
			out.PatchPath = patchPath
		}
		return nil, out, nil
	}
}

// --- Save tool ---

// SaveInput is the input for the save tool.
type SaveInput struct {
	PatchFile string `json:"patch_file,omitempty" jsonschema:"patch file name overriding the default"`
}

// SaveOutput is the output for the save tool.
type SaveOutput struct {
	Stashed   bool   `json:"stashed"              jsonschema:"whether unstaged modifications were stashed"`
	PatchPath string `json:"patch_path,omitempty" jsonschema:"path to the captured patch file"`
	State     string `json:"state"                jsonschema:"session state after the save"`
}

func handleSave(opts git.Options) mcp.ToolHandlerFor[SaveInput, SaveOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, SaveOutput, error) {
		session := workflow.NewSession(opts, input.PatchFile)
		patch, err := session.Save(ctx)
		if err != nil {
			return nil, SaveOutput{}, fmt.Errorf("saving unstaged modifications: %w", err)
		}
		return nil, SaveOutput{
			Stashed:   patch != "",
			PatchPath: patch,
			State:     session.State().String(),
		}, nil
	}
}

// --- Pop tool ---

// PopInput is the input for the pop tool.
type PopInput struct {
	PatchFile string `json:"patch_file,omitempty" jsonschema:"patch file name overriding the default"`
}

// PopOutput is the output for the pop tool.
type PopOutput struct {
	State      string `json:"state"      jsonschema:"session state after the restore"`
	Conflicted bool   `json:"conflicted" jsonschema:"whether staged fixes overlapped the restored modifications"`
}

func handlePop(opts git.Options) mcp.ToolHandlerFor[PopInput, PopOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PopInput) (*mcp.CallToolResult, PopOutput, error) {
		session, err := workflow.Resume(opts, input.PatchFile)
		if err != nil {
			if errors.Is(err, workflow.ErrNoPatch) {
				return nil, PopOutput{}, errors.New("no saved patch to restore; run save first")
			}
			return nil, PopOutput{}, err
		}

		state, err := session.Restore(ctx)
		if err != nil {
			return nil, PopOutput{}, fmt.Errorf("restoring unstaged modifications: %w", err)
		}
		if err := session.Cleanup(ctx); err != nil {
			return nil, PopOutput{}, fmt.Errorf("cleaning up session: %w", err)
		}

		return nil, PopOutput{
			State:      state.String(),
			Conflicted: state == workflow.StateConflicted,
		}, nil
	}
}
