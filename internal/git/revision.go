// Package git reads config files out of Git history so that a working copy
// can be compared against an earlier revision.
package git

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Revision is a file's contents as recorded at a resolved commit.
type Revision struct {
	// Commit is the hash the revision resolved to
	Commit string
	// Path is the file path relative to the repository root
	Path string
	// Data holds the file contents at that commit
	Data []byte
}

// ReadFileAtRevision returns the contents of file as of rev. The file may be
// given relative to the working directory or as an absolute path; the
// repository is found by searching upwards from it.
func ReadFileAtRevision(file, rev string) (*Revision, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", file, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a Git repository that path %q belongs to: %w", file, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for %q: %w", file, err)
	}

	root, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// The file may have been deleted from the working tree.
		resolved = filepath.Join(evalDir(abs), filepath.Base(abs))
	}

	rel, err := repoRelativePath(root, resolved)
	if err != nil {
		return nil, fmt.Errorf("path %q is outside repository %q: %w", file, root, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}

	f, err := commit.File(rel)
	if err != nil {
		return nil, fmt.Errorf("failed to find %q at revision %q: %w", rel, rev, err)
	}

	reader, err := f.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q at revision %q: %w", rel, rev, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q at revision %q: %w", rel, rev, err)
	}

	return &Revision{
		Commit: hash.String(),
		Path:   rel,
		Data:   data,
	}, nil
}

// repoRelativePath returns path relative to root in slash form. Paths that
// climb out of root are rejected.
func repoRelativePath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%q escapes %q", path, root)
	}
	return rel, nil
}

func evalDir(path string) string {
	dir, err := filepath.EvalSymlinks(filepath.Dir(path))
	if err != nil {
		return filepath.Dir(path)
	}
	return dir
}
