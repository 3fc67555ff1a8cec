// Package gitmeta reads commit metadata for content files. It is a soft
// dependency: posts outside a git repository simply get no metadata.
package gitmeta

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/blogkit/internal/logfields"
)

// FileMeta describes the most recent commit touching a file.
type FileMeta struct {
	CommitTime  time.Time
	AuthorName  string
	AuthorEmail string
}

// Lookup returns commit metadata for the given file. ok is false when the
// file is not inside a git repository or has no commit history yet.
func Lookup(path string) (meta FileMeta, ok bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileMeta{}, false
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("file is not in a git repository", logfields.Path(path))
		return FileMeta{}, false
	}

	wt, err := repo.Worktree()
	if err != nil {
		return FileMeta{}, false
	}
	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return FileMeta{}, false
	}
	rel = filepath.ToSlash(rel)

	iter, err := repo.Log(&git.LogOptions{FileName: &rel, Order: git.LogOrderCommitterTime})
	if err != nil {
		slog.Debug("git log failed", logfields.Path(path), logfields.Error(err))
		return FileMeta{}, false
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		// No history for this file (e.g. untracked).
		return FileMeta{}, false
	}

	return FileMeta{
		CommitTime:  commit.Author.When,
		AuthorName:  commit.Author.Name,
		AuthorEmail: commit.Author.Email,
	}, true
}
