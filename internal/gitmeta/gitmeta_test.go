package gitmeta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func TestLookup_OutsideRepository(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	_, ok := Lookup(path)
	require.False(t, ok)
}

func TestLookup_CommittedFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "blog", "post.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("blog/post.md")
	require.NoError(t, err)

	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	_, err = wt.Commit("add post", &git.CommitOptions{
		Author: &object.Signature{Name: "Jane Doe", Email: "jane@example.com", When: when},
	})
	require.NoError(t, err)

	meta, ok := Lookup(path)
	require.True(t, ok)
	require.Equal(t, "Jane Doe", meta.AuthorName)
	require.Equal(t, "jane@example.com", meta.AuthorEmail)
	require.True(t, meta.CommitTime.Equal(when))
}

func TestLookup_UntrackedFileInRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "untracked.md")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	_, ok := Lookup(path)
	require.False(t, ok)
}
