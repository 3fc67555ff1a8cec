package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogkit/internal/config"
)

func scaffoldSite(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	contentDir := filepath.Join(root, "blog")
	require.NoError(t, os.MkdirAll(contentDir, 0o755))

	authorsFile := filepath.Join(contentDir, "authors.yml")
	require.NoError(t, os.WriteFile(authorsFile, []byte(`
jdoe:
  name: Jane Doe
  title: Staff Engineer
  page: true
quiet:
  name: Quiet Author
  page: true
`), 0o644))

	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "2024-05-01-hello.md"), []byte(`---
title: Hello
authors: jdoe
---
First post body.
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "2024-06-01-second.md"), []byte(`---
title: Second
authors: [jdoe]
---
Second post body.
`), 0o644))

	return &config.Config{
		Version: config.SupportedVersion,
		Site:    config.SiteConfig{Title: "Test Blog", BaseURL: "https://blog.example.com"},
		Content: config.ContentConfig{Dir: contentDir, AuthorsFile: authorsFile},
		Blog:    config.BlogConfig{PageSize: 10, AuthorsBasePath: "/blog/authors"},
		Output:  config.OutputConfig{Directory: filepath.Join(root, "site")},
	}
}

func TestBuilder_Run(t *testing.T) {
	cfg := scaffoldSite(t)
	result, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Posts, 2)
	require.Len(t, result.AuthorsMap, 2)
	// Newest first, both posts in jdoe's bucket.
	require.Equal(t, "second", result.Posts[0].Slug)
	require.Len(t, result.Grouped["jdoe"], 2)
	require.Empty(t, result.Grouped["quiet"])

	// Author pages and index on disk.
	for _, p := range []string{
		"blog/authors/jdoe/index.html",
		"blog/authors/quiet/index.html",
		"blog/authors/index.html",
	} {
		_, err := os.Stat(filepath.Join(cfg.Output.Directory, filepath.FromSlash(p)))
		require.NoError(t, err, p)
	}
}

func TestBuilder_Run_UnknownAuthorFails(t *testing.T) {
	cfg := scaffoldSite(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Content.Dir, "2024-07-01-bad.md"), []byte(`---
title: Bad
authors: stranger
---
body
`), 0o644))

	_, err := New(cfg, nil).Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), `author key "stranger" not found`)
	require.Contains(t, err.Error(), "valid keys are: jdoe, quiet")
}

func TestBuilder_Run_NoAuthorsFileConfigured(t *testing.T) {
	cfg := scaffoldSite(t)
	cfg.Content.AuthorsFile = ""
	// Keyed references must now fail; swap content to inline authors only.
	require.NoError(t, os.RemoveAll(cfg.Content.Dir))
	require.NoError(t, os.MkdirAll(cfg.Content.Dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Content.Dir, "2024-05-01-guest.md"), []byte(`---
title: Guest
authors:
  name: Guest Writer
---
body
`), 0o644))

	result, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.Empty(t, result.Grouped)
}

func TestBuilder_Run_Canceled(t *testing.T) {
	cfg := scaffoldSite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
