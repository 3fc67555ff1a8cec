package posts

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogkit/internal/authors"
	bkerrors "git.home.luguber.info/inful/blogkit/internal/errors"
	"git.home.luguber.info/inful/blogkit/internal/frontmatter"
	"git.home.luguber.info/inful/blogkit/internal/gitmeta"
	"git.home.luguber.info/inful/blogkit/internal/logfields"
)

// LoaderOptions bundles inputs for loading a content directory.
type LoaderOptions struct {
	ContentDir    string
	AuthorsMap    authors.Map
	BaseURL       string
	BlogBasePath  string // URL path prefix for post permalinks, default /blog
	IncludeDrafts bool
	IncludeFuture bool
	Now           time.Time // zero means time.Now()
}

// filenameDate matches the `YYYY-MM-DD-` prefix convention for post files.
var filenameDate = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// Load walks the content directory and parses every Markdown post. Posts are
// returned sorted by date, newest first; ordering is deterministic for posts
// sharing a date (slug ascending).
func Load(opts LoaderOptions) ([]*Post, error) {
	if opts.BlogBasePath == "" {
		opts.BlogBasePath = "/blog"
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var loaded []*Post
	err := filepath.WalkDir(opts.ContentDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden and underscore-prefixed directories hold partials, not posts.
			name := d.Name()
			if p != opts.ContentDir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".md" && ext != ".markdown" {
			return nil
		}

		post, err := parseFile(p, opts)
		if err != nil {
			return err
		}

		if post.Draft && !opts.IncludeDrafts {
			slog.Debug("skipping draft post", logfields.Post(post.Slug), logfields.Path(p))
			return nil
		}
		if post.Date.After(now) && !opts.IncludeFuture {
			slog.Debug("skipping future-dated post", logfields.Post(post.Slug), logfields.Path(p))
			return nil
		}

		loaded = append(loaded, post)
		return nil
	})
	if err != nil {
		if _, ok := err.(*bkerrors.BlogKitError); ok {
			return nil, err
		}
		return nil, bkerrors.WrapError(err, bkerrors.CategoryFileSystem, "failed to walk content directory").
			WithContext("dir", opts.ContentDir)
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		if !loaded[i].Date.Equal(loaded[j].Date) {
			return loaded[i].Date.After(loaded[j].Date)
		}
		return loaded[i].Slug < loaded[j].Slug
	})
	return loaded, nil
}

func parseFile(p string, opts LoaderOptions) (*Post, error) {
	// #nosec G304 -- paths come from walking the user's own content dir.
	content, err := os.ReadFile(p)
	if err != nil {
		return nil, bkerrors.WrapError(err, bkerrors.CategoryFileSystem, "failed to read post").
			WithContext("path", p)
	}

	fields, body, _, err := frontmatter.Read(content)
	if err != nil {
		return nil, bkerrors.WrapError(err, bkerrors.CategoryContent, "failed to parse post front matter").
			WithContext("path", p)
	}

	resolvedAuthors, err := authors.Resolve(fields, opts.AuthorsMap, opts.BaseURL)
	if err != nil {
		return nil, bkerrors.WrapError(err, bkerrors.CategoryAuthors, "failed to resolve post authors").
			WithContext("path", p)
	}

	base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	dateFromName, nameSlug := splitFilenameDate(base)

	post := &Post{
		UID:         ensureUID(fields),
		Authors:     resolvedAuthors,
		SourcePath:  p,
		Body:        body,
		FrontMatter: fields,
	}

	post.Title = stringOr(fields, "title", titleFromName(nameSlug))
	post.Slug = stringOr(fields, "slug", "")
	if post.Slug == "" {
		post.Slug = Slugify(nameSlug)
	}
	post.Description = stringOr(fields, "description", "")
	post.Draft, _ = fields["draft"].(bool)
	post.Tags = stringList(fields["tags"])

	post.Date = resolveDate(fields, dateFromName, p)
	post.Permalink = path.Join(opts.BlogBasePath, post.Slug) + "/"

	return post, nil
}

// resolveDate picks the post date: front matter, then the filename prefix,
// then the file's last commit, then the filesystem mtime.
func resolveDate(fields map[string]any, fromName time.Time, p string) time.Time {
	switch v := fields["date"].(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
		slog.Warn("unparseable post date, falling back", logfields.Path(p), slog.String("date", v))
	}
	if !fromName.IsZero() {
		return fromName
	}
	if meta, ok := gitmeta.Lookup(p); ok {
		return meta.CommitTime
	}
	if info, err := os.Stat(p); err == nil {
		return info.ModTime()
	}
	return time.Time{}
}

func splitFilenameDate(base string) (time.Time, string) {
	m := filenameDate.FindStringSubmatch(base)
	if m == nil {
		return time.Time{}, base
	}
	t, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Time{}, base
	}
	return t, m[2]
}

// titleFromName converts kebab or snake file names to Title Case:
// getting-started -> Getting Started.
func titleFromName(name string) string {
	name = strings.ReplaceAll(name, "_", "-")
	parts := strings.Split(name, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(parts, " ")
}

func stringOr(fields map[string]any, key, fallback string) string {
	if s, ok := fields[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
