// Package render writes author listing pages into the output directory.
package render

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogkit/internal/authors"
	"git.home.luguber.info/inful/blogkit/internal/config"
	bkerrors "git.home.luguber.info/inful/blogkit/internal/errors"
	"git.home.luguber.info/inful/blogkit/internal/logfields"
	"git.home.luguber.info/inful/blogkit/internal/markdown"
	"git.home.luguber.info/inful/blogkit/internal/posts"
)

// Renderer writes author pages for one site configuration.
type Renderer struct {
	cfg       *config.Config
	pageTmpl  *template.Template
	indexTmpl *template.Template
}

// NewRenderer parses the built-in page templates.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	pageTmpl, err := template.New("author-page").Parse(authorPageTemplate)
	if err != nil {
		return nil, bkerrors.WrapError(err, bkerrors.CategoryInternal, "failed to parse author page template")
	}
	indexTmpl, err := template.New("authors-index").Parse(authorsIndexTemplate)
	if err != nil {
		return nil, bkerrors.WrapError(err, bkerrors.CategoryInternal, "failed to parse authors index template")
	}
	return &Renderer{cfg: cfg, pageTmpl: pageTmpl, indexTmpl: indexTmpl}, nil
}

type socialLink struct {
	Platform string
	URL      string
}

type postItem struct {
	Title       string
	Permalink   string
	Date        time.Time
	ExcerptHTML template.HTML
}

type authorPageData struct {
	SiteTitle   string
	Description string
	Author      authors.Author
	Socials     []socialLink
	Posts       []postItem
	Page        int
	TotalPages  int
	PrevURL     string
	NextURL     string
	IndexURL    string
}

type indexEntry struct {
	Name      string
	ImageURL  string
	Permalink string
	PostCount int
}

type indexPageData struct {
	SiteTitle string
	Authors   []indexEntry
}

// RenderAuthorPages writes paginated listing pages for every author with a
// page enabled, plus the authors index.
func (r *Renderer) RenderAuthorPages(m authors.Map, grouped map[string][]*posts.Post) error {
	var entries []indexEntry
	for _, key := range m.Keys() {
		author := m[key]
		if !author.HasPage() {
			continue
		}
		// Map entries skip the per-post resolution pass, so join site-relative
		// images with the base URL here.
		author.ImageURL = authors.NormalizeImageURL(author.ImageURL, r.cfg.Site.BaseURL)
		bucket := grouped[key]
		permalink := r.authorPermalink(author)
		if err := r.renderAuthor(author, permalink, bucket); err != nil {
			return err
		}
		entries = append(entries, indexEntry{
			Name:      author.Name,
			ImageURL:  author.ImageURL,
			Permalink: permalink,
			PostCount: len(bucket),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return r.renderIndex(entries)
}

// authorPermalink returns the author's page URL path: the explicit permalink
// from the authors map when set, otherwise the slugged key under the
// configured authors base path.
func (r *Renderer) authorPermalink(author authors.Author) string {
	if author.Page != nil && author.Page.Permalink != "" {
		p := author.Page.Permalink
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		return strings.TrimSuffix(p, "/") + "/"
	}
	return path.Join(r.cfg.Blog.AuthorsBasePath, posts.Slugify(author.Key)) + "/"
}

func (r *Renderer) renderAuthor(author authors.Author, permalink string, bucket []*posts.Post) error {
	pageSize := r.cfg.Blog.PageSize
	totalPages := (len(bucket) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	for page := 1; page <= totalPages; page++ {
		start := (page - 1) * pageSize
		end := start + pageSize
		if end > len(bucket) {
			end = len(bucket)
		}

		items, err := r.postItems(bucket[start:end])
		if err != nil {
			return err
		}

		data := authorPageData{
			SiteTitle:   r.cfg.Site.Title,
			Description: author.Title,
			Author:      author,
			Socials:     sortedSocials(author.Socials),
			Posts:       items,
			Page:        page,
			TotalPages:  totalPages,
			PrevURL:     pageURL(permalink, page-1),
			NextURL:     "",
			IndexURL:    strings.TrimSuffix(r.cfg.Blog.AuthorsBasePath, "/") + "/",
		}
		if page < totalPages {
			data.NextURL = pageURL(permalink, page+1)
		}

		outPath := filepath.Join(r.outputPath(pagePath(permalink, page)), "index.html")
		if err := r.writeTemplate(r.pageTmpl, outPath, data); err != nil {
			return err
		}
	}

	slog.Debug("rendered author pages",
		logfields.AuthorKey(author.Key),
		logfields.Count(len(bucket)),
		slog.Int("pages", totalPages))
	return nil
}

func (r *Renderer) renderIndex(entries []indexEntry) error {
	outPath := filepath.Join(r.outputPath(r.cfg.Blog.AuthorsBasePath), "index.html")
	return r.writeTemplate(r.indexTmpl, outPath, indexPageData{
		SiteTitle: r.cfg.Site.Title,
		Authors:   entries,
	})
}

func (r *Renderer) postItems(bucket []*posts.Post) ([]postItem, error) {
	items := make([]postItem, 0, len(bucket))
	for _, post := range bucket {
		excerpt, err := markdown.RenderExcerpt(post.Body)
		if err != nil {
			return nil, bkerrors.WrapError(err, bkerrors.CategoryRender, "failed to render post excerpt").
				WithContext("post", post.Slug)
		}
		items = append(items, postItem{
			Title:       post.Title,
			Permalink:   post.Permalink,
			Date:        post.Date,
			ExcerptHTML: template.HTML(excerpt), // #nosec G203 -- goldmark output of the user's own content
		})
	}
	return items, nil
}

func (r *Renderer) writeTemplate(tmpl *template.Template, outPath string, data any) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return bkerrors.WrapError(err, bkerrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", outPath)
	}

	f, err := os.Create(outPath) // #nosec G304 -- path is derived from the configured output dir
	if err != nil {
		return bkerrors.WrapError(err, bkerrors.CategoryFileSystem, "failed to create page file").
			WithContext("path", outPath)
	}
	defer func() { _ = f.Close() }()

	if err := tmpl.Execute(f, data); err != nil {
		return bkerrors.WrapError(err, bkerrors.CategoryRender, "failed to render page").
			WithContext("path", outPath)
	}
	return nil
}

// outputPath maps a URL path to a directory under the output dir.
func (r *Renderer) outputPath(urlPath string) string {
	return filepath.Join(r.cfg.Output.Directory, filepath.FromSlash(strings.TrimPrefix(urlPath, "/")))
}

// pagePath returns the URL path for page n of a listing: page 1 lives at the
// permalink itself, later pages under page/N/.
func pagePath(permalink string, n int) string {
	if n <= 1 {
		return permalink
	}
	return path.Join(permalink, "page", fmt.Sprint(n)) + "/"
}

// pageURL is pagePath for link targets; n < 1 means no link.
func pageURL(permalink string, n int) string {
	if n < 1 {
		return ""
	}
	return pagePath(permalink, n)
}

func sortedSocials(socials map[string]string) []socialLink {
	if len(socials) == 0 {
		return nil
	}
	links := make([]socialLink, 0, len(socials))
	for platform, url := range socials {
		links = append(links, socialLink{Platform: platform, URL: url})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Platform < links[j].Platform })
	return links
}
