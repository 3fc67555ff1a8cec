// Package posts loads blog posts from a content directory and models their
// resolved metadata.
package posts

import (
	"time"

	"git.home.luguber.info/inful/blogkit/internal/authors"
)

// Post is a blog post with parsed front matter and resolved author metadata.
type Post struct {
	UID         string
	Title       string
	Slug        string
	Date        time.Time
	Draft       bool
	Description string
	Tags        []string
	Authors     []authors.Author
	Permalink   string
	SourcePath  string
	Body        []byte
	FrontMatter map[string]any
}

// AuthorKeys returns the keys of the post's map-declared authors, in author
// order. Inline authors have no key and are not included.
func (p *Post) AuthorKeys() []string {
	var keys []string
	for _, a := range p.Authors {
		if a.Key != "" {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

// HasAuthorKey reports whether the post credits the given map-declared author.
func (p *Post) HasAuthorKey(key string) bool {
	for _, a := range p.Authors {
		if a.Key == key {
			return true
		}
	}
	return false
}
