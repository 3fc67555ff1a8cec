// Package authors loads the shared authors map, resolves post author
// metadata from front matter and enforces the author shape invariants.
package authors

import "sort"

// Author is the resolved author metadata attached to a blog post.
//
// Key is empty for authors declared inline in front matter; authors coming
// from the authors map carry the map key they were declared under.
type Author struct {
	Key      string            `json:"key,omitempty" yaml:"key,omitempty"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Title    string            `json:"title,omitempty" yaml:"title,omitempty"`
	URL      string            `json:"url,omitempty" yaml:"url,omitempty"`
	Email    string            `json:"email,omitempty" yaml:"email,omitempty"`
	ImageURL string            `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Socials  map[string]string `json:"socials,omitempty" yaml:"socials,omitempty"`
	Page     *Page             `json:"page,omitempty" yaml:"page,omitempty"`
}

// Page controls whether an author gets a generated listing page and where.
type Page struct {
	Permalink string `json:"permalink,omitempty" yaml:"permalink,omitempty"`
}

// HasPage reports whether the author should get a generated listing page.
func (a Author) HasPage() bool { return a.Page != nil }

// Map is the authors map loaded from the shared authors file. It is
// immutable after load.
type Map map[string]Author

// Keys returns the author keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
