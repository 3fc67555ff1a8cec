// Package markdown renders post bodies and extracts listing excerpts.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// truncateMarker is the explicit excerpt boundary authors can place in a post.
var truncateMarker = []byte("<!--truncate-->")

// Render converts a Markdown body (frontmatter already removed) to HTML.
func Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Excerpt returns the Markdown excerpt of a body: everything before the
// explicit truncate marker when present, otherwise the first paragraph.
func Excerpt(body []byte) []byte {
	if idx := bytes.Index(body, truncateMarker); idx >= 0 {
		return bytes.TrimSpace(body[:idx])
	}
	return firstParagraph(body)
}

// RenderExcerpt renders the excerpt of a body to HTML.
func RenderExcerpt(body []byte) ([]byte, error) {
	return Render(Excerpt(body))
}

// PlainText flattens a Markdown body to its text content, for meta
// descriptions and search snippets.
func PlainText(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var buf bytes.Buffer
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := n.(*gmast.Text); ok {
			buf.Write(t.Segment.Value(body))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}

// firstParagraph returns the source of the first top-level paragraph.
// Headings are skipped so a post starting with a title still gets a
// meaningful excerpt.
func firstParagraph(body []byte) []byte {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		p, ok := n.(*gmast.Paragraph)
		if !ok {
			continue
		}
		lines := p.Lines()
		if lines.Len() == 0 {
			continue
		}
		start := lines.At(0).Start
		stop := lines.At(lines.Len() - 1).Stop
		return bytes.TrimSpace(body[start:stop])
	}
	return nil
}
