package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_BasicMarkdown(t *testing.T) {
	html, err := Render([]byte("# Title\n\nHello **world**\n"))
	require.NoError(t, err)
	require.Contains(t, string(html), "<h1>Title</h1>")
	require.Contains(t, string(html), "<strong>world</strong>")
}

func TestExcerpt_TruncateMarker(t *testing.T) {
	body := []byte("Intro paragraph.\n\nMore intro.\n\n<!--truncate-->\n\nRest of the post.\n")
	got := Excerpt(body)
	require.Equal(t, "Intro paragraph.\n\nMore intro.", string(got))
}

func TestExcerpt_FirstParagraphFallback(t *testing.T) {
	body := []byte("# Heading\n\nFirst paragraph spanning\ntwo lines.\n\nSecond paragraph.\n")
	got := Excerpt(body)
	require.Equal(t, "First paragraph spanning\ntwo lines.", string(got))
}

func TestExcerpt_EmptyBody(t *testing.T) {
	require.Nil(t, Excerpt(nil))
}

func TestRenderExcerpt(t *testing.T) {
	body := []byte("Short *intro*.\n\n<!--truncate-->\n\nLong tail.\n")
	html, err := RenderExcerpt(body)
	require.NoError(t, err)
	require.Contains(t, string(html), "<em>intro</em>")
	require.NotContains(t, string(html), "Long tail")
}

func TestPlainText(t *testing.T) {
	body := []byte("# Title\n\nHello [link](https://example.com) and **bold**\ntext.\n")
	got := PlainText(body)
	require.Contains(t, got, "Hello link and bold text.")
	require.False(t, strings.Contains(got, "]("), "markdown syntax should be stripped")
}
