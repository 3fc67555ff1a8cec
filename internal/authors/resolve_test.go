package authors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testBaseURL = "https://blog.example.com"

func writeAuthorsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authors.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func frontMatter(t *testing.T, doc string) map[string]any {
	t.Helper()
	var fm map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &fm))
	return fm
}

func testMap() Map {
	return Map{
		"slorber": {Key: "slorber", Name: "Sébastien Lorber", Title: "Maintainer", URL: "https://sebastienlorber.com"},
		"ozaki":   {Key: "ozaki", ImageURL: "/img/ozaki.png", Socials: map[string]string{"github": "https://github.com/ozakione"}},
	}
}

func TestResolve_NoAuthorFields(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, "title: Hello"), testMap(), testBaseURL)
	require.NoError(t, err)
	require.Nil(t, resolved)
}

func TestResolve_SingleKey(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, "authors: slorber"), testMap(), testBaseURL)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Equal(t, "slorber", resolved[0].Key)
	require.Equal(t, "Sébastien Lorber", resolved[0].Name)
}

func TestResolve_KeyList(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, "authors: [slorber, ozaki]"), testMap(), testBaseURL)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	require.Equal(t, "slorber", resolved[0].Key)
	require.Equal(t, "ozaki", resolved[1].Key)
}

func TestResolve_UnknownKeyListsValidKeys(t *testing.T) {
	_, err := Resolve(frontMatter(t, "authors: nobody"), testMap(), testBaseURL)
	require.Error(t, err)
	require.Contains(t, err.Error(), `author key "nobody" not found`)
	require.Contains(t, err.Error(), "valid keys are: ozaki, slorber")
}

func TestResolve_KeyWithoutMap(t *testing.T) {
	_, err := Resolve(frontMatter(t, "authors: slorber"), nil, testBaseURL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no authors map is loaded")
	require.Contains(t, err.Error(), "authors_file")
}

func TestResolve_InlineAuthor(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, `
authors:
  name: Guest Writer
  url: https://guest.example.com
`), testMap(), testBaseURL)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Empty(t, resolved[0].Key)
	require.Equal(t, "Guest Writer", resolved[0].Name)
}

func TestResolve_FrontMatterOverridesMapFields(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, `
authors:
  - key: slorber
    title: Guest Editor
`), testMap(), testBaseURL)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	// Overridden field wins; the rest comes from the map.
	require.Equal(t, "Guest Editor", resolved[0].Title)
	require.Equal(t, "Sébastien Lorber", resolved[0].Name)
	require.Equal(t, "https://sebastienlorber.com", resolved[0].URL)
}

func TestResolve_SocialsMergePerPlatform(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, `
authors:
  - key: ozaki
    name: Ozaki
    socials:
      bluesky: ozaki
`), testMap(), testBaseURL)
	require.NoError(t, err)
	socials := resolved[0].Socials
	require.Equal(t, "https://github.com/ozakione", socials["github"])
	require.Equal(t, "https://bsky.app/profile/ozaki", socials["bluesky"])
}

func TestResolve_MixedLegacyAndNewFails(t *testing.T) {
	_, err := Resolve(frontMatter(t, `
author: Jane Doe
authors: slorber
`), testMap(), testBaseURL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot mix")
}

func TestResolve_LegacyScalars(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, `
author: Jane Doe
author_url: https://jane.example.com
author_title: Staff Engineer
author_image_url: /img/jane.png
`), nil, testBaseURL)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Equal(t, "Jane Doe", resolved[0].Name)
	require.Equal(t, "Staff Engineer", resolved[0].Title)
	require.Equal(t, testBaseURL+"/img/jane.png", resolved[0].ImageURL)
}

func TestResolve_RelativeImageJoinedWithBaseURL(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, "authors: ozaki"), testMap(), testBaseURL+"/")
	require.NoError(t, err)
	require.Equal(t, testBaseURL+"/img/ozaki.png", resolved[0].ImageURL)
}

func TestResolve_AbsoluteImagePassesThrough(t *testing.T) {
	resolved, err := Resolve(frontMatter(t, `
authors:
  name: CDN User
  image_url: https://cdn.example.com/u.png
`), nil, testBaseURL)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/u.png", resolved[0].ImageURL)
}

func TestResolve_DuplicateKeysFail(t *testing.T) {
	_, err := Resolve(frontMatter(t, "authors: [slorber, slorber]"), testMap(), testBaseURL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate author key")
}

func TestResolve_InlineAuthorWithoutIdentityFails(t *testing.T) {
	_, err := Resolve(frontMatter(t, `
authors:
  title: Anonymous
`), testMap(), testBaseURL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "neither a name nor an image URL")
}

func TestResolve_BadAuthorsType(t *testing.T) {
	_, err := Resolve(frontMatter(t, "authors: 42"), testMap(), testBaseURL)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"authors" must be`)
}

func TestNormalizeImageURL(t *testing.T) {
	require.Equal(t, "", NormalizeImageURL("", testBaseURL))
	require.Equal(t, "https://cdn.example.com/a.png", NormalizeImageURL("https://cdn.example.com/a.png", testBaseURL))
	require.Equal(t, testBaseURL+"/img/a.png", NormalizeImageURL("/img/a.png", testBaseURL))
	require.Equal(t, testBaseURL+"/img/a.png", NormalizeImageURL("/img/a.png", testBaseURL+"/"))
	// Relative (non-rooted) paths are passed through.
	require.Equal(t, "img/a.png", NormalizeImageURL("img/a.png", testBaseURL))
}
