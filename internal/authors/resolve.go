package authors

import (
	"fmt"
	"strings"

	bkerrors "git.home.luguber.info/inful/blogkit/internal/errors"
)

// legacyFields are the deprecated scalar author front matter fields. They
// predate the authors map and cannot be combined with the `authors` field.
var legacyFields = []string{"author", "author_url", "author_title", "author_image_url"}

// Resolve resolves the authors of one post from its parsed front matter.
//
// Two forms are supported: the legacy scalar fields (author, author_url,
// author_title, author_image_url) and the newer `authors` field, which is a
// string key, an inline author mapping, or a list mixing both. Map-declared
// author data is overridden field-by-field by front-matter-supplied fields.
// Image URLs starting with `/` are resolved against baseURL.
func Resolve(frontMatter map[string]any, m Map, baseURL string) ([]Author, error) {
	present := presentLegacyFields(frontMatter)
	_, hasNew := frontMatter["authors"]

	if len(present) > 0 && hasNew {
		return nil, bkerrors.Newf(bkerrors.CategoryAuthors, bkerrors.SeverityFatal,
			"cannot mix the deprecated front matter fields (%s) with \"authors\"; move everything into \"authors\"",
			strings.Join(present, ", "))
	}

	var resolved []Author
	var err error
	switch {
	case len(present) > 0:
		resolved, err = resolveLegacy(frontMatter)
	case hasNew:
		resolved, err = resolveAuthorsField(frontMatter["authors"], m)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	for i := range resolved {
		if resolved[i].Name == "" && resolved[i].ImageURL == "" {
			return nil, bkerrors.Newf(bkerrors.CategoryAuthors, bkerrors.SeverityFatal,
				"post author %d has neither a name nor an image URL after resolution", i+1)
		}
		resolved[i].ImageURL = NormalizeImageURL(resolved[i].ImageURL, baseURL)
	}
	return resolved, nil
}

func presentLegacyFields(frontMatter map[string]any) []string {
	var present []string
	for _, f := range legacyFields {
		if _, ok := frontMatter[f]; ok {
			present = append(present, f)
		}
	}
	return present
}

// resolveLegacy builds a single inline author from the deprecated scalars.
func resolveLegacy(frontMatter map[string]any) ([]Author, error) {
	var a Author
	var err error
	if a.Name, err = stringField(frontMatter, "author"); err != nil {
		return nil, legacyFieldError(err)
	}
	if a.URL, err = stringField(frontMatter, "author_url"); err != nil {
		return nil, legacyFieldError(err)
	}
	if a.Title, err = stringField(frontMatter, "author_title"); err != nil {
		return nil, legacyFieldError(err)
	}
	if a.ImageURL, err = stringField(frontMatter, "author_image_url"); err != nil {
		return nil, legacyFieldError(err)
	}
	return []Author{a}, nil
}

func legacyFieldError(err error) error {
	return bkerrors.WrapError(err, bkerrors.CategoryAuthors, "invalid legacy author front matter")
}

// resolveAuthorsField resolves the `authors` front matter value.
func resolveAuthorsField(value any, m Map) ([]Author, error) {
	items, err := authorItems(value)
	if err != nil {
		return nil, err
	}

	resolved := make([]Author, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		author, err := resolveItem(item, m)
		if err != nil {
			return nil, err
		}
		if author.Key != "" {
			if seen[author.Key] {
				return nil, bkerrors.Newf(bkerrors.CategoryAuthors, bkerrors.SeverityFatal,
					"duplicate author key %q in the post's \"authors\" list", author.Key)
			}
			seen[author.Key] = true
		}
		resolved = append(resolved, author)
	}
	return resolved, nil
}

func authorItems(value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string, map[string]any:
		return []any{v}, nil
	case []any:
		return v, nil
	default:
		return nil, bkerrors.Newf(bkerrors.CategoryAuthors, bkerrors.SeverityFatal,
			"front matter \"authors\" must be an author key, an author mapping or a list of those, got %T", value)
	}
}

func resolveItem(item any, m Map) (Author, error) {
	switch v := item.(type) {
	case string:
		return lookupKey(v, m)
	case map[string]any:
		override, err := decodeAuthor(v)
		if err != nil {
			return Author{}, bkerrors.WrapError(err, bkerrors.CategoryAuthors, "invalid inline author in front matter")
		}
		key, err := stringField(v, "key")
		if err != nil {
			return Author{}, bkerrors.WrapError(err, bkerrors.CategoryAuthors, "invalid inline author in front matter")
		}
		if key == "" {
			return override, nil
		}
		base, err := lookupKey(key, m)
		if err != nil {
			return Author{}, err
		}
		return merge(base, override), nil
	default:
		return Author{}, bkerrors.Newf(bkerrors.CategoryAuthors, bkerrors.SeverityFatal,
			"front matter \"authors\" entries must be author keys or author mappings, got %T", item)
	}
}

func lookupKey(key string, m Map) (Author, error) {
	if len(m) == 0 {
		return Author{}, bkerrors.Newf(bkerrors.CategoryAuthors, bkerrors.SeverityFatal,
			"post references author key %q but no authors map is loaded; configure content.authors_file and declare the author there", key)
	}
	author, ok := m[key]
	if !ok {
		return Author{}, bkerrors.Newf(bkerrors.CategoryAuthors, bkerrors.SeverityFatal,
			"author key %q not found in the authors map; valid keys are: %s", key, strings.Join(m.Keys(), ", "))
	}
	return author, nil
}

// merge overlays front-matter-supplied fields on top of map-declared data.
// Overrides win field-by-field; socials merge per platform.
func merge(base, override Author) Author {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Title != "" {
		out.Title = override.Title
	}
	if override.URL != "" {
		out.URL = override.URL
	}
	if override.Email != "" {
		out.Email = override.Email
	}
	if override.ImageURL != "" {
		out.ImageURL = override.ImageURL
	}
	if override.Page != nil {
		out.Page = override.Page
	}
	if len(override.Socials) > 0 {
		merged := make(map[string]string, len(base.Socials)+len(override.Socials))
		for k, v := range base.Socials {
			merged[k] = v
		}
		for k, v := range override.Socials {
			merged[k] = v
		}
		out.Socials = merged
	}
	return out
}

// NormalizeImageURL joins site-relative image paths (leading `/`) with the
// site base URL. Every other value passes through unchanged.
func NormalizeImageURL(imageURL, baseURL string) string {
	if imageURL == "" || !strings.HasPrefix(imageURL, "/") {
		return imageURL
	}
	return fmt.Sprintf("%s%s", strings.TrimSuffix(baseURL, "/"), imageURL)
}
