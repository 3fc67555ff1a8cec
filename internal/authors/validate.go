package authors

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	bkerrors "git.home.luguber.info/inful/blogkit/internal/errors"
)

// LoadMap reads and validates the authors map file.
//
// The file is a YAML mapping of author key to author fields. The returned
// map is never mutated after load.
func LoadMap(path string) (Map, error) {
	// #nosec G304 -- path comes from the user's own configuration.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bkerrors.WrapError(err, bkerrors.CategoryFileSystem, "failed to read authors map file").
			WithContext("path", path)
	}

	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, bkerrors.WrapError(err, bkerrors.CategoryAuthors, "authors map file is not valid YAML").
			WithContext("path", path)
	}

	m, err := ValidateMap(parsed)
	if err != nil {
		return nil, bkerrors.Wrap(err, bkerrors.CategoryAuthors, bkerrors.SeverityFatal, "authors map validation failed").
			WithContext("path", path)
	}
	return m, nil
}

// ValidateMap validates arbitrary parsed YAML against the authors map shape:
// a mapping of author key to an author object that has at least a name or an
// image URL. Social-link shorthand is normalized during validation.
func ValidateMap(parsed any) (Map, error) {
	if parsed == nil {
		return Map{}, nil
	}

	raw, ok := parsed.(map[string]any)
	if !ok {
		return nil, validation.NewError(
			"blog.authors.map_not_mapping",
			fmt.Sprintf("authors map must be a mapping of author key to author fields, got %T", parsed))
	}

	m := make(Map, len(raw))
	errs := validation.Errors{}

	for key, value := range raw {
		entry, ok := value.(map[string]any)
		if !ok {
			errs[key] = validation.NewError(
				"blog.authors.entry_not_mapping",
				fmt.Sprintf("author %q must be a mapping of author fields, got %T", key, value))
			continue
		}

		author, err := decodeAuthor(entry)
		if err != nil {
			errs[key] = validation.NewError("blog.authors.entry_invalid",
				fmt.Sprintf("author %q: %v", key, err))
			continue
		}
		if author.Name == "" && author.ImageURL == "" {
			errs[key] = validation.NewError("blog.authors.missing_identity",
				fmt.Sprintf("author %q requires a \"name\" or an \"image_url\" field", key))
			continue
		}

		author.Key = key
		m[key] = author
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return m, nil
}

// decodeAuthor extracts author fields from a parsed mapping. `image_url` and
// `imageURL` are accepted as aliases; socials shorthand is normalized.
func decodeAuthor(entry map[string]any) (Author, error) {
	var a Author
	var err error

	if a.Name, err = stringField(entry, "name"); err != nil {
		return Author{}, err
	}
	if a.Title, err = stringField(entry, "title"); err != nil {
		return Author{}, err
	}
	if a.URL, err = stringField(entry, "url"); err != nil {
		return Author{}, err
	}
	if a.Email, err = stringField(entry, "email"); err != nil {
		return Author{}, err
	}

	image, err := stringField(entry, "image_url")
	if err != nil {
		return Author{}, err
	}
	if image == "" {
		if image, err = stringField(entry, "imageURL"); err != nil {
			return Author{}, err
		}
	}
	a.ImageURL = image

	if a.Socials, err = socialsField(entry); err != nil {
		return Author{}, err
	}
	if a.Page, err = pageField(entry); err != nil {
		return Author{}, err
	}

	return a, nil
}

func stringField(entry map[string]any, name string) (string, error) {
	value, ok := entry[name]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %T", name, value)
	}
	return s, nil
}

func socialsField(entry map[string]any) (map[string]string, error) {
	value, ok := entry["socials"]
	if !ok || value == nil {
		return nil, nil
	}
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field \"socials\" must be a mapping of platform to handle or URL, got %T", value)
	}
	socials := make(map[string]string, len(raw))
	for platform, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("social link %q must be a string, got %T", platform, v)
		}
		socials[platform] = s
	}
	return NormalizeSocials(socials), nil
}

// pageField accepts either a boolean (`page: true` means a page with the
// default permalink) or a mapping with an optional permalink.
func pageField(entry map[string]any) (*Page, error) {
	value, ok := entry["page"]
	if !ok || value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case bool:
		if !v {
			return nil, nil
		}
		return &Page{}, nil
	case map[string]any:
		permalink, err := stringField(v, "permalink")
		if err != nil {
			return nil, fmt.Errorf("field \"page\": %w", err)
		}
		return &Page{Permalink: permalink}, nil
	default:
		return nil, fmt.Errorf("field \"page\" must be a boolean or a mapping, got %T", value)
	}
}
