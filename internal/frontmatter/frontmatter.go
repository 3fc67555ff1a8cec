// Package frontmatter reads YAML front matter (`---` delimited) from blog
// post sources. blogkit only consumes front matter; it never rewrites the
// source document, so the API is read-only.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Read splits a document into parsed front matter fields and the Markdown body.
//
// If the document does not start with a front matter delimiter, had is false,
// fields is an empty map and body is the full input.
func Read(content []byte) (fields map[string]any, body []byte, had bool, err error) {
	raw, body, had, err := split(content)
	if err != nil {
		return nil, nil, false, err
	}
	if !had {
		return map[string]any{}, body, false, nil
	}

	fields, err = parseYAML(raw)
	if err != nil {
		return nil, nil, false, err
	}
	return fields, body, true, nil
}

// split separates the raw front matter block from the body, handling both
// LF and CRLF documents.
func split(content []byte) (raw []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		// Empty front matter block.
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:end], content[bodyStart:], true, nil
}

// parseYAML parses a raw front matter block (without --- delimiters) into a map.
func parseYAML(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
