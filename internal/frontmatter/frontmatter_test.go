package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRead_NoFrontmatter_ReturnsEmptyFieldsAndBody(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fields, body, had, err := Read(input)
	require.NoError(t, err)
	require.False(t, had)
	require.NotNil(t, fields)
	require.Empty(t, fields)
	require.Equal(t, input, body)
}

func TestRead_EmptyFrontmatterBlock_ReturnsHadWithEmptyFields(t *testing.T) {
	input := []byte("---\n---\n# Title\n")

	fields, body, had, err := Read(input)
	require.NoError(t, err)
	require.True(t, had)
	require.NotNil(t, fields)
	require.Empty(t, fields)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestRead_ValidYAMLFrontmatter_ReturnsFieldsAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\nauthors:\n  - slorber\n---\n# Title\n")

	fields, body, had, err := Read(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, []any{"slorber"}, fields["authors"])
	require.Equal(t, []byte("# Title\n"), body)
}

func TestRead_CRLFDocument(t *testing.T) {
	input := []byte("---\r\ntitle: Windows\r\n---\r\nbody\r\n")

	fields, body, had, err := Read(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "Windows", fields["title"])
	require.Equal(t, []byte("body\r\n"), body)
}

func TestRead_InvalidYAML_ReturnsError(t *testing.T) {
	input := []byte("---\n: not yaml\n---\n# Title\n")

	_, _, _, err := Read(input)
	require.Error(t, err)
}

func TestRead_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\nkey: value\n# Title\n")

	_, _, had, err := Read(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}
