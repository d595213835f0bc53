package content

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"b-second.md": {Data: []byte("---\nid: 2\ntitle: Second\nauthor: Jane Smith\npublishedDate: \"2024-10-05\"\ntags: [Go, Echo]\n---\n# Second\nbody\n")},
		"a-first.md": {Data: []byte("---\nid: 1\npath: custom-first\ntitle: First\n---\nhello")},
		"notes.txt":  {Data: []byte("ignored")},
	}

	articles, err := LoadDir(fsys)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, 1, articles[0].ID)
	assert.Equal(t, "custom-first", articles[0].Path)
	assert.Equal(t, "hello", articles[0].Content)

	assert.Equal(t, "b-second", articles[1].Path, "path defaults to the file name")
	assert.Equal(t, "Second", articles[1].Title)
	assert.Equal(t, "Jane Smith", articles[1].Author)
	assert.Equal(t, "2024-10-05", articles[1].PublishedDate)
	assert.Equal(t, []string{"Go", "Echo"}, articles[1].Tags)
	assert.Equal(t, "# Second\nbody\n", articles[1].Content)
}

func TestParseFileCRLF(t *testing.T) {
	a, err := ParseFile([]byte("---\r\nid: 9\r\ntitle: T\r\n---\r\nline one\r\nline two"))
	require.NoError(t, err)
	assert.Equal(t, 9, a.ID)
	assert.Equal(t, "line one\nline two", a.Content)
}

func TestParseFileErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no front matter", "# Title\n"},
		{"unterminated", "---\nid: 1\n# Title\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile([]byte(tt.input))
			assert.True(t, errors.Is(err, ErrNoFrontMatter), "got %v", err)
		})
	}

	_, err := ParseFile([]byte("---\nid: [not, an, int]\n---\n"))
	assert.Error(t, err)
}
