package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Summary\r\nGo developer   \r\n"), 0o644))

	text, meta, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Summary\nGo developer", text)
	assert.Equal(t, FormatText, meta.Format)
	assert.Equal(t, path, meta.Path)
	assert.Equal(t, len("Summary\nGo developer"), meta.Chars)
	assert.Len(t, meta.Hash, 64)
}

func TestReadFile_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.HTML")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><main><p>Go required</p></main></body></html>"), 0o644))

	text, meta, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Go required", text)
	assert.Equal(t, FormatHTML, meta.Format)
}

func TestReadFile_NotFound(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestComputeHash(t *testing.T) {
	assert.Equal(t, computeHash("same"), computeHash("same"))
	assert.NotEqual(t, computeHash("a"), computeHash("b"))
}
