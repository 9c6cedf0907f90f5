package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/constants"
)

func seedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"Epirus Defense.pdf":      "%PDF-1.4 stub",
		"Astranis Request.docx":   "PK stub",
		"notes.txt":               "ignored extension",
		".hidden.pdf":             "hidden",
		"~$Astranis Request.docx": "office lock file",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "x.pdf"), []byte("x"), 0o644))
	return dir
}

func TestCollectDirectory(t *testing.T) {
	dir := seedDir(t)

	docs, fileErrs, stats, err := CollectDirectory(dir, true, nil)
	require.NoError(t, err)
	assert.Empty(t, fileErrs)
	require.Len(t, docs, 2)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Loaded)

	byName := map[string]constants.Format{}
	for _, d := range docs {
		byName[d.Filename] = d.Format
		assert.NotEmpty(t, d.Content)
		assert.NotEmpty(t, d.Path)
	}
	assert.Equal(t, constants.PDF, byName["Epirus Defense.pdf"])
	assert.Equal(t, constants.DOCX, byName["Astranis Request.docx"])
}

func TestCollectDirectoryRequiresRoot(t *testing.T) {
	_, _, _, err := CollectDirectory("  ", true, nil)
	assert.Error(t, err)
}

func TestListFiles(t *testing.T) {
	dir := seedDir(t)

	paths, err := ListFiles(dir, true)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.NotContains(t, filepath.Base(p), "~$")
	}
}
