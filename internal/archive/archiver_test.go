package archive

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCompress_ArchivesTreeWithRelativeNames(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "System32", "HostDriverStore", "FileRepository", "pkg", "driver.sys"), "driver bits")
	writeFile(t, filepath.Join(src, "System32", "nvapi64.dll"), "nvapi")

	dest := filepath.Join(t.TempDir(), "pkg.zip")
	require.NoError(t, Compress(src, dest))

	reader, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer reader.Close()

	contents := make(map[string]string)
	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		contents[f.Name] = string(data)
	}

	assert.Equal(t, "driver bits", contents["System32/HostDriverStore/FileRepository/pkg/driver.sys"])
	assert.Equal(t, "nvapi", contents["System32/nvapi64.dll"])
}

func TestCompress_EmptyDirectoriesSurvive(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "System32", "empty"), 0o755))

	dest := filepath.Join(t.TempDir(), "pkg.zip")
	require.NoError(t, Compress(src, dest))

	reader, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer reader.Close()

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "System32/empty/")
}

func TestCompress_UnwritableDestinationFails(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")

	err := Compress(src, filepath.Join(t.TempDir(), "no-such-dir", "pkg.zip"))
	assert.Error(t, err)
}
