package destination

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestResolve_FullArchivePathSplits(t *testing.T) {
	arg := filepath.Join("out", "pkg.zip")

	folder, filename, err := Resolve(arg, testDate)
	require.NoError(t, err)
	assert.Equal(t, "out", folder)
	assert.Equal(t, "pkg.zip", filename)
}

func TestResolve_ArchiveExtensionIsCaseInsensitive(t *testing.T) {
	folder, filename, err := Resolve(filepath.Join("out", "PKG.ZIP"), testDate)
	require.NoError(t, err)
	assert.Equal(t, "out", folder)
	assert.Equal(t, "PKG.ZIP", filename)
}

func TestResolve_ExistingDirectoryGetsGeneratedName(t *testing.T) {
	dir := t.TempDir()

	folder, filename, err := Resolve(dir, testDate)
	require.NoError(t, err)
	assert.Equal(t, dir, folder)
	assert.Equal(t, "GPUPDriverPackage-2026-08-29.zip", filename)
}

func TestResolve_MissingDirectoryIsStillUsed(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet-created")

	folder, filename, err := Resolve(dir, testDate)
	require.NoError(t, err)
	assert.Equal(t, dir, folder)
	assert.Equal(t, "GPUPDriverPackage-2026-08-29.zip", filename)
}

func TestResolve_EmptyArgumentUsesWorkingDirectory(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	folder, filename, err := Resolve("", testDate)
	require.NoError(t, err)
	assert.Equal(t, cwd, folder)
	assert.Equal(t, "GPUPDriverPackage-2026-08-29.zip", filename)
}
