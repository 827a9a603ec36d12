package staging

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// Assembler copies one resolved GPU's driver assets into a staging tree.
// Every copy is a single-attempt local filesystem operation: any failure is
// an environment problem the operator has to fix, so it aborts the whole
// run rather than producing a partial package.
type Assembler struct {
	tree       *Tree
	systemRoot string // host system root, stripped to form guest-relative paths

	// Progress receives per-folder and per-file narration. Defaults to a
	// stdout printer; tests leave it silent.
	Progress func(format string, args ...any)
}

// NewAssembler creates an assembler writing into tree. systemRoot is the
// host's system root directory (typically C:\Windows).
func NewAssembler(tree *Tree, systemRoot string) *Assembler {
	return &Assembler{
		tree:       tree,
		systemRoot: systemRoot,
		Progress: func(format string, args ...any) {
			fmt.Printf("  -> "+format+"\n", args...)
		},
	}
}

// Stage copies the GPU's entire driver-store folder and every non-store
// dependent file into the tree. Staging the same folder twice in one run is
// harmless: directories are created idempotently and files overwrite.
func (a *Assembler) Stage(target domain.TargetGPU) error {
	folderName := filepath.Base(target.StoreFolder)
	a.Progress("Staging driver package %s for %s", folderName, target.Device.FriendlyName)

	dest := filepath.Join(a.tree.RepositoryDir(), folderName)
	if err := copyTree(target.StoreFolder, dest); err != nil {
		return fmt.Errorf("stage driver store folder %s: %w", target.StoreFolder, err)
	}

	for _, file := range target.NonStoreFiles {
		a.Progress("Staging %s", file)
		dst := filepath.Join(a.tree.Root(), guestRelative(file, a.systemRoot))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", file, err)
		}
		if err := copyPath(file, dst); err != nil {
			return fmt.Errorf("stage file %s: %w", file, err)
		}
	}
	return nil
}

// guestRelative strips the host system-root prefix from an absolute path,
// case-insensitively. Paths outside the system root fall back to their
// volume-relative form so they still land inside the staging tree.
func guestRelative(path, systemRoot string) string {
	root := strings.TrimRight(systemRoot, `\/`)
	if len(path) > len(root) && strings.EqualFold(path[:len(root)], root) && os.IsPathSeparator(path[len(root)]) {
		return path[len(root)+1:]
	}
	vol := filepath.VolumeName(path)
	return strings.TrimLeft(path[len(vol):], `\/`)
}

// copyPath copies a file, or a whole tree if the path is a directory.
func copyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyTree(src, dst)
	}
	return copyFile(src, dst)
}

// copyTree recursively copies src into dst, preserving structure.
// Existing destination directories and files are reused or overwritten.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		targetPath := filepath.Join(dst, rel)
		if entry.IsDir() {
			return os.MkdirAll(targetPath, 0o755)
		}
		return copyFile(path, targetPath)
	})
}

// copyFile copies one file, carrying the source's permission bits over to a
// newly created destination.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
