// Package staging assembles the guest-layout driver file tree that the
// archiver turns into the final package.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
)

// Tree is the ephemeral staging directory for one pipeline run. Its root
// mirrors the guest's system root; the driver-store repository lives under
// System32\HostDriverStore\FileRepository. A tree is exclusive to one run
// and is removed on every normal exit path.
type Tree struct {
	root string
}

// NewTree creates a fresh staging tree under parent. An empty parent uses
// the OS temporary directory.
func NewTree(parent string) (*Tree, error) {
	root, err := os.MkdirTemp(parent, "gpup-staging-")
	if err != nil {
		return nil, fmt.Errorf("create staging tree: %w", err)
	}
	return &Tree{root: root}, nil
}

// Root returns the staging tree's root directory.
func (t *Tree) Root() string {
	return t.root
}

// RepositoryDir returns the guest driver-store repository mirror inside the
// tree.
func (t *Tree) RepositoryDir() string {
	return filepath.Join(t.root, "System32", "HostDriverStore", "FileRepository")
}

// Remove deletes the staging tree. Safe to call on a tree that is already
// gone.
func (t *Tree) Remove() error {
	if err := os.RemoveAll(t.root); err != nil {
		return fmt.Errorf("remove staging tree: %w", err)
	}
	return nil
}
