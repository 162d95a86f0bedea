// Package adapter contains filesystem and persistence adapters for the
// resuffix CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	m "resuffix.dev/pkg/resuffix/internal/model"
)

// RenameFS abstracts the filesystem primitives the rename domain relies on.
// It intentionally hides direct `os` access so traversal and rename logic can
// be tested against fakes or temp-directory fixtures.
type RenameFS interface {
	// ReadDir returns a single snapshot of the directory's entries. Callers
	// must not re-read a directory mid-iteration; one snapshot per directory
	// is the contract the traversal depends on.
	ReadDir(dir m.Path) ([]fs.DirEntry, error)

	// Stat returns metadata for path, following symlinks.
	Stat(path m.Path) (os.FileInfo, error)

	// Lstat returns metadata for path without following symlinks.
	Lstat(path m.Path) (os.FileInfo, error)

	// SameEntry reports whether the two FileInfos describe the same
	// underlying file. This is an identity check, not a name comparison, so
	// it holds across case-folding filesystems.
	SameEntry(a, b os.FileInfo) bool

	// Rename renames oldPath to newPath with the platform's semantics and no
	// additional safety checks.
	Rename(oldPath, newPath m.Path) error

	// AbsPath returns the absolute form of path.
	AbsPath(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalRenameFS is the os-backed implementation of RenameFS.
type LocalRenameFS struct{}

// NewLocalRenameFS constructs a LocalRenameFS instance ready to be wired into
// the workflow.
func NewLocalRenameFS() *LocalRenameFS {
	return &LocalRenameFS{}
}

// ReadDir returns the directory's entries sorted by filename.
func (a *LocalRenameFS) ReadDir(dir m.Path) ([]fs.DirEntry, error) {
	return os.ReadDir(string(dir))
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalRenameFS) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Lstat returns os.FileInfo metadata without following symlinks.
func (a *LocalRenameFS) Lstat(path m.Path) (os.FileInfo, error) {
	return os.Lstat(string(path))
}

// SameEntry reports whether a and b describe the same file.
func (a *LocalRenameFS) SameEntry(x, y os.FileInfo) bool {
	return os.SameFile(x, y)
}

// Rename renames oldPath to newPath.
func (a *LocalRenameFS) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// AbsPath returns the absolute form of path.
func (a *LocalRenameFS) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalRenameFS) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
