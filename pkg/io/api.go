package io

import (
	"io/fs"
	"os"
)

//go:generate mockgen -source=api.go -destination=mocks/api.go -package=mocks

// FileIO is the file system seam used by the library scanner and the placement mutator
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	IsSameFileSystem(source, target string) (bool, error)
	// Move renames a file, copying across file systems. The target must not exist.
	Move(source, target string) error
	// MoveDir is Move for a directory tree
	MoveDir(source, target string) error
	WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error
	ReadDir(name string) ([]os.DirEntry, error)
	MkdirAll(name string, perm os.FileMode) error
	Remove(name string) error
	FileExists(path string) bool
}
