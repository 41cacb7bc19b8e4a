package io

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

var (
	_ FileIO = (*MediaFileSystem)(nil)

	ErrFileExists = errors.New("file already exists")

	rename = os.Rename
)

// MediaFileSystem implements FileIO with the os package
type MediaFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *MediaFileSystem) Stat(target string) (os.FileInfo, error) {
	return os.Stat(target)
}

// Move renames source to target, falling back to copy and remove when they are on different file systems.
// The target must not exist yet.
func (o *MediaFileSystem) Move(source, target string) error {
	if o.FileExists(target) {
		return ErrFileExists
	}

	same, err := o.IsSameFileSystem(source, filepath.Dir(target))
	if err != nil {
		return err
	}

	if same {
		err = rename(source, target)
		if !errors.Is(err, syscall.EXDEV) {
			return err
		}
	}

	if _, err := o.Copy(source, target); err != nil {
		if !errors.Is(err, ErrFileExists) {
			os.Remove(target)
		}
		return err
	}

	return os.Remove(source)
}

// MoveDir moves the directory tree at source to target. Across file systems the tree is copied
// and the original removed. The target must not exist.
func (o *MediaFileSystem) MoveDir(source, target string) error {
	if o.FileExists(target) {
		return ErrFileExists
	}

	err := rename(source, target)
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", source)
	}

	if err := os.Mkdir(target, info.Mode().Perm()|0o700); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrFileExists
		}
		return err
	}

	if err := o.copyTree(source, target); err != nil {
		os.RemoveAll(target)
		return err
	}
	if err := os.Chmod(target, info.Mode().Perm()); err != nil {
		return err
	}

	if err := os.RemoveAll(source); err != nil {
		return fmt.Errorf("copied %s to %s but failed to remove it: %w", source, target, err)
	}
	return nil
}

// copyTree copies the content of source into the existing directory target
func (o *MediaFileSystem) copyTree(source, target string) error {
	type dirMode struct {
		path string
		mode os.FileMode
	}
	var dirs []dirMode

	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == source {
			return nil
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch mode := info.Mode(); {
		case mode.IsDir():
			// writable until the content is copied in
			if err := os.Mkdir(dest, mode.Perm()|0o700); err != nil {
				return err
			}
			dirs = append(dirs, dirMode{path: dest, mode: mode.Perm()})
		case mode&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, dest)
		case mode.IsRegular():
			_, err := o.Copy(path, dest)
			return err
		default:
			return fmt.Errorf("cannot copy %s: unsupported file type %s", path, mode.Type())
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		if err := os.Chmod(dirs[i].path, dirs[i].mode); err != nil {
			return err
		}
	}
	return nil
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *MediaFileSystem) MkdirAll(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

// ReadDir is a wrapper around os.ReadDir
func (o *MediaFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Remove is a wrapper around os.Remove
func (o *MediaFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// Copy copies a file from a source path to a target path. The target file must not exist yet.
func (o *MediaFileSystem) Copy(source, target string) (int64, error) {
	sourceFile, err := os.Open(source)
	if err != nil {
		return 0, err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return 0, err
	}

	targetFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, ErrFileExists
		}
		return 0, err
	}

	n, err := io.Copy(targetFile, sourceFile)
	if err != nil {
		targetFile.Close()
		return n, err
	}

	return n, targetFile.Close()
}

// IsSameFileSystem checks if a source and target are on the same file system. If a file does not exist, it is considered to be on a different file system.
func (o *MediaFileSystem) IsSameFileSystem(source, target string) (bool, error) {
	sourceStat, err := o.Stat(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat source path: %w", err)
	}

	sourceSys, ok := sourceStat.Sys().(*syscall.Stat_t)
	if !ok {
		return false, errors.New("source path: unexpected sys type")
	}

	targetStat, err := o.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat target path: %w", err)
	}

	targetSys, ok := targetStat.Sys().(*syscall.Stat_t)
	if !ok {
		return false, errors.New("target path: unexpected sys type")
	}

	return sourceSys.Dev == targetSys.Dev, nil
}

// WalkDir is a wrapper around fs.WalkDir
func (o *MediaFileSystem) WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(fsys, root, fn)
}

// FileExists reports whether anything exists at path
func (o *MediaFileSystem) FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
