package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// tempPrefix marks in-progress outputs. The leading dot keeps them out of
// the names ReplaceExt derives from visible inputs.
const tempPrefix = ".oggify-"

// Exists reports whether path names an existing filesystem entry.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// ReplaceExt swaps the extension of path's base name for ext (".ogg").
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// CreateTempSibling reserves a uniquely named file in path's directory for
// an in-progress write and returns its name. The extension of path is kept
// so tools that infer the container from the file name still see it.
func CreateTempSibling(path string) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), tempPrefix+"*"+filepath.Ext(path))
	if err != nil {
		return "", err
	}
	name := f.Name()
	// CreateTemp uses 0o600; outputs should match CopyFile's permissions.
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}

// Finalize moves a completed temporary file into place, replacing dst. It
// falls back to copy-and-remove when the rename crosses filesystems.
func Finalize(tmp, dst string) error {
	err := os.Rename(tmp, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := CopyFile(tmp, dst); err != nil {
		return fmt.Errorf("copy across devices: %w", err)
	}
	return os.Remove(tmp)
}

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
