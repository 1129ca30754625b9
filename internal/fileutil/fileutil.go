package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout renders the YYYYMMDD_HHMM_ prefix for dated output files.
const TimestampLayout = "20060102_1504_"

// PrefixBase prepends prefix to the final element of path, keeping its directory.
func PrefixBase(path, prefix string) string {
	if prefix == "" {
		return path
	}
	dir, base := filepath.Split(path)
	return dir + prefix + base
}

// TimestampedPath prefixes the base name of path with now in local time.
func TimestampedPath(path string, now time.Time) string {
	return PrefixBase(path, now.Local().Format(TimestampLayout))
}

// WriteText creates or truncates path with default permissions (0o644) and
// writes content to it.
func WriteText(path, content string) error {
	return WriteTextMode(path, content, 0o644)
}

// WriteTextMode creates or truncates path with the given mode and writes content.
// Failures are *fs.PathError values whose Op tells opening apart from writing.
// A regular file left incomplete by a failed write is removed.
func WriteTextMode(path, content string, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	_, err = out.WriteString(content)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		removePartial(path)
		return err
	}
	return nil
}

// IsOpenError reports whether err came from opening the file rather than
// writing to it.
func IsOpenError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && pathErr.Op == "open"
}

func removePartial(path string) {
	if info, err := os.Lstat(path); err == nil && info.Mode().IsRegular() {
		_ = os.Remove(path)
	}
}
