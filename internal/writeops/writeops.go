// Package writeops provides filesystem write helpers.
package writeops

import (
	"io"
	"os"
	"path/filepath"
)

// Atomic writes to path by filling a temp file in the destination
// directory and renaming it into place. The destination either keeps its
// old content or holds the complete new content; concurrent writers race
// by rename, so the last one wins without a torn file.
func Atomic(path string, fill func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := fill(tmp); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
