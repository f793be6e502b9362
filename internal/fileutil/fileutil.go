package fileutil

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// WriteLinesAtomic writes each line followed by '\n' to a pending file in the
// destination directory and renames it over path. On any failure path is left
// untouched.
func WriteLinesAtomic(path string, lines []string, mode os.FileMode) error {
	return WriteAtomic(path, mode, func(w *bufio.Writer) error {
		for _, line := range lines {
			if _, err := w.WriteString(line); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteAtomic streams fill into a pending sibling of path and renames it into
// place once fill and the flush succeed. The pending file is removed on any
// failure.
func WriteAtomic(path string, mode os.FileMode, fill func(*bufio.Writer) error) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(mode))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() { _ = pf.Cleanup() }()

	w := bufio.NewWriter(pf)
	if err := fill(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
