package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bft-labs/id3mend/internal/domain"
	"github.com/bft-labs/id3mend/internal/ports"
)

// ScanPath processes one argument path: a regular file is scanned directly,
// a directory is walked depth-first, anything else is a fatal condition for
// that argument.
func (s *Scanner) ScanPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidPath, path, err)
	}

	switch {
	case info.IsDir():
		return s.scanDir(path)
	case info.Mode().IsRegular():
		s.ScanFile(path)
		return nil
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidPath, path)
	}
}

// scanDir walks the directory tree rooted at dir. Unreadable entries are
// logged and skipped; directory entries are never treated as leaves.
func (s *Scanner) scanDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("skip entry (walk error)", ports.String("path", path), ports.Err(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		s.ScanFile(path)
		return nil
	})
}
