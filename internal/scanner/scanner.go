// Package scanner orchestrates the scan: it walks the argument paths, reads
// each file's ID3 text fields through the TagReader port, runs the mojibake
// corrector on fields declared UTF-8 and reports correction candidates.
// It never writes to the scanned files.
package scanner

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/bft-labs/id3mend/internal/domain"
	"github.com/bft-labs/id3mend/internal/mojibake"
	"github.com/bft-labs/id3mend/internal/ports"
)

// Config contains configuration for a scan.
type Config struct {
	// Fields is the ordered list of frame identifiers to inspect.
	// Empty means domain.ScanFields.
	Fields []string

	// Extensions is the file extension allow-list (with leading dot,
	// matched case insensitively). Empty means .mp3 only.
	Extensions []string
}

// Scanner checks files for the double-encoding defect.
// A Scanner is not safe for concurrent use; the watcher serializes scans on
// one goroutine.
type Scanner struct {
	fields   []string
	exts     map[string]struct{}
	reader   ports.TagReader
	reporter ports.Reporter
	logger   ports.Logger
	summary  domain.Summary
}

// New creates a scanner with the given dependencies.
func New(cfg Config, reader ports.TagReader, reporter ports.Reporter, logger ports.Logger) *Scanner {
	fields := cfg.Fields
	if len(fields) == 0 {
		fields = domain.ScanFields
	}
	extensions := cfg.Extensions
	if len(extensions) == 0 {
		extensions = []string{".mp3"}
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}

	return &Scanner{
		fields:   fields,
		exts:     exts,
		reader:   reader,
		reporter: reporter,
		logger:   logger,
	}
}

// Recognized reports whether the file's extension is on the allow-list.
func (s *Scanner) Recognized(path string) bool {
	_, ok := s.exts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ScanFile checks a single file. Files without a recognized extension are
// never opened; files without a parseable tag are logged and skipped.
func (s *Scanner) ScanFile(path string) {
	s.summary.FilesSeen++

	if !s.Recognized(path) {
		s.logger.Debug("skip file (extension)", ports.String("path", path))
		s.summary.FilesSkipped++
		return
	}

	h, err := s.reader.Open(path)
	if err != nil {
		s.summary.FilesSkipped++
		switch {
		case errors.Is(err, domain.ErrNoTag):
			s.logger.Debug("skip file (no ID3 header)", ports.String("path", path))
		case errors.Is(err, domain.ErrUnsupportedVersion):
			s.logger.Debug("skip file (unsupported tag version)", ports.String("path", path), ports.Err(err))
		default:
			s.logger.Warn("skip file (unreadable)", ports.String("path", path), ports.Err(err))
		}
		return
	}
	s.summary.FilesScanned++

	for _, id := range s.fields {
		field, ok := h.Field(id)
		if !ok {
			s.logger.Debug("skip field (absent)", ports.String("path", path), ports.String("field", id))
			continue
		}
		if field.Encoding != domain.EncodingUTF8 {
			s.logger.Debug("skip field (not declared UTF-8)",
				ports.String("path", path),
				ports.String("field", id),
				ports.String("encoding", field.Encoding.String()))
			continue
		}

		s.summary.FieldsChecked++
		res := mojibake.Correct(field.Raw)
		if !res.Corrected() || res.Text() == field.Text {
			continue
		}

		s.summary.Candidates++
		s.reporter.Candidate(domain.Candidate{
			Path:    path,
			FieldID: id,
			Before:  field.Text,
			After:   res.Text(),
		})
	}
}

// Summary returns the counters accumulated so far.
func (s *Scanner) Summary() domain.Summary {
	return s.summary
}

// Report emits the accumulated counters to the reporter.
func (s *Scanner) Report() {
	s.reporter.Summary(s.summary)
}
