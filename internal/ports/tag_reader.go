package ports

import (
	"github.com/bft-labs/id3mend/internal/domain"
)

// TagReader opens a file's ID3 metadata.
// Implementations parse the on-disk container format and expose the text
// frames the scanner cares about.
type TagReader interface {
	// Open parses the metadata of the file at path.
	// Returns domain.ErrNoTag if the file has no ID3 header and
	// domain.ErrUnsupportedVersion for tag versions the implementation
	// does not parse; both mark the file as skippable.
	//
	// Implementations must release the underlying file handle before
	// Open returns, so that scanning one file never holds a handle while
	// the next is processed.
	Open(path string) (TagHandle, error)
}

// TagHandle provides access to the text fields of one file's metadata.
// A handle is independent of the file it was read from; it stays valid
// after the file changes on disk.
type TagHandle interface {
	// Version reports the parsed tag version (e.g. "ID3v2.4").
	Version() string

	// HasField reports whether the frame with the given identifier is
	// present.
	HasField(id string) bool

	// Field returns the frame with the given identifier: its declared
	// encoding, raw payload bytes and decoded text.
	Field(id string) (domain.Field, bool)
}
