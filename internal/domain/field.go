package domain

import "fmt"

// Encoding is the text encoding declared by an ID3v2 text frame's first
// payload byte. The numeric values are the on-disk values.
type Encoding byte

const (
	// EncodingLatin1 is ISO-8859-1, the ID3v2 default.
	EncodingLatin1 Encoding = 0

	// EncodingUTF16 is UTF-16 with a byte order mark.
	EncodingUTF16 Encoding = 1

	// EncodingUTF16BE is UTF-16 big endian without a BOM (ID3v2.4 only).
	EncodingUTF16BE Encoding = 2

	// EncodingUTF8 is UTF-8 (ID3v2.4 only, but seen in the wild on v2.3
	// tags, the vendor's included).
	EncodingUTF8 Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("unknown encoding %d", byte(e))
	}
}

// Field is a single ID3 text frame as read from a file.
type Field struct {
	// ID is the four-character frame identifier (e.g. "TPE1").
	ID string

	// Encoding is the encoding declared by the frame's encoding byte.
	Encoding Encoding

	// Raw is the frame payload after the encoding byte, with the
	// trailing terminator stripped. For multi-value frames the NUL
	// separators between values are preserved.
	Raw []byte

	// Text is Raw decoded according to Encoding.
	Text string
}

// ScanFields is the fixed, ordered list of frame identifiers the scanner
// inspects: the vendor's known performer, title, album and composer frames.
var ScanFields = []string{
	"TPE1",
	"TIT1",
	"TIT2",
	"TIT3",
	"TALB",
	"TOPE",
	"TOAL",
	"TPE2",
	"TPE3",
	"TPE4",
	"TCOM",
}

// Candidate is a before/after correction pair for one field instance.
// Candidates are advisory; nothing is written back to the file.
type Candidate struct {
	Path    string
	FieldID string
	Before  string
	After   string
}

// Summary holds per-run counters for the end-of-run report.
type Summary struct {
	FilesSeen     int
	FilesScanned  int
	FilesSkipped  int
	FieldsChecked int
	Candidates    int
}
