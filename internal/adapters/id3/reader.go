// Package id3 implements the ports.TagReader collaborator on top of a
// minimal ID3v2.3/2.4 text-frame parser.
//
// The scanner needs, per frame, the declared encoding byte and the verbatim
// payload bytes next to the decoded text; that pairing is the whole reason
// this parser exists. Only text frames (T***, except TXXX) are collected.
package id3

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/id3mend/internal/domain"
	"github.com/bft-labs/id3mend/internal/ports"
)

const headerLen = 10

// Header flags.
const (
	flagUnsync         = 0x80
	flagExtendedHeader = 0x40
)

// Frame format flags (second flag byte).
const (
	frameV3Compressed = 0x80
	frameV3Encrypted  = 0x40
	frameV3Grouped    = 0x20

	frameV4Grouped    = 0x40
	frameV4Compressed = 0x08
	frameV4Encrypted  = 0x04
	frameV4Unsync     = 0x02
	frameV4DataLen    = 0x01
)

// Reader parses ID3v2 tags from files.
type Reader struct{}

// NewReader creates a tag reader.
func NewReader() *Reader {
	return &Reader{}
}

// Handle holds the text frames parsed from one file's tag.
// It keeps no reference to the file; the handle stays valid after the file
// changes on disk.
type Handle struct {
	version string
	frames  map[string]domain.Field
}

// Open parses the ID3v2 tag of the file at path. The tag region is read up
// front and the file is closed before Open returns.
func (r *Reader) Open(path string) (ports.TagHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, domain.ErrNoTag
	}
	if !bytes.Equal(header[:3], []byte("ID3")) {
		return nil, domain.ErrNoTag
	}

	major := header[3]
	if major != 3 && major != 4 {
		return nil, fmt.Errorf("%w: ID3v2.%d", domain.ErrUnsupportedVersion, major)
	}

	flags := header[5]
	size := syncsafe(header[6:10])
	if size < 0 {
		return nil, domain.ErrNoTag
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(f, body); err != nil {
		return nil, fmt.Errorf("read tag body: %w", err)
	}

	if flags&flagUnsync != 0 {
		body = deunsync(body)
	}
	if flags&flagExtendedHeader != 0 {
		body, err = skipExtendedHeader(body, major)
		if err != nil {
			return nil, err
		}
	}

	h := &Handle{
		version: fmt.Sprintf("ID3v2.%d", major),
		frames:  make(map[string]domain.Field),
	}
	h.parseFrames(body, major)
	return h, nil
}

// Version reports the parsed tag version.
func (h *Handle) Version() string { return h.version }

// HasField reports whether the frame with the given identifier is present.
func (h *Handle) HasField(id string) bool {
	_, ok := h.frames[id]
	return ok
}

// Field returns the frame with the given identifier.
func (h *Handle) Field(id string) (domain.Field, bool) {
	f, ok := h.frames[id]
	return f, ok
}

func (h *Handle) parseFrames(body []byte, major byte) {
	for i := 0; i+headerLen <= len(body); {
		id := body[i : i+4]
		if id[0] == 0 {
			// Padding, nothing but zeros follows.
			return
		}

		var size int
		if major == 4 {
			size = syncsafe(body[i+4 : i+8])
		} else {
			size = int(body[i+4])<<24 | int(body[i+5])<<16 | int(body[i+6])<<8 | int(body[i+7])
		}
		if size < 0 || i+headerLen+size > len(body) {
			// Corrupt frame header; stop rather than misread the rest.
			return
		}

		format := body[i+9]
		payload := body[i+headerLen : i+headerLen+size]
		i += headerLen + size

		if !isTextFrame(id) {
			continue
		}
		if skipFrame(format, major) {
			continue
		}
		if major == 4 {
			if format&frameV4DataLen != 0 {
				if len(payload) < 4 {
					continue
				}
				payload = payload[4:]
			}
			if format&frameV4Unsync != 0 {
				payload = deunsync(payload)
			}
		}
		if len(payload) < 1 {
			continue
		}

		enc := domain.Encoding(payload[0])
		raw := stripTerminator(payload[1:], enc)
		text, err := decodeText(enc, raw)
		if err != nil {
			continue
		}

		fid := string(id)
		if _, seen := h.frames[fid]; seen {
			// First occurrence wins.
			continue
		}
		h.frames[fid] = domain.Field{
			ID:       fid,
			Encoding: enc,
			Raw:      raw,
			Text:     text,
		}
	}
}

// isTextFrame reports whether id names a standard text information frame.
// TXXX carries a description/value pair with its own layout and is not one.
func isTextFrame(id []byte) bool {
	if id[0] != 'T' {
		return false
	}
	return !bytes.Equal(id, []byte("TXXX"))
}

// skipFrame reports whether the frame's format flags mark content this
// parser does not interpret (compressed, encrypted, grouped).
func skipFrame(format, major byte) bool {
	if major == 4 {
		return format&(frameV4Compressed|frameV4Encrypted|frameV4Grouped) != 0
	}
	return format&(frameV3Compressed|frameV3Encrypted|frameV3Grouped) != 0
}

// syncsafe decodes a 28-bit syncsafe integer. Returns -1 when a byte has its
// high bit set, which a syncsafe value never does.
func syncsafe(b []byte) int {
	for _, x := range b {
		if x&0x80 != 0 {
			return -1
		}
	}
	return int(b[0])<<21 | int(b[1])<<14 | int(b[2])<<7 | int(b[3])
}

// deunsync reverses unsynchronisation: every 0xFF 0x00 pair collapses to a
// lone 0xFF.
func deunsync(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] == 0xFF && i+1 < len(b) && b[i+1] == 0x00 {
			i++
		}
	}
	return out
}

func skipExtendedHeader(body []byte, major byte) ([]byte, error) {
	if len(body) < 4 {
		return nil, errors.New("id3: truncated extended header")
	}
	var skip int
	if major == 4 {
		// v2.4: syncsafe size that includes itself.
		skip = syncsafe(body[:4])
	} else {
		// v2.3: plain size that excludes its own four bytes.
		skip = 4 + (int(body[0])<<24 | int(body[1])<<16 | int(body[2])<<8 | int(body[3]))
	}
	if skip < 4 || skip > len(body) {
		return nil, errors.New("id3: invalid extended header size")
	}
	return body[skip:], nil
}
