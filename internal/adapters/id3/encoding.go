package id3

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/bft-labs/id3mend/internal/domain"
)

// decodeText decodes a frame payload according to its declared encoding.
//
// A payload declared UTF-8 is passed through verbatim even when it is not
// valid UTF-8; deciding what broken UTF-8 means is the corrector's job, not
// the reader's.
func decodeText(enc domain.Encoding, b []byte) (string, error) {
	switch enc {
	case domain.EncodingLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", enc, err)
		}
		return string(out), nil
	case domain.EncodingUTF16:
		// A BOM selects the byte order; big endian when absent.
		out, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", enc, err)
		}
		return string(out), nil
	case domain.EncodingUTF16BE:
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", enc, err)
		}
		return string(out), nil
	case domain.EncodingUTF8:
		return string(b), nil
	default:
		return "", fmt.Errorf("id3: %s", enc)
	}
}

// stripTerminator removes the trailing NUL terminator from a text payload.
// Interior NULs separating multiple values stay in place.
func stripTerminator(b []byte, enc domain.Encoding) []byte {
	switch enc {
	case domain.EncodingUTF16, domain.EncodingUTF16BE:
		if len(b) >= 2 && b[len(b)-1] == 0 && b[len(b)-2] == 0 {
			return b[:len(b)-2]
		}
	default:
		if len(b) >= 1 && b[len(b)-1] == 0 {
			return b[:len(b)-1]
		}
	}
	return b
}
