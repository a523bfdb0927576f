package id3

import (
	"testing"

	"github.com/bft-labs/id3mend/internal/domain"
)

func TestDecodeText_UTF16BE(t *testing.T) {
	got, err := decodeText(domain.EncodingUTF16BE, []byte{0x00, 0xFC})
	if err != nil {
		t.Fatalf("decodeText: %v", err)
	}
	if got != "ü" {
		t.Errorf("decodeText = %q, want ü", got)
	}
}

func TestDecodeText_UTF8PassesThroughInvalidBytes(t *testing.T) {
	// Broken UTF-8 under a UTF-8 declaration is the corrector's input,
	// not a reader error.
	in := []byte{'a', 0xFF, 'b'}
	got, err := decodeText(domain.EncodingUTF8, in)
	if err != nil {
		t.Fatalf("decodeText: %v", err)
	}
	if got != string(in) {
		t.Errorf("decodeText = %q, want verbatim payload", got)
	}
}

func TestDecodeText_UnknownEncoding(t *testing.T) {
	if _, err := decodeText(domain.Encoding(9), []byte("x")); err == nil {
		t.Error("expected error for unknown encoding byte")
	}
}

func TestStripTerminator(t *testing.T) {
	tests := []struct {
		name string
		enc  domain.Encoding
		in   []byte
		want string
	}{
		{"single byte terminator", domain.EncodingUTF8, []byte("abc\x00"), "abc"},
		{"no terminator", domain.EncodingUTF8, []byte("abc"), "abc"},
		{"utf16 double terminator", domain.EncodingUTF16, []byte{0x00, 0x41, 0x00, 0x00}, "\x00A"},
		{"interior nul kept", domain.EncodingUTF8, []byte("a\x00b\x00"), "a\x00b"},
		{"empty", domain.EncodingUTF8, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripTerminator(tt.in, tt.enc); string(got) != tt.want {
				t.Errorf("stripTerminator(% x) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
