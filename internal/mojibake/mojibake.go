// Package mojibake detects and reverses one specific double-encoding defect:
// text whose UTF-8 bytes were re-interpreted code-point-per-byte and encoded
// as UTF-8 a second time, yielding valid but garbled UTF-8.
//
// Correct is deliberately a heuristic. It round-trips the input through a
// byte-preserving re-encoding and a tolerant re-decode and compares code
// point lengths; the detour only shortens the text when the original bytes
// carried multi-byte UTF-8 structure that the double encoding smeared apart.
// The trade-off is accepted as-is: a clean string whose U+0080..U+00FF code
// points happen to line up into a valid UTF-8 sequence is reported as a
// (false positive) candidate. Corrections are advisory, so a false positive
// costs an operator a glance, while a hard failure would abort a scan.
package mojibake

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Base of the sentinel range used by the tolerant decode. Each byte that is
// not part of a valid UTF-8 sequence maps to sentinelBase+b, one sentinel per
// byte, so a tolerant decode never fails and never merges invalid bytes.
const sentinelBase rune = 0xDC00

// Result is the outcome of running Correct on a byte sequence: either no
// defect was detected, or the recovered text.
type Result struct {
	text      string
	corrected bool
}

// Corrected reports whether the double-encoding defect was detected.
func (r Result) Corrected() bool { return r.corrected }

// Text returns the recovered text. It is empty unless Corrected is true.
func (r Result) Text() string { return r.text }

// Correct inspects raw, the payload of a field declared as UTF-8, and
// determines whether it is the product of the double-encoding defect.
// It is total: any byte sequence yields a Result, never a panic or error.
//
// The procedure:
//
//  1. Decode raw as UTF-8 into T1. A sequence that is not valid UTF-8
//     cannot have been produced by the defect (the second encode always
//     emits valid UTF-8), so it is conclusively not defective.
//  2. Re-encode T1 with rawUnicodeEscape: code points up to U+00FF become
//     the literal byte, higher ones a literal hex escape.
//  3. Decode those bytes tolerantly back into T2, mapping each invalid
//     byte to a sentinel code point.
//  4. The defect is confirmed iff T1 has more code points than T2: the
//     shrink means the literal bytes recombined into genuine multi-byte
//     UTF-8 sequences, i.e. the original data was UTF-8 encoded twice.
func Correct(raw []byte) Result {
	if len(raw) == 0 || !utf8.Valid(raw) {
		return Result{}
	}

	t1 := []rune(string(raw))
	b2 := rawUnicodeEscape(t1)
	t2 := decodeSurrogateEscape(b2)

	if len(t1) > len(t2) {
		return Result{text: runesToString(t2), corrected: true}
	}
	return Result{}
}

// rawUnicodeEscape emits each code point at or below U+00FF as that literal
// byte value and every higher code point as a fixed ASCII hex escape:
// \uxxxx up to U+FFFF, \Uxxxxxxxx above. Backslashes already present are
// passed through untouched; the transform is raw, not a quoting scheme.
func rawUnicodeEscape(runes []rune) []byte {
	out := make([]byte, 0, len(runes))
	for _, r := range runes {
		switch {
		case r <= 0xFF:
			out = append(out, byte(r))
		case r <= 0xFFFF:
			out = append(out, fmt.Sprintf(`\u%04x`, r)...)
		default:
			out = append(out, fmt.Sprintf(`\U%08x`, r)...)
		}
	}
	return out
}

// decodeSurrogateEscape decodes b as UTF-8, mapping each byte that is not
// part of a valid sequence to sentinelBase+b. It consumes exactly one byte
// per sentinel, so the decode always succeeds and is length-preserving per
// invalid byte.
func decodeSurrogateEscape(b []byte) []rune {
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			out = append(out, sentinelBase+rune(b[i]))
			i++
			continue
		}
		out = append(out, r)
		i += size
	}
	return out
}

// runesToString builds the recovered text. Sentinel code points cannot live
// in a Go string, so each one is folded back to the raw byte it stands for;
// a genuine correction contains no sentinels and converts cleanly.
func runesToString(runes []rune) string {
	var sb strings.Builder
	sb.Grow(len(runes))
	for _, r := range runes {
		if r >= sentinelBase+0x80 && r <= sentinelBase+0xFF {
			sb.WriteByte(byte(r - sentinelBase))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
