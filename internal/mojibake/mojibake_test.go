package mojibake

import (
	"testing"
	"unicode/utf8"
)

// doubleEncode builds a synthetic defect: every byte of the properly encoded
// text is taken as a code point and encoded as UTF-8 again, the way the
// vendor's tagger corrupted its fields.
func doubleEncode(s string) []byte {
	var out []byte
	for _, b := range []byte(s) {
		out = utf8.AppendRune(out, rune(b))
	}
	return out
}

func TestCorrect_CleanInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "Plain Title feat. Nobody"},
		{"two byte sequence", "jürgen"},
		{"dotless i", "Fazıl Say"},
		{"astral plane", "Beat \U0001F3B5 Drop"},
		{"mixed scripts", "Tiësto — Живой"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Correct([]byte(tt.in))
			if res.Corrected() {
				t.Errorf("Correct(%q) corrected to %q, want no defect", tt.in, res.Text())
			}
		})
	}
}

func TestCorrect_RecoversDoubleEncoded(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"two byte sequence", "jürgen"},
		{"dotless i", "Fazıl Say"},
		{"three byte sequence", "Müller – Straße"},
		{"astral plane", "\U0001F3B5"},
		{"mixed ascii and multibyte", "Röyksopp - Poor Leno"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := doubleEncode(tt.want)
			res := Correct(raw)
			if !res.Corrected() {
				t.Fatalf("Correct(% x) = no defect, want corrected", raw)
			}
			if res.Text() != tt.want {
				t.Errorf("Correct(% x) = %q, want %q", raw, res.Text(), tt.want)
			}
		})
	}
}

func TestCorrect_DotlessIRecoversCodePoint(t *testing.T) {
	// The recovered text must contain U+0131 directly, not a garbled
	// multi-byte remnant.
	res := Correct(doubleEncode("Fazıl Say"))
	if !res.Corrected() {
		t.Fatal("expected a correction")
	}
	found := false
	for _, r := range res.Text() {
		if r == 'ı' {
			found = true
		}
	}
	if !found {
		t.Errorf("corrected text %q does not contain U+0131", res.Text())
	}
}

func TestCorrect_Totality(t *testing.T) {
	// Any byte sequence yields a Result; none of these may panic.
	tests := []struct {
		name string
		in   []byte
	}{
		{"invalid single byte", []byte{0xFF}},
		{"invalid run", []byte{0xFF, 0xFE, 0xFD}},
		{"truncated two byte sequence", []byte{0xC3}},
		{"lone continuation bytes", []byte{0x80, 0x80, 0x80}},
		{"surrogate half encoded as utf8", []byte{0xED, 0xA0, 0x80}},
		{"overlong encoding", []byte{0xC0, 0xAF}},
		{"beyond max code point", []byte{'a', 0xF4, 0x90, 0x80, 0x80, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Correct(tt.in)
			if res.Corrected() {
				t.Errorf("Correct(% x) corrected to %q, want no defect for invalid UTF-8", tt.in, res.Text())
			}
		})
	}
}

func TestCorrect_IdempotentOnCorrectedOutput(t *testing.T) {
	for _, s := range []string{"jürgen", "Fazıl Say", "Röyksopp - Poor Leno"} {
		res := Correct(doubleEncode(s))
		if !res.Corrected() {
			t.Fatalf("Correct(doubleEncode(%q)) = no defect, want corrected", s)
		}
		again := Correct([]byte(res.Text()))
		if again.Corrected() {
			t.Errorf("Correct(%q) oscillates: corrected again to %q", res.Text(), again.Text())
		}
	}
}

func TestCorrect_Latin1SourcedMojibakeNotDetected(t *testing.T) {
	// "jürgen" taken from Latin-1 bytes (0xFC for ü) and double encoded:
	// the detour produces 0xFC, which is not valid UTF-8, so the tolerant
	// decode keeps one sentinel per byte and the length never shrinks.
	// The reference behaves the same way; there is no reliable round-trip
	// signal here, so no correction is attempted.
	raw := doubleEncode("j\xfcrgen")
	if res := Correct(raw); res.Corrected() {
		t.Errorf("Correct(% x) = %q, want no defect", raw, res.Text())
	}
}

func TestCorrect_KnownFalsePositive(t *testing.T) {
	// A clean string whose U+0080..U+00FF code points line up into a valid
	// UTF-8 sequence trips the heuristic: "Ä±" re-encodes to the bytes
	// 0xC4 0xB1, which recombine into "ı". Accepted trade-off, pinned here
	// so a change in behavior is caught.
	res := Correct([]byte("Ä±"))
	if !res.Corrected() {
		t.Fatal("expected the documented false positive to be reported")
	}
	if res.Text() != "ı" {
		t.Errorf("Correct(\"Ä±\") = %q, want %q", res.Text(), "ı")
	}
}

func TestRawUnicodeEscape(t *testing.T) {
	tests := []struct {
		name string
		in   []rune
		want string
	}{
		{"ascii passthrough", []rune("abc"), "abc"},
		{"latin1 range as literal byte", []rune{0xFC}, "\xfc"},
		{"bmp escape", []rune{0x0131}, `\u0131`},
		{"astral escape", []rune{0x1F3B5}, `\U0001f3b5`},
		{"backslash not doubled", []rune(`a\b`), `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(rawUnicodeEscape(tt.in)); got != tt.want {
				t.Errorf("rawUnicodeEscape(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeSurrogateEscape(t *testing.T) {
	// One sentinel per invalid byte, valid sequences decoded as usual.
	in := []byte{'a', 0xFC, 0xC3, 0xBC, 0xFF}
	got := decodeSurrogateEscape(in)
	want := []rune{'a', sentinelBase + 0xFC, 0xFC, sentinelBase + 0xFF}
	if len(got) != len(want) {
		t.Fatalf("decodeSurrogateEscape(% x) = %U, want %U", in, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rune %d = %U, want %U", i, got[i], want[i])
		}
	}
}

func TestDecodeSurrogateEscape_LengthPerInvalidByte(t *testing.T) {
	in := []byte{0x80, 0x81, 0xFE, 0xFF}
	if got := decodeSurrogateEscape(in); len(got) != len(in) {
		t.Errorf("len = %d, want %d", len(got), len(in))
	}
}
