package textutil

import "testing"

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"latin accent", "café", 4},
		{"cjk", "日本語", 3},
		{"surrogate pair", "𝄞", 2},
		{"emoji", "🙂", 2},
		{"mixed", "a𝄞b", 4},
		{"zwj emoji", "👨‍👩‍👧", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UTF16Len(tt.in); got != tt.want {
				t.Errorf("UTF16Len(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestUTF16ToByte(t *testing.T) {
	tests := []struct {
		name string
		in   string
		off  int
		want int
	}{
		{"start", "hello", 0, 0},
		{"middle", "hello", 3, 3},
		{"end", "hello", 5, 5},
		{"past end clamps", "hello", 99, 5},
		{"negative clamps", "hello", -1, 0},
		{"after surrogate pair", "𝄞x", 2, 4},
		{"inside surrogate pair snaps to rune start", "𝄞x", 1, 0},
		{"multibyte utf8 single unit", "日x", 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UTF16ToByte(tt.in, tt.off); got != tt.want {
				t.Errorf("UTF16ToByte(%q, %d) = %d, want %d", tt.in, tt.off, got, tt.want)
			}
		})
	}
}

func TestByteToUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   string
		off  int
		want int
	}{
		{"start", "hello", 0, 0},
		{"end", "hello", 5, 5},
		{"after surrogate pair", "𝄞x", 4, 2},
		{"inside utf8 sequence snaps to rune start", "日x", 1, 0},
		{"past end clamps", "日x", 99, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByteToUTF16(tt.in, tt.off); got != tt.want {
				t.Errorf("ByteToUTF16(%q, %d) = %d, want %d", tt.in, tt.off, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Every valid UTF-16 offset must survive a round trip through the
	// byte representation.
	inputs := []string{"hello", "café", "\U0001d11e abc \U0001f642", "日本語 text"}
	for _, s := range inputs {
		total := UTF16Len(s)
		for off := 0; off <= total; off++ {
			b := UTF16ToByte(s, off)
			back := ByteToUTF16(s, b)
			// Offsets inside a surrogate pair legitimately snap back
			// to the pair start; everything else must be exact.
			if back != off && back != off-1 {
				t.Fatalf("round trip %q offset %d: got %d", s, off, back)
			}
		}
	}
}

func TestRuneLenAt(t *testing.T) {
	s := "a\U0001D11Eb"
	tests := []struct {
		off  int
		want int
	}{
		{0, 1},
		{1, 2}, // surrogate pair
		{5, 1},
		{-1, 0},
		{len(s), 0},
	}
	for _, tt := range tests {
		if got := RuneLenAt(s, tt.off); got != tt.want {
			t.Errorf("RuneLenAt(%d) = %d, want %d", tt.off, got, tt.want)
		}
	}
}

func TestPrevGraphemeStart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		off  int
		want int
	}{
		{"ascii", "abc", 3, 2},
		{"at start", "abc", 0, 0},
		{"combining mark removed with base", "aé", len("aé"), 1},
		{"zwj family is one cluster", "x👨‍👩‍👧", len("x👨‍👩‍👧"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrevGraphemeStart(tt.in, tt.off); got != tt.want {
				t.Errorf("PrevGraphemeStart(%q, %d) = %d, want %d", tt.in, tt.off, got, tt.want)
			}
		})
	}
}

func TestNextGraphemeEnd(t *testing.T) {
	tests := []struct {
		name string
		in   string
		off  int
		want int
	}{
		{"ascii", "abc", 0, 1},
		{"at end", "abc", 3, 3},
		{"emoji cluster", "🙂x", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextGraphemeEnd(tt.in, tt.off); got != tt.want {
				t.Errorf("NextGraphemeEnd(%q, %d) = %d, want %d", tt.in, tt.off, got, tt.want)
			}
		})
	}
}

func TestContainsWhitespace(t *testing.T) {
	if ContainsWhitespace("hello") {
		t.Error("no whitespace expected")
	}
	if !ContainsWhitespace("hello world") {
		t.Error("space not detected")
	}
	if !ContainsWhitespace("a b") {
		t.Error("nbsp not detected")
	}
}
