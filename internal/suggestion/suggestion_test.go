package suggestion

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   *Pattern
	}{
		{
			name: "mention while typing",
			text: "@al", cursor: 3,
			want: &Pattern{Key: KeyAt, Text: "al", Start: 0, End: 3},
		},
		{
			name: "bare trigger",
			text: "@", cursor: 1,
			want: &Pattern{Key: KeyAt, Text: "", Start: 0, End: 1},
		},
		{
			name: "hash trigger",
			text: "see #room", cursor: 9,
			want: &Pattern{Key: KeyHash, Text: "room", Start: 4, End: 9},
		},
		{
			name: "slash command at start",
			text: "/me waves", cursor: 3,
			want: &Pattern{Key: KeySlash, Text: "me", Start: 0, End: 3},
		},
		{
			name: "cursor inside token",
			text: "@alice", cursor: 3,
			want: &Pattern{Key: KeyAt, Text: "alice", Start: 0, End: 6},
		},
		{
			name: "no trigger",
			text: "hello", cursor: 5,
			want: nil,
		},
		{
			name: "trigger mid-word is not a pattern",
			text: "a@b", cursor: 3,
			want: nil,
		},
		{
			name: "whitespace breaks the token",
			text: "@a b", cursor: 4,
			want: nil,
		},
		{
			name: "cursor before trigger",
			text: "@al", cursor: 0,
			want: nil,
		},
		{
			name: "empty text",
			text: "", cursor: 0,
			want: nil,
		},
		{
			name: "non-ascii query",
			text: "@日本", cursor: 3,
			want: &Pattern{Key: KeyAt, Text: "日本", Start: 0, End: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text, tt.cursor)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Detect = %+v, want %+v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("Detect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPatternEqual(t *testing.T) {
	a := &Pattern{Key: KeyAt, Text: "x", Start: 0, End: 2}
	b := &Pattern{Key: KeyAt, Text: "x", Start: 0, End: 2}
	if !a.Equal(b) {
		t.Error("identical patterns not equal")
	}
	if a.Equal(nil) {
		t.Error("pattern equal to nil")
	}
	var n *Pattern
	if !n.Equal(nil) {
		t.Error("nil not equal to nil")
	}
}
