package selection

import "testing"

func TestBasics(t *testing.T) {
	s := New(5, 2)
	if !s.IsReversed() {
		t.Error("expected reversed selection")
	}
	if s.Start() != 2 || s.End() != 5 {
		t.Errorf("Start/End = %d/%d, want 2/5", s.Start(), s.End())
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	if c := s.Collapse(); c.Anchor != 2 || c.Head != 2 {
		t.Errorf("Collapse = %+v", c)
	}
}

func TestClamp(t *testing.T) {
	s := New(-3, 99).Clamp(10)
	if s.Anchor != 0 || s.Head != 10 {
		t.Errorf("Clamp = %+v", s)
	}
}

func TestMapThrough(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		edit Edit
		want Selection
	}{
		{
			name: "before edit unchanged",
			sel:  New(1, 2),
			edit: Edit{Start: 5, End: 7, NewLen: 0},
			want: New(1, 2),
		},
		{
			name: "after insertion shifts right",
			sel:  New(5, 5),
			edit: Edit{Start: 0, End: 0, NewLen: 3},
			want: New(8, 8),
		},
		{
			name: "after deletion shifts left",
			sel:  New(10, 10),
			edit: Edit{Start: 2, End: 6, NewLen: 0},
			want: New(6, 6),
		},
		{
			name: "inside deleted range collapses to edit point",
			sel:  New(3, 5),
			edit: Edit{Start: 2, End: 8, NewLen: 0},
			want: New(2, 2),
		},
		{
			name: "inside replacement collapses to new end",
			sel:  New(4, 4),
			edit: Edit{Start: 2, End: 6, NewLen: 1},
			want: New(3, 3),
		},
		{
			name: "reversed selection keeps orientation",
			sel:  New(9, 6),
			edit: Edit{Start: 0, End: 0, NewLen: 2},
			want: New(11, 8),
		},
		{
			name: "boundary at edit start unchanged",
			sel:  New(2, 2),
			edit: Edit{Start: 2, End: 4, NewLen: 5},
			want: New(2, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.MapThrough(tt.edit); got != tt.want {
				t.Errorf("MapThrough = %+v, want %+v", got, tt.want)
			}
		})
	}
}
