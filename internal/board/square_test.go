package board

import "testing"

func TestSquareMapping(t *testing.T) {
	tests := []struct {
		sq       Square
		col, row int
		name     string
	}{
		{A8, 0, 0, "a8"},
		{H8, 7, 0, "h8"},
		{E4, 4, 4, "e4"},
		{A1, 0, 7, "a1"},
		{H1, 7, 7, "h1"},
	}

	for _, tc := range tests {
		if tc.sq.Col() != tc.col || tc.sq.Row() != tc.row {
			t.Errorf("%v: col/row = %d/%d, want %d/%d", tc.sq, tc.sq.Col(), tc.sq.Row(), tc.col, tc.row)
		}
		if tc.sq.String() != tc.name {
			t.Errorf("square %d: String() = %q, want %q", tc.sq, tc.sq.String(), tc.name)
		}
		if NewSquare(tc.col, tc.row) != tc.sq {
			t.Errorf("NewSquare(%d, %d) = %v, want %v", tc.col, tc.row, NewSquare(tc.col, tc.row), tc.sq)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for sq := A8; sq <= H1; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", sq.String(), got, sq)
		}
	}

	for _, bad := range []string{"", "e", "e9", "i4", "44", "e4x"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q): expected error", bad)
		}
	}
}

func TestBitboardBasics(t *testing.T) {
	b := Empty.Set(A8).Set(E4).Set(H1)

	if b.PopCount() != 3 {
		t.Errorf("PopCount = %d, want 3", b.PopCount())
	}
	if !b.IsSet(E4) || b.IsSet(E5) {
		t.Error("IsSet mismatch")
	}
	if b.LSB() != A8 {
		t.Errorf("LSB = %v, want a8", b.LSB())
	}

	got := b.Squares()
	want := []Square{A8, E4, H1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Squares() = %v, want %v", got, want)
		}
	}

	if b.Clear(E4).IsSet(E4) {
		t.Error("Clear did not clear")
	}
}
