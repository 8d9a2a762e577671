package buffer

import "testing"

func TestComparePos(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 0}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 2, Col: 0}, Pos{Row: 1, Col: 999}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 1, Col: 0}, Pos{Row: 1, Col: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 1, Col: 2}, Pos{Row: 1, Col: 1}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 3, Col: 4}, Pos{Row: 3, Col: 4}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: Pos{Row: 2, Col: 3}, End: Pos{Row: 1, Col: 9}})
	if r.Start != (Pos{Row: 1, Col: 9}) || r.End != (Pos{Row: 2, Col: 3}) {
		t.Fatalf("unexpected range: %#v", r)
	}

	r2 := NormalizeRange(r)
	if r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
}

func TestClampPos(t *testing.T) {
	lineLens := []int{1, 0, 3}
	ll := func(row int) int { return lineLens[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, Col: -1}, want: Pos{Row: 0, Col: 0}},
		{in: Pos{Row: 999, Col: 999}, want: Pos{Row: 2, Col: 3}},
		{in: Pos{Row: 1, Col: 5}, want: Pos{Row: 1, Col: 0}},
		{in: Pos{Row: 0, Col: 1}, want: Pos{Row: 0, Col: 1}},
	}

	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPos(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 1}}
	cases := []struct {
		p    Pos
		want bool
	}{
		{p: Pos{Row: 0, Col: 0}, want: false},
		{p: Pos{Row: 0, Col: 1}, want: true},
		{p: Pos{Row: 0, Col: 99}, want: true},
		{p: Pos{Row: 1, Col: 1}, want: true},
		{p: Pos{Row: 1, Col: 2}, want: false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Fatalf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
