package style

import (
	"testing"

	"github.com/gompdf/ingredientpdf/pkg/report"
)

func TestRowBackground_StripesByAbsoluteIndex(t *testing.T) {
	s := Default()
	want := map[int]Color{
		0: s.HeaderBackground,
		1: s.BodyOdd,
		2: s.BodyEven,
		3: s.BodyOdd,
		4: s.BodyEven,
		5: s.BodyOdd,
	}
	for idx, c := range want {
		if got := s.RowBackground(idx); got != c {
			t.Fatalf("row %d: expected %+v, got %+v", idx, c, got)
		}
	}
}

func TestColorRGB(t *testing.T) {
	cases := []struct {
		c       Color
		r, g, b int
	}{
		{Color{R: 0.45, G: 0.65, B: 0.45}, 115, 166, 115},
		{Color{R: 0.85, G: 0.95, B: 0.85}, 217, 242, 217},
		{Color{R: 0.75, G: 0.87, B: 0.75}, 191, 222, 191},
		{Color{R: 0.6, G: 0.8, B: 0.6}, 153, 204, 153},
		{Color{R: -1, G: 2, B: 0}, 0, 255, 0},
	}
	for _, tc := range cases {
		r, g, b := tc.c.RGB()
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("%+v: expected (%d,%d,%d), got (%d,%d,%d)", tc.c, tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestForRole(t *testing.T) {
	s := Default()
	if s.ForRole(report.RoleHeader).Font.Style != "B" {
		t.Fatalf("expected bold header")
	}
	if s.ForRole(report.RoleBody).Font.Style != "" {
		t.Fatalf("expected regular body")
	}
	if s.Header.Font.Size <= s.Body.Font.Size {
		t.Fatalf("expected larger header font")
	}
}
