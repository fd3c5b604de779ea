package text

import (
	"reflect"
	"strings"
	"testing"
	"unicode"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/gompdf/ingredientpdf/pkg/report"
)

var body = Font{Family: "Helvetica", Size: 10}

func TestSplitTextToLines_Whitespace(t *testing.T) {
	// 6pt per rune with ApproxMeasurer at 10pt
	shaper := NewTextShaper(nil)
	got := shaper.SplitTextToLines("aaa bbb ccc dd", body, 45)
	want := []string{"aaa bbb", "ccc dd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitTextToLines_ExactFit(t *testing.T) {
	shaper := NewTextShaper(nil)
	got := shaper.SplitTextToLines("abcde", body, 30)
	if !reflect.DeepEqual(got, []string{"abcde"}) {
		t.Fatalf("expected single line, got %q", got)
	}
}

func TestSplitTextToLines_BreaksLongToken(t *testing.T) {
	shaper := NewTextShaper(nil)
	got := shaper.SplitTextToLines("xx abcdefghij yy", body, 24)
	want := []string{"xx", "abcd", "efgh", "ij", "yy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitTextToLines_TailOfBrokenTokenJoinsNextWord(t *testing.T) {
	shaper := NewTextShaper(nil)
	got := shaper.SplitTextToLines("abcdefg h", body, 30)
	want := []string{"abcde", "fg h"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitTextToLines_NarrowerThanOneRune(t *testing.T) {
	shaper := NewTextShaper(nil)
	got := shaper.SplitTextToLines("abc", body, 1)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplitTextToLines_Empty(t *testing.T) {
	shaper := NewTextShaper(nil)
	if got := shaper.SplitTextToLines("   ", body, 100); got != nil {
		t.Fatalf("expected no lines, got %q", got)
	}
}

func TestWrap_KeepsBlankHardLines(t *testing.T) {
	shaper := NewTextShaper(nil)
	got := shaper.Wrap([]string{"ab", "", "cd"}, body, 100)
	want := []string{"ab", "", "cd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPDFMeasurer_LongTokenFitsOneInch(t *testing.T) {
	doc := fpdf.New("P", "pt", "Letter", "")
	m := NewPDFMeasurer(doc)
	shaper := NewTextShaper(m)

	token := strings.Repeat("W", 300)
	maxWidth := 72.0 - 12.0
	lines := shaper.SplitTextToLines(token, body, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	total := 0
	for _, l := range lines {
		if w := m.StringWidth(l, body); w > maxWidth+widthEpsilon {
			t.Fatalf("line %q overflows: %.2f > %.2f", l, w, maxWidth)
		}
		total += len(l)
	}
	if total != 300 {
		t.Fatalf("expected all 300 runes kept, got %d", total)
	}
	if doc.Err() {
		t.Fatalf("document error: %v", doc.Error())
	}
}

func TestPDFMeasurer_BoldIsWider(t *testing.T) {
	m := NewPDFMeasurer(fpdf.New("P", "pt", "Letter", ""))
	regular := m.StringWidth("Ingredient", body)
	bold := m.StringWidth("Ingredient", Font{Family: "Helvetica", Style: "B", Size: 10})
	if bold <= regular {
		t.Fatalf("expected bold %.2f > regular %.2f", bold, regular)
	}
	if m.StringWidth("", body) != 0 {
		t.Fatalf("expected zero width for empty text")
	}
}

func TestPDFMeasurer_EncodesNonASCII(t *testing.T) {
	m := NewPDFMeasurer(fpdf.New("P", "pt", "Letter", ""))
	if got := m.Encode("é"); len(got) != 1 {
		t.Fatalf("expected single byte code page encoding, got %q", got)
	}
}

func TestPDFMeasurer_EncodesEveryAcceptedCharacter(t *testing.T) {
	m := NewPDFMeasurer(fpdf.New("P", "pt", "Letter", ""))
	dec := charmap.Windows1252.NewDecoder()

	for r := rune(0x20); r < 0x2200; r++ {
		if unicode.IsControl(r) || !report.Encodable(r) {
			continue
		}
		got, err := dec.String(m.Encode(string(r)))
		if err != nil {
			t.Fatalf("%U: decode: %v", r, err)
		}
		if got != string(r) {
			t.Fatalf("%U: encoded as %q, reads back as %q", r, m.Encode(string(r)), got)
		}
	}
}

func TestPDFMeasurer_RoundTripsCellText(t *testing.T) {
	m := NewPDFMeasurer(fpdf.New("P", "pt", "Letter", ""))
	dec := charmap.Windows1252.NewDecoder()

	for _, in := range []string{
		"Aloe Vera",
		"Safe when concentration<limit",
		"Crème brûlée – “Œuvre” € 5µg ±2°",
		"Tocopherol (vitamin E) ≈",
	} {
		if err := (report.Grid{{{Text: in}}}).Validate(); err != nil {
			// only text the grid accepts must survive encoding
			continue
		}
		got, err := dec.String(m.Encode(in))
		if err != nil || got != in {
			t.Fatalf("%q: reads back as %q (%v)", in, got, err)
		}
	}
}
