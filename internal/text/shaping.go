package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"
)

// widthEpsilon absorbs float drift when summing glyph advances
const widthEpsilon = 1e-6

// Font represents a core PDF font used for text shaping
type Font struct {
	Family string
	// Style is an fpdf style string: "", "B", "I" or "BI"
	Style string
	Size  float64
}

// Measurer reports the rendered width of a string in points
type Measurer interface {
	StringWidth(text string, font Font) float64
}

// ApproxMeasurer measures text with a fixed advance of 0.6em per rune.
// It needs no font metrics and is used where no document is available.
type ApproxMeasurer struct{}

// StringWidth implements Measurer
func (ApproxMeasurer) StringWidth(text string, font Font) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size * 0.6
}

// PDFMeasurer measures text with the core font metrics of an fpdf document.
// It is bound to one document and must not be shared across goroutines.
type PDFMeasurer struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewPDFMeasurer creates a measurer backed by the given document
func NewPDFMeasurer(pdf *fpdf.Fpdf) *PDFMeasurer {
	return &PDFMeasurer{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// Encode converts UTF-8 text to the code page of the core fonts
func (m *PDFMeasurer) Encode(text string) string {
	return m.translate(text)
}

// StringWidth implements Measurer
func (m *PDFMeasurer) StringWidth(text string, font Font) float64 {
	if text == "" || font.Size <= 0 {
		return 0
	}
	m.pdf.SetFont(font.Family, font.Style, font.Size)
	return m.pdf.GetStringWidth(m.translate(text))
}

// TextShaper breaks text into lines that fit a width
type TextShaper struct {
	measurer Measurer
}

// NewTextShaper creates a new text shaper. A nil measurer falls back to ApproxMeasurer.
func NewTextShaper(m Measurer) *TextShaper {
	if m == nil {
		m = ApproxMeasurer{}
	}
	return &TextShaper{measurer: m}
}

// Wrap splits each hard line to fit maxWidth. Blank hard lines are kept.
func (s *TextShaper) Wrap(hardLines []string, font Font, maxWidth float64) []string {
	var out []string
	for _, hl := range hardLines {
		if hl == "" {
			out = append(out, "")
			continue
		}
		out = append(out, s.SplitTextToLines(hl, font, maxWidth)...)
	}
	return out
}

// SplitTextToLines splits text into lines based on a maximum width.
// Lines break on whitespace; a word wider than maxWidth is broken between
// runes so no line overflows, with at least one rune per line.
func (s *TextShaper) SplitTextToLines(text string, font Font, maxWidth float64) []string {
	words := splitIntoWords(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	spaceWidth := s.measurer.StringWidth(" ", font)

	var lines []string
	line := ""
	lineWidth := 0.0

	for _, word := range words {
		w := s.measurer.StringWidth(word, font)

		if line != "" && lineWidth+spaceWidth+w <= maxWidth+widthEpsilon {
			line += " " + word
			lineWidth += spaceWidth + w
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line, lineWidth = "", 0
		}
		if w <= maxWidth+widthEpsilon {
			line, lineWidth = word, w
			continue
		}

		pieces := s.breakWord(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
		lineWidth = s.measurer.StringWidth(line, font)
	}

	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// breakWord cuts an unbreakable run into pieces no wider than maxWidth
func (s *TextShaper) breakWord(word string, font Font, maxWidth float64) []string {
	var pieces []string
	var cur []rune
	curWidth := 0.0

	for _, r := range word {
		rw := s.measurer.StringWidth(string(r), font)
		if len(cur) > 0 && curWidth+rw > maxWidth+widthEpsilon {
			pieces = append(pieces, string(cur))
			cur, curWidth = cur[:0], 0
		}
		cur = append(cur, r)
		curWidth += rw
	}
	if len(cur) > 0 {
		pieces = append(pieces, string(cur))
	}
	return pieces
}

// splitIntoWords splits text into words
func splitIntoWords(text string) []string {
	var words []string
	var currentWord []rune

	for _, r := range text {
		if unicode.IsSpace(r) {
			if len(currentWord) > 0 {
				words = append(words, string(currentWord))
				currentWord = currentWord[:0]
			}
		} else {
			currentWord = append(currentWord, r)
		}
	}

	if len(currentWord) > 0 {
		words = append(words, string(currentWord))
	}

	return words
}
