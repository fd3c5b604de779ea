package html

import (
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// lineBreak matches <br>, <br/> and <br /> in any case
var lineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)

// Parser decodes the inline markup allowed inside table cells.
// Character references are unescaped and <br> starts a new line. Anything
// else, including other tags and a bare '<', is kept as literal text.
// Whitespace runs collapse to a single space.
type Parser struct{}

// Paragraph is the decoded content of one cell
type Paragraph struct {
	// Lines are the hard lines of the cell, before wrapping
	Lines []string
}

// Text joins the hard lines with newlines
func (p Paragraph) Text() string {
	return strings.Join(p.Lines, "\n")
}

// NewParser creates a new cell markup parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString decodes cell markup from a string
func (p *Parser) ParseString(content string) (Paragraph, error) {
	parts := lineBreak.Split(content, -1)
	lines := make([]string, len(parts))
	for i, part := range parts {
		lines[i] = strings.TrimSpace(normalizeWhitespace(html.UnescapeString(part)))
	}
	return Paragraph{Lines: blankToNil(lines)}, nil
}

// Parse decodes cell markup from an io.Reader
func (p *Parser) Parse(r io.Reader) (Paragraph, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Paragraph{}, err
	}
	return p.ParseString(string(b))
}

// blankToNil returns nil when every line is blank
func blankToNil(lines []string) []string {
	for _, l := range lines {
		if l != "" {
			return lines
		}
	}
	return nil
}

// normalizeWhitespace collapses consecutive whitespace into a single space.
// Unlike strings.TrimSpace, it doesn't remove leading/trailing spaces.
func normalizeWhitespace(s string) string {
	var result []rune
	var lastWasSpace bool

	for _, r := range s {
		isSpace := unicode.IsSpace(r)

		if isSpace {
			if !lastWasSpace {
				result = append(result, ' ')
			}
			lastWasSpace = true
		} else {
			result = append(result, r)
			lastWasSpace = false
		}
	}

	return string(result)
}
