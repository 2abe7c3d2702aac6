package tanlang

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// End returns the position just past the last byte.
func (s *Source) End() Pos {
	return s.PosAt(len(s.Content))
}

func (s *Source) PosAt(offset int) Pos {
	pos := Pos{
		Source: s,
		Line:   1,
		Column: 1,
	}
	pos.advance(s.Content[:min(offset, len(s.Content))])
	return pos
}

type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

func (p *Pos) advance(text string) {
	for _, r := range text {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Offset += len(text)
}

func (p Pos) String() string {
	name := "<input>"
	if p.Source != nil && p.Source.Name != "" {
		name = p.Source.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

func runeWidth(r rune) int {
	if r == 0 || !utf8.ValidRune(r) {
		return 1
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
