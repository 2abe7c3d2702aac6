package numerals

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Glyph is a positional base-20 notation.
// A literal is a sequence of blocks joined by Separator, most significant block first.
// A block is either a run of Unit (worth 1) and Five (worth 5) glyphs, or a lone Zero glyph.
type Glyph struct {
	Label     string
	Zero      rune
	Unit      rune
	Five      rune
	Separator rune
}

// Maya is the dot and bar notation: '.' is one, '|' is five, '0' is zero, ',' separates blocks.
var Maya = Glyph{
	Label:     "maya",
	Zero:      '0',
	Unit:      '.',
	Five:      '|',
	Separator: ',',
}

const Base = 20

var _ Notation = Glyph{}
var _ Encoder = Glyph{}

func (g Glyph) Name() string {
	if g.Label == "" {
		return "glyph"
	}
	return g.Label
}

func (g Glyph) Match(src string, offset int) int {
	end, ok := g.matchBlock(src, offset)
	if !ok {
		return 0
	}
	for {
		i := skipSpace(src, end)
		r, size := utf8.DecodeRuneInString(src[i:])
		if size == 0 || r != g.Separator {
			break
		}
		next, ok := g.matchBlock(src, skipSpace(src, i+size))
		if !ok {
			// separator without a block is left to the next token
			break
		}
		end = next
	}
	return end - offset
}

func (g Glyph) matchBlock(src string, i int) (int, bool) {
	r, size := utf8.DecodeRuneInString(src[i:])
	switch {
	case size == 0:
		return i, false
	case r == g.Zero:
		return i + size, true
	case r != g.Unit && r != g.Five:
		return i, false
	}
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r != g.Unit && r != g.Five {
			break
		}
		i += size
	}
	return skipSpace(src, i), true
}

func skipSpace(src string, i int) int {
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// Decode sums the blocks in base 20.
// A block holding a Zero glyph is worth 0 whatever else it holds.
// Blocks worth 20 or more are not rejected and fold into the total as they are.
func (g Glyph) Decode(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &FormatError{Notation: g.Name(), Text: text, Reason: "empty literal"}
	}
	if trimmed == string(g.Zero) {
		return 0, nil
	}

	var total int64
	for block := range strings.SplitSeq(trimmed, string(g.Separator)) {
		value, err := g.decodeBlock(text, block)
		if err != nil {
			return 0, err
		}
		if total > (math.MaxInt64-value)/Base {
			return 0, &FormatError{Notation: g.Name(), Text: text, Reason: "value out of range"}
		}
		total = total*Base + value
	}
	return total, nil
}

func (g Glyph) decodeBlock(text string, block string) (int64, error) {
	var units, fives int64
	zero := false
	for _, r := range block {
		switch {
		case r == g.Zero:
			zero = true
		case r == g.Unit:
			units++
		case r == g.Five:
			fives++
		case unicode.IsSpace(r):
		default:
			return 0, &FormatError{Notation: g.Name(), Text: text, Char: r}
		}
	}
	if zero {
		return 0, nil
	}
	return units + fives*5, nil
}

// Encode expands value greedily into base-20 digits.
// Digits are written as unit glyphs followed by five glyphs, zero digits as the Zero glyph.
func (g Glyph) Encode(value int64) (string, error) {
	if value < 0 {
		return "", &FormatError{Notation: g.Name(), Reason: "negative value"}
	}
	if value == 0 {
		return string(g.Zero), nil
	}
	var digits []int64
	for v := value; v > 0; v /= Base {
		digits = append(digits, v%Base)
	}
	blocks := make([]string, 0, len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		blocks = append(blocks, g.encodeDigit(digits[i]))
	}
	return strings.Join(blocks, " "+string(g.Separator)+" "), nil
}

func (g Glyph) encodeDigit(d int64) string {
	if d == 0 {
		return string(g.Zero)
	}
	return strings.Repeat(string(g.Unit), int(d%5)) +
		strings.Repeat(string(g.Five), int(d/5))
}
