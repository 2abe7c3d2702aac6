package tanlang

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/reusee/tan/numerals"
)

// Dialect is the concrete syntax shared by one grammar: keywords, grouping pair and numeral notation.
// Arithmetic operators are always + - * /.
type Dialect struct {
	Name     string
	Let      string
	Print    string
	Assign   string
	LParen   string
	RParen   string
	Notation numerals.Notation
}

var MiniLang = Dialect{
	Name:     "minilang",
	Let:      "let",
	Print:    "print",
	Assign:   "=",
	LParen:   "(",
	RParen:   ")",
	Notation: numerals.Decimal{},
}

var Tan = Dialect{
	Name:     "tan",
	Let:      "xiib",
	Print:    "tsiibil",
	Assign:   "keet",
	LParen:   "[",
	RParen:   "]",
	Notation: numerals.Maya,
}

var dialects = []Dialect{MiniLang, Tan}

func Dialects() []Dialect {
	return slices.Clone(dialects)
}

func LookupDialect(name string) (Dialect, bool) {
	for _, d := range dialects {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Dialect{}, false
}

func (d Dialect) Literal(kind Kind) string {
	switch kind {
	case KindLet:
		return d.Let
	case KindPrint:
		return d.Print
	case KindAssign:
		return d.Assign
	case KindLParen:
		return d.LParen
	case KindRParen:
		return d.RParen
	case KindPlus:
		return "+"
	case KindMinus:
		return "-"
	case KindTimes:
		return "*"
	case KindDivide:
		return "/"
	}
	return ""
}

var literalKinds = []Kind{
	KindLet, KindPrint, KindAssign,
	KindLParen, KindRParen,
	KindPlus, KindMinus, KindTimes, KindDivide,
}

// Validate reports literal tables the lexer cannot tell apart.
func (d Dialect) Validate() error {
	if d.Notation == nil {
		return fmt.Errorf("dialect %s: no numeral notation", d.Name)
	}
	seen := make(map[string]Kind)
	for _, kind := range literalKinds {
		lit := d.Literal(kind)
		if lit == "" {
			return fmt.Errorf("dialect %s: empty literal for %s", d.Name, kind)
		}
		if prev, ok := seen[lit]; ok {
			return fmt.Errorf("dialect %s: literal %q used by both %s and %s", d.Name, lit, prev, kind)
		}
		seen[lit] = kind
		if strings.IndexFunc(lit, unicode.IsSpace) >= 0 {
			return fmt.Errorf("dialect %s: literal %q contains space", d.Name, lit)
		}
		if !isWord(lit) && isIdentChar(rune(lit[0])) {
			return fmt.Errorf("dialect %s: literal %q is neither a word nor a symbol", d.Name, lit)
		}
		if d.Notation.Match(lit, 0) > 0 {
			return fmt.Errorf("dialect %s: literal %q reads as a %s numeral", d.Name, lit, d.Notation.Name())
		}
	}
	return nil
}

func isIdentStart(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || r >= '0' && r <= '9'
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) || !isIdentChar(r) {
			return false
		}
	}
	return true
}
