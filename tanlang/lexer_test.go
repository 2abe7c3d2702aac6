package tanlang

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/tan/numerals"
)

func tokenStrings(tokens []Token) []string {
	ret := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		ret = append(ret, tok.String())
	}
	return ret
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		dialect Dialect
		input   string
		tokens  []string
	}{
		{
			dialect: MiniLang,
			input:   "let x = 5\nprint(x + 10)",
			tokens: []string{
				`(LET, "let")`, `(IDENT, "x")`, `(ASSIGN, "=")`, `(NUMBER, 5)`,
				`(PRINT, "print")`, `(LPAREN, "(")`, `(IDENT, "x")`, `(PLUS, "+")`, `(NUMBER, 10)`, `(RPAREN, ")")`,
			},
		},
		{
			dialect: MiniLang,
			input:   "a-b*c/d",
			tokens: []string{
				`(IDENT, "a")`, `(MINUS, "-")`, `(IDENT, "b")`, `(TIMES, "*")`,
				`(IDENT, "c")`, `(DIVIDE, "/")`, `(IDENT, "d")`,
			},
		},
		{
			dialect: MiniLang,
			input:   "letter printer let_ _let x1",
			tokens: []string{
				`(IDENT, "letter")`, `(IDENT, "printer")`, `(IDENT, "let_")`, `(IDENT, "_let")`, `(IDENT, "x1")`,
			},
		},
		{
			dialect: Tan,
			input:   "xiib x keet |\nxiib y keet . , .|\ntsiibil [x + y * ..]",
			tokens: []string{
				`(LET, "xiib")`, `(IDENT, "x")`, `(ASSIGN, "keet")`, `(NUMBER, 5)`,
				`(LET, "xiib")`, `(IDENT, "y")`, `(ASSIGN, "keet")`, `(NUMBER, 26)`,
				`(PRINT, "tsiibil")`, `(LPAREN, "[")`, `(IDENT, "x")`, `(PLUS, "+")`, `(IDENT, "y")`,
				`(TIMES, "*")`, `(NUMBER, 2)`, `(RPAREN, "]")`,
			},
		},
		{
			dialect: Tan,
			input:   "xiib grande keet 0 , 0 , 0 , 0 , .",
			tokens: []string{
				`(LET, "xiib")`, `(IDENT, "grande")`, `(ASSIGN, "keet")`, `(NUMBER, 1)`,
			},
		},
		{
			dialect: Tan,
			input:   "xiib let keet 0\ntsiibil [let]",
			tokens: []string{
				`(LET, "xiib")`, `(IDENT, "let")`, `(ASSIGN, "keet")`, `(NUMBER, 0)`,
				`(PRINT, "tsiibil")`, `(LPAREN, "[")`, `(IDENT, "let")`, `(RPAREN, "]")`,
			},
		},
		{
			dialect: MiniLang,
			input:   " \t\r\n ",
			tokens:  []string{},
		},
	}

	for _, test := range tests {
		tokens, err := Tokenize(test.input, test.dialect)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if diff := cmp.Diff(test.tokens, tokenStrings(tokens)); diff != "" {
			t.Fatalf("%q: %s", test.input, diff)
		}
	}
}

func TestTokenPos(t *testing.T) {
	tokens, err := Tokenize("let x = 5\n  print(x)", MiniLang)
	if err != nil {
		t.Fatal(err)
	}
	tok := tokens[4]
	if tok.Kind != KindPrint {
		t.Fatalf("got %v", tok)
	}
	if tok.Pos.Line != 2 || tok.Pos.Column != 3 || tok.Pos.Offset != 12 {
		t.Fatalf("got %+v", tok.Pos)
	}
}

func TestLexError(t *testing.T) {
	_, err := Tokenize("xiib x keet @", Tan)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Char != '@' {
		t.Fatalf("got %q", lexErr.Char)
	}
	if lexErr.Offset != 12 {
		t.Fatalf("got %d", lexErr.Offset)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if posErr.Pos.Column != 13 {
		t.Fatalf("got %+v", posErr.Pos)
	}
	if !strings.Contains(err.Error(), "xiib x keet @\n            ^") {
		t.Fatalf("got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "unexpected character '@' (offset 12) at <input>:1:13\n") {
		t.Fatalf("got %v", err)
	}
}

func TestLexErrorInvalidEncoding(t *testing.T) {
	_, err := Tokenize("let x = \xff", MiniLang)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Char != 0xff {
		t.Fatalf("got %q", lexErr.Char)
	}
	if lexErr.Offset != 8 {
		t.Fatalf("got %d", lexErr.Offset)
	}
}

func TestLexErrorDialect(t *testing.T) {
	// decimal digits are not numerals in the glyph dialect
	_, err := Tokenize("xiib x keet 5", Tan)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Char != '5' {
		t.Fatalf("got %q", lexErr.Char)
	}

	// brackets are not grouping symbols in minilang
	_, err = Tokenize("print[1]", MiniLang)
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Char != '[' {
		t.Fatalf("got %q", lexErr.Char)
	}
}

type badNotation struct {
	numerals.Decimal
}

func (badNotation) Match(src string, offset int) int {
	n := 0
	for offset+n < len(src) && (src[offset+n] >= '0' && src[offset+n] <= '9' || src[offset+n] == '#') {
		n++
	}
	return n
}

func TestNumeralFormatError(t *testing.T) {
	d := MiniLang
	d.Notation = badNotation{}
	_, err := Tokenize("let x = 1#2", d)
	var formatErr *numerals.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("got %v", err)
	}
	if formatErr.Char != '#' {
		t.Fatalf("got %q", formatErr.Char)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if posErr.Pos.Offset != 8 {
		t.Fatalf("got %+v", posErr.Pos)
	}
}

func TestDialectValidate(t *testing.T) {
	for _, d := range Dialects() {
		if err := d.Validate(); err != nil {
			t.Fatal(err)
		}
	}

	bad := Tan
	bad.Assign = "."
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "numeral") {
		t.Fatalf("got %v", err)
	}

	bad = MiniLang
	bad.Print = "let"
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "both") {
		t.Fatalf("got %v", err)
	}

	bad = MiniLang
	bad.Let = ""
	if err := bad.Validate(); err == nil {
		t.Fatal("should error")
	}

	bad = MiniLang
	bad.Assign = "a="
	if err := bad.Validate(); err == nil {
		t.Fatal("should error")
	}

	bad = MiniLang
	bad.Notation = nil
	if _, err := Tokenize("let x = 1", bad); err == nil {
		t.Fatal("should error")
	}
}

func TestLookupDialect(t *testing.T) {
	d, ok := LookupDialect("TAN")
	if !ok {
		t.Fatal()
	}
	if d.Let != "xiib" {
		t.Fatalf("got %v", d.Let)
	}
	if _, ok := LookupDialect("cobol"); ok {
		t.Fatal()
	}
}

func TestSymbolLongestFirst(t *testing.T) {
	d := MiniLang
	d.Assign = ":="
	d.LParen = "(:"
	tokens, err := Tokenize("let x := 1 print(:x)", d)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		`(LET, "let")`, `(IDENT, "x")`, `(ASSIGN, ":=")`, `(NUMBER, 1)`,
		`(PRINT, "print")`, `(LPAREN, "(:")`, `(IDENT, "x")`, `(RPAREN, ")")`,
	}
	if diff := cmp.Diff(want, tokenStrings(tokens)); diff != "" {
		t.Fatal(diff)
	}
}
