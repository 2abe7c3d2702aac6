package tanlang

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	source  *Source
	dialect Dialect
	words   map[string]Kind
	symbols []symbol
	pos     Pos
	tokens  []Token
}

type symbol struct {
	text string
	kind Kind
}

// matchFunc consumes a token or a separator at the cursor.
// It returns the byte length consumed, 0 when it does not apply.
type matchFunc func(l *lexer) (int, error)

// tried in order at each cursor position, first match wins
var matchers = []matchFunc{
	(*lexer).matchNumeral,
	(*lexer).matchWord,
	(*lexer).matchSymbol,
	(*lexer).matchSpace,
}

func Tokenize(source string, dialect Dialect) ([]Token, error) {
	return tokenize(NewSource("", source), dialect)
}

func tokenize(source *Source, dialect Dialect) ([]Token, error) {
	if err := dialect.Validate(); err != nil {
		return nil, err
	}

	l := &lexer{
		source:  source,
		dialect: dialect,
		words:   make(map[string]Kind),
		pos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
	for _, kind := range literalKinds {
		lit := dialect.Literal(kind)
		if isWord(lit) {
			l.words[lit] = kind
		} else {
			l.symbols = append(l.symbols, symbol{text: lit, kind: kind})
		}
	}
	// longest literal first
	slices.SortStableFunc(l.symbols, func(a, b symbol) int {
		return cmp.Compare(len(b.text), len(a.text))
	})

	content := source.Content
loop:
	for l.pos.Offset < len(content) {
		for _, match := range matchers {
			n, err := match(l)
			if err != nil {
				return nil, err
			}
			if n > 0 {
				l.pos.advance(content[l.pos.Offset : l.pos.Offset+n])
				continue loop
			}
		}
		r, size := utf8.DecodeRuneInString(content[l.pos.Offset:])
		if r == utf8.RuneError && size == 1 {
			// invalid encoding, report the raw byte
			r = rune(content[l.pos.Offset])
		}
		return nil, WithPos(&LexError{
			Offset: l.pos.Offset,
			Char:   r,
		}, l.pos)
	}

	return l.tokens, nil
}

func (l *lexer) rest() string {
	return l.source.Content[l.pos.Offset:]
}

func (l *lexer) emit(kind Kind, text string, value int64) {
	l.tokens = append(l.tokens, Token{
		Kind:  kind,
		Text:  text,
		Value: value,
		Pos:   l.pos,
	})
}

func (l *lexer) matchNumeral() (int, error) {
	n := l.dialect.Notation.Match(l.source.Content, l.pos.Offset)
	if n == 0 {
		return 0, nil
	}
	text := l.rest()[:n]
	value, err := l.dialect.Notation.Decode(text)
	if err != nil {
		return 0, WithPos(err, l.pos)
	}
	l.emit(KindNumber, strings.TrimSpace(text), value)
	return n, nil
}

func (l *lexer) matchWord() (int, error) {
	rest := l.rest()
	n := 0
	for i, r := range rest {
		if i == 0 && !isIdentStart(r) || !isIdentChar(r) {
			break
		}
		n = i + 1
	}
	if n == 0 {
		return 0, nil
	}
	word := rest[:n]
	if kind, ok := l.words[word]; ok {
		l.emit(kind, word, 0)
	} else {
		l.emit(KindIdent, word, 0)
	}
	return n, nil
}

func (l *lexer) matchSymbol() (int, error) {
	rest := l.rest()
	for _, sym := range l.symbols {
		if strings.HasPrefix(rest, sym.text) {
			l.emit(sym.kind, sym.text, 0)
			return len(sym.text), nil
		}
	}
	return 0, nil
}

func (l *lexer) matchSpace() (int, error) {
	rest := l.rest()
	n := 0
	for i, r := range rest {
		if !unicode.IsSpace(r) {
			break
		}
		n = i + utf8.RuneLen(r)
	}
	return n, nil
}
