package tanlang

import (
	"fmt"
	"strconv"
)

type Kind uint8

const (
	KindEOF Kind = iota
	KindNumber
	KindIdent
	KindLet
	KindPrint
	KindAssign
	KindPlus
	KindMinus
	KindTimes
	KindDivide
	KindLParen
	KindRParen
)

var kindNames = [...]string{
	KindEOF:    "EOF",
	KindNumber: "NUMBER",
	KindIdent:  "IDENT",
	KindLet:    "LET",
	KindPrint:  "PRINT",
	KindAssign: "ASSIGN",
	KindPlus:   "PLUS",
	KindMinus:  "MINUS",
	KindTimes:  "TIMES",
	KindDivide: "DIVIDE",
	KindLParen: "LPAREN",
	KindRParen: "RPAREN",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

type Token struct {
	Kind  Kind
	Text  string // matched literal, whitespace trimmed
	Value int64  // NUMBER only
	Pos   Pos
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("(%s, %d)", t.Kind, t.Value)
	case KindEOF:
		return t.Kind.String()
	}
	return fmt.Sprintf("(%s, %q)", t.Kind, t.Text)
}
