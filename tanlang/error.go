package tanlang

import (
	"errors"
	"fmt"
	"strings"
)

// LexError reports a source position that matches no token pattern.
type LexError struct {
	Offset int
	Char   rune
}

func (l *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q (offset %d)", l.Char, l.Offset)
}

// SyntaxError reports a token that does not satisfy the current production.
type SyntaxError struct {
	Expected []Kind
	Found    Token
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, found %s", joinKinds(s.Expected), s.Found)
}

var ErrUnexpectedEnd = errors.New("unexpected end of input")

// UnexpectedEndError reports a token stream exhausted inside a construct.
type UnexpectedEndError struct {
	Expected []Kind
}

func (u *UnexpectedEndError) Error() string {
	return fmt.Sprintf("%s: expected %s", ErrUnexpectedEnd.Error(), joinKinds(u.Expected))
}

func (u *UnexpectedEndError) Is(target error) bool {
	return target == ErrUnexpectedEnd
}

func joinKinds(kinds []Kind) string {
	strs := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		strs = append(strs, kind.String())
	}
	switch len(strs) {
	case 0:
		return "nothing"
	case 1:
		return strs[0]
	}
	return strings.Join(strs[:len(strs)-1], ", ") + " or " + strs[len(strs)-1]
}

// PosError attaches a source position to an error and renders the offending line with a caret.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s\n", p.Err.Error(), p.Pos))

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Pos.Source.Lines) {
		line := p.Pos.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		col := p.Pos.Column - 1
		i := 0
		for _, r := range line {
			if i >= col {
				break
			}
			i++
			if r == '\t' {
				sb.WriteString("\t")
				continue
			}
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
