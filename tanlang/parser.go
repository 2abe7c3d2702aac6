package tanlang

import "slices"

// Grammar, precedence low to high:
//
//	program    := statement*
//	statement  := LET IDENT ASSIGN expression
//	            | PRINT LPAREN expression RPAREN
//	expression := term ((PLUS | MINUS) term)*
//	term       := factor ((TIMES | DIVIDE) factor)*
//	factor     := NUMBER | IDENT | LPAREN expression RPAREN
//
// Binary operators fold left.

type parser struct {
	tokens []Token
	idx    int
}

func Parse(tokens []Token) (*Program, error) {
	p := &parser{
		tokens: tokens,
	}
	program := new(Program)
	for !p.atEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	return program, nil
}

func (p *parser) atEnd() bool {
	return p.idx >= len(p.tokens)
}

func (p *parser) peek() Token {
	if p.atEnd() {
		return Token{Kind: KindEOF}
	}
	return p.tokens[p.idx]
}

// expect consumes the current token if it is of one of kinds.
// The cursor does not move on failure.
func (p *parser) expect(kinds ...Kind) (Token, error) {
	if p.atEnd() {
		return Token{}, &UnexpectedEndError{Expected: kinds}
	}
	tok := p.tokens[p.idx]
	for _, kind := range kinds {
		if tok.Kind == kind {
			p.idx++
			return tok, nil
		}
	}
	return Token{}, WithPos(&SyntaxError{
		Expected: kinds,
		Found:    tok,
	}, tok.Pos)
}

func (p *parser) statement() (Stmt, error) {
	lead, err := p.expect(KindLet, KindPrint)
	if err != nil {
		return nil, err
	}

	switch lead.Kind {

	case KindLet:
		name, err := p.expect(KindIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(KindAssign); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &Assign{
			Name:  name.Text,
			Value: value,
			Pos:   lead.Pos,
		}, nil

	default:
		if _, err := p.expect(KindLParen); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(KindRParen); err != nil {
			return nil, err
		}
		return &Print{
			Value: value,
			Pos:   lead.Pos,
		}, nil

	}
}

func (p *parser) expression() (Expr, error) {
	return p.binary(p.term, KindPlus, KindMinus)
}

func (p *parser) term() (Expr, error) {
	return p.binary(p.factor, KindTimes, KindDivide)
}

func (p *parser) binary(operand func() (Expr, error), kinds ...Kind) (Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if !slices.Contains(kinds, tok.Kind) {
			return left, nil
		}
		p.idx++
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Op:    opKinds[tok.Kind],
			Left:  left,
			Right: right,
			Pos:   tok.Pos,
		}
	}
}

func (p *parser) factor() (Expr, error) {
	tok, err := p.expect(KindNumber, KindIdent, KindLParen)
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case KindNumber:
		return &NumberLit{
			Value: tok.Value,
			Pos:   tok.Pos,
		}, nil
	case KindIdent:
		return &VarRef{
			Name: tok.Text,
			Pos:  tok.Pos,
		}, nil
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindRParen); err != nil {
		return nil, err
	}
	return expr, nil
}
