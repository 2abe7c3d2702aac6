package tanlang

import (
	"fmt"
	"strconv"
	"strings"
)

// Program is the ordered statement list of one compilation unit.
type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string {
	var sb strings.Builder
	for i, stmt := range p.Stmts {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(stmt.String())
	}
	return sb.String()
}

// Stmt is *Assign or *Print.
type Stmt interface {
	fmt.Stringer
	Position() Pos
	stmtNode()
}

// Expr is *NumberLit, *VarRef or *BinaryOp.
type Expr interface {
	fmt.Stringer
	Position() Pos
	exprNode()
}

type Assign struct {
	Name  string
	Value Expr
	Pos   Pos
}

var _ Stmt = new(Assign)

func (a *Assign) Position() Pos { return a.Pos }
func (a *Assign) stmtNode()     {}

func (a *Assign) String() string {
	return "assign(" + a.Name + ", " + a.Value.String() + ")"
}

type Print struct {
	Value Expr
	Pos   Pos
}

var _ Stmt = new(Print)

func (p *Print) Position() Pos { return p.Pos }
func (p *Print) stmtNode()     {}

func (p *Print) String() string {
	return "print(" + p.Value.String() + ")"
}

type NumberLit struct {
	Value int64
	Pos   Pos
}

var _ Expr = new(NumberLit)

func (n *NumberLit) Position() Pos { return n.Pos }
func (n *NumberLit) exprNode()     {}

func (n *NumberLit) String() string {
	return "number(" + strconv.FormatInt(n.Value, 10) + ")"
}

type VarRef struct {
	Name string
	Pos  Pos
}

var _ Expr = new(VarRef)

func (v *VarRef) Position() Pos { return v.Pos }
func (v *VarRef) exprNode()     {}

func (v *VarRef) String() string {
	return "var(" + v.Name + ")"
}

type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Symbol is the infix spelling shared by source and host language.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	panic(fmt.Errorf("bad op: %d", o))
}

var opKinds = map[Kind]Op{
	KindPlus:   OpAdd,
	KindMinus:  OpSub,
	KindTimes:  OpMul,
	KindDivide: OpDiv,
}

type BinaryOp struct {
	Op    Op
	Left  Expr
	Right Expr
	Pos   Pos
}

var _ Expr = new(BinaryOp)

func (b *BinaryOp) Position() Pos { return b.Pos }
func (b *BinaryOp) exprNode()     {}

func (b *BinaryOp) String() string {
	return b.Op.String() + "(" + b.Left.String() + ", " + b.Right.String() + ")"
}
