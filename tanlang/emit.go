package tanlang

import (
	"fmt"
	"strconv"
	"strings"
)

// Emit renders the program as Python source, one line per statement.
// Every binary operation is parenthesized so the host precedence rules never apply.
func Emit(program *Program) string {
	var sb strings.Builder
	for i, stmt := range program.Stmts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		emitStmt(&sb, stmt)
	}
	return sb.String()
}

func emitStmt(sb *strings.Builder, stmt Stmt) {
	switch stmt := stmt.(type) {
	case *Assign:
		sb.WriteString(stmt.Name)
		sb.WriteString(" = ")
		emitExpr(sb, stmt.Value)
	case *Print:
		sb.WriteString("print(")
		emitExpr(sb, stmt.Value)
		sb.WriteString(")")
	default:
		panic(fmt.Errorf("unknown statement: %T", stmt))
	}
}

func emitExpr(sb *strings.Builder, expr Expr) {
	switch expr := expr.(type) {
	case *NumberLit:
		sb.WriteString(strconv.FormatInt(expr.Value, 10))
	case *VarRef:
		sb.WriteString(expr.Name)
	case *BinaryOp:
		sb.WriteString("(")
		emitExpr(sb, expr.Left)
		sb.WriteString(" ")
		sb.WriteString(expr.Op.Symbol())
		sb.WriteString(" ")
		emitExpr(sb, expr.Right)
		sb.WriteString(")")
	default:
		panic(fmt.Errorf("unknown expression: %T", expr))
	}
}
