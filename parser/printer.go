/*
File    : golox/parser/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "strings"

// Print renders an expression as a fully-parenthesized infix string, e.g.
// `(2 + (3 * 4))`. It exists for debugging (`golox run --print-ast`) and
// as a deterministic round-trip printer for tests.
func Print(e Expr) string {
	var sb strings.Builder
	printExpr(&sb, e)
	return sb.String()
}

func printExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *LiteralExpr:
		sb.WriteString(n.Value.Display())
	case *VarExpr:
		sb.WriteString(n.Ref.Name)
	case *UnaryExpr:
		sb.WriteByte('(')
		sb.WriteString(unaryOpText(n.Op))
		printExpr(sb, n.Right)
		sb.WriteByte(')')
	case *BinaryExpr:
		sb.WriteByte('(')
		printExpr(sb, n.Left)
		sb.WriteByte(' ')
		sb.WriteString(binaryOpText(n.Op))
		sb.WriteByte(' ')
		printExpr(sb, n.Right)
		sb.WriteByte(')')
	case *LogicalExpr:
		sb.WriteByte('(')
		printExpr(sb, n.Left)
		sb.WriteByte(' ')
		if n.Op == OpAnd {
			sb.WriteString("and")
		} else {
			sb.WriteString("or")
		}
		sb.WriteByte(' ')
		printExpr(sb, n.Right)
		sb.WriteByte(')')
	case *AssignExpr:
		sb.WriteByte('(')
		sb.WriteString(n.Ref.Name)
		sb.WriteString(" = ")
		printExpr(sb, n.Value)
		sb.WriteByte(')')
	case *CallExpr:
		printExpr(sb, n.Callee)
		sb.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			printExpr(sb, a)
		}
		sb.WriteByte(')')
	}
}

func unaryOpText(op UnaryOp) string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

func binaryOpText(op BinaryOp) string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}
