/*
File    : golox/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator: one struct holding
// the output writer, one method per statement kind, one method per
// expression kind, and a sum-typed control-flow result for propagating
// `return` up to the nearest call boundary, rather than a panic-based
// non-local exit.
package eval

import (
	"io"

	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/scope"
	"github.com/akashmaji946/golox/value"
)

// Evaluator drives execution of a resolved *parser.Program. It carries no
// scope state itself: every exec/eval call takes the active scope
// explicitly, so one Evaluator can safely run multiple REPL lines
// against the same persistent global scope.
type Evaluator struct {
	Out io.Writer
}

// New creates an Evaluator that writes `print` output to out.
func New(out io.Writer) *Evaluator {
	return &Evaluator{Out: out}
}

// controlResult is a small control-flow sum: isReturn false means
// "statement completed normally" (NoVal); true carries the returned
// Value up to the nearest function call boundary.
type controlResult struct {
	isReturn bool
	value    value.Value
}

var noVal = controlResult{}

func returning(v value.Value) controlResult {
	return controlResult{isReturn: true, value: v}
}

// Run executes every top-level statement of prog against sc in order,
// stopping at the first runtime error. A top-level `return` cannot occur
// in a resolver-accepted program, so any resulting controlResult is
// discarded.
func (ev *Evaluator) Run(prog *parser.Program, sc *scope.Scope) error {
	for _, s := range prog.Stmts {
		if _, err := ev.exec(s, sc); err != nil {
			return err
		}
	}
	return nil
}

// execBlock runs stmts directly against sc with no additional scope
// pushed. BlockStmt execution (below) pushes a fresh child scope and
// delegates here; function invocation (function.go) also delegates here
// directly against the scope it built for parameters, so a function's
// parameters and its top-level body locals share one scope level. This
// matches the resolver's resolveFunction, which pushes exactly one scope
// for a function's params and body combined.
func (ev *Evaluator) execBlock(blk *parser.BlockStmt, sc *scope.Scope) (controlResult, error) {
	for _, s := range blk.Stmts {
		res, err := ev.exec(s, sc)
		if err != nil {
			return controlResult{}, err
		}
		if res.isReturn {
			return res, nil
		}
	}
	return noVal, nil
}

func (ev *Evaluator) exec(s parser.Stmt, sc *scope.Scope) (controlResult, error) {
	switch n := s.(type) {
	case *parser.BlockStmt:
		return ev.execBlock(n, scope.New(sc))

	case *parser.ExprStmt:
		_, err := ev.evalExpr(n.Expr, sc)
		return noVal, err

	case *parser.PrintStmt:
		v, err := ev.evalExpr(n.Expr, sc)
		if err != nil {
			return noVal, err
		}
		io.WriteString(ev.Out, v.Display())
		io.WriteString(ev.Out, "\n")
		return noVal, nil

	case *parser.VarDeclStmt:
		v := value.Value(value.Nil{})
		if n.Init != nil {
			var err error
			v, err = ev.evalExpr(n.Init, sc)
			if err != nil {
				return noVal, err
			}
		}
		sc.Define(n.Name, v)
		return noVal, nil

	case *parser.IfStmt:
		cond, err := ev.evalExpr(n.Cond, sc)
		if err != nil {
			return noVal, err
		}
		if value.Truthy(cond) {
			return ev.exec(n.Then, sc)
		}
		if n.Else != nil {
			return ev.exec(n.Else, sc)
		}
		return noVal, nil

	case *parser.WhileStmt:
		for {
			cond, err := ev.evalExpr(n.Cond, sc)
			if err != nil {
				return noVal, err
			}
			if !value.Truthy(cond) {
				return noVal, nil
			}
			res, err := ev.exec(n.Body, sc)
			if err != nil {
				return noVal, err
			}
			if res.isReturn {
				return res, nil
			}
		}

	case *parser.FuncDeclStmt:
		sc.Define(n.Name, &UserFunction{decl: n, closure: sc})
		return noVal, nil

	case *parser.ReturnStmt:
		v := value.Value(value.Nil{})
		if n.Value != nil {
			var err error
			v, err = ev.evalExpr(n.Value, sc)
			if err != nil {
				return noVal, err
			}
		}
		return returning(v), nil

	default:
		return noVal, nil
	}
}

func (ev *Evaluator) evalExpr(e parser.Expr, sc *scope.Scope) (value.Value, error) {
	switch n := e.(type) {
	case *parser.LiteralExpr:
		return n.Value, nil

	case *parser.VarExpr:
		return ev.lookup(n.Ref, sc)

	case *parser.AssignExpr:
		v, err := ev.evalExpr(n.Value, sc)
		if err != nil {
			return nil, err
		}
		if err := ev.assign(n.Ref, v, sc); err != nil {
			return nil, err
		}
		return v, nil

	case *parser.LogicalExpr:
		left, err := ev.evalExpr(n.Left, sc)
		if err != nil {
			return nil, err
		}
		truthy := value.Truthy(left)
		if n.Op == parser.OpAnd {
			if !truthy {
				return left, nil
			}
		} else if truthy {
			return left, nil
		}
		return ev.evalExpr(n.Right, sc)

	case *parser.UnaryExpr:
		return ev.evalUnary(n, sc)

	case *parser.BinaryExpr:
		return ev.evalBinary(n, sc)

	case *parser.CallExpr:
		return ev.evalCall(n, sc)
	}
	return value.Nil{}, nil
}

// lookup fetches the value bound to ref, global or resolved by depth.
func (ev *Evaluator) lookup(ref *parser.VariableRef, sc *scope.Scope) (value.Value, error) {
	if ref.Depth < 0 {
		if v, ok := sc.GetGlobal(ref.Name); ok {
			return v, nil
		}
		return nil, loxerr.New(loxerr.Runtime, loxerr.KindUndefinedVariable, ref.Loc,
			"undefined variable %q", ref.Name)
	}
	if v, ok := sc.GetAt(ref.Depth, ref.Name); ok {
		return v, nil
	}
	return nil, loxerr.New(loxerr.Runtime, loxerr.KindUndefinedVariable, ref.Loc,
		"undefined variable %q", ref.Name)
}

// assign stores v under ref, global or resolved by depth.
func (ev *Evaluator) assign(ref *parser.VariableRef, v value.Value, sc *scope.Scope) error {
	if ref.Depth < 0 {
		if sc.AssignGlobal(ref.Name, v) {
			return nil
		}
		return loxerr.New(loxerr.Runtime, loxerr.KindUndefinedVariable, ref.Loc,
			"undefined variable %q", ref.Name)
	}
	if _, ok := sc.GetAt(ref.Depth, ref.Name); !ok {
		return loxerr.New(loxerr.Runtime, loxerr.KindUndefinedVariable, ref.Loc,
			"undefined variable %q", ref.Name)
	}
	sc.AssignAt(ref.Depth, ref.Name, v)
	return nil
}

func (ev *Evaluator) evalUnary(n *parser.UnaryExpr, sc *scope.Scope) (value.Value, error) {
	v, err := ev.evalExpr(n.Right, sc)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case parser.OpNot:
		// Follows the truthiness rule; does not reproduce the source
		// language's bug where both arms of `not` returned true.
		return value.Boolean(!value.Truthy(v)), nil
	case parser.OpNeg:
		num, ok := v.(value.Number)
		if !ok {
			return nil, loxerr.New(loxerr.Runtime, loxerr.KindTypeError, n.Loc,
				"operand of '-' must be a number, got %s", v.Type())
		}
		return -num, nil
	}
	return nil, nil
}

func (ev *Evaluator) evalBinary(n *parser.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	left, err := ev.evalExpr(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(n.Right, sc)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case parser.OpEq:
		return value.Boolean(value.Equal(left, right)), nil
	case parser.OpNe:
		return value.Boolean(!value.Equal(left, right)), nil
	}

	if n.Op == parser.OpAdd {
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
	}

	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, loxerr.New(loxerr.Runtime, loxerr.KindTypeError, n.Loc,
			"operands of %s must both be numbers%s, got %s and %s",
			binaryOpName(n.Op), addHint(n.Op), left.Type(), right.Type())
	}

	switch n.Op {
	case parser.OpGt:
		return value.Boolean(ln > rn), nil
	case parser.OpGe:
		return value.Boolean(ln >= rn), nil
	case parser.OpLt:
		return value.Boolean(ln < rn), nil
	case parser.OpLe:
		return value.Boolean(ln <= rn), nil
	case parser.OpAdd:
		return ln + rn, nil
	case parser.OpSub:
		return ln - rn, nil
	case parser.OpMul:
		return ln * rn, nil
	case parser.OpDiv:
		return ln / rn, nil
	}
	return nil, nil
}

func binaryOpName(op parser.BinaryOp) string {
	switch op {
	case parser.OpGt:
		return "'>'"
	case parser.OpGe:
		return "'>='"
	case parser.OpLt:
		return "'<'"
	case parser.OpLe:
		return "'<='"
	case parser.OpAdd:
		return "'+'"
	case parser.OpSub:
		return "'-'"
	case parser.OpMul:
		return "'*'"
	case parser.OpDiv:
		return "'/'"
	default:
		return "operator"
	}
}

func addHint(op parser.BinaryOp) string {
	if op == parser.OpAdd {
		return " (or both strings)"
	}
	return ""
}

func (ev *Evaluator) evalCall(n *parser.CallExpr, sc *scope.Scope) (value.Value, error) {
	calleeVal, err := ev.evalExpr(n.Callee, sc)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(callable)
	if !ok {
		return nil, loxerr.New(loxerr.Runtime, loxerr.KindNotCallable, n.Loc,
			"value of type %s is not callable", calleeVal.Type())
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := ev.evalExpr(a, sc)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if fn.Arity() != len(args) {
		return nil, loxerr.New(loxerr.Runtime, loxerr.KindArityMismatch, n.Loc,
			"expected %d argument(s) but got %d", fn.Arity(), len(args))
	}

	return fn.call(ev, args)
}
