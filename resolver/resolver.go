/*
File    : golox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements a static lexical-scope pass that runs
// between parsing and evaluation: a stack of scope maps mirroring the
// runtime scope chain's shape, walked once to bind every variable
// reference to a lexical depth before the evaluator ever runs. It uses
// the same panic/recover convention as package parser to stop at the
// first resolution error rather than accumulating a slice of them.
//
// Resolve walks a *parser.Program exactly once and mutates every
// parser.VariableRef.Depth it visits in place: -1 stays global, 0 means
// "found in the nearest enclosing scope", 1 the next one out, and so on.
package resolver

import (
	"github.com/akashmaji946/golox/cursor"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/parser"
)

// funcKind tracks whether resolution is currently inside a function body,
// so a bare `return` outside one can be rejected.
type funcKind int

const (
	funcNone funcKind = iota
	funcFunction
)

// Resolver holds the scope stack used while walking the AST. Each map
// entry's bool records whether the binding has finished its initializer
// yet (false = declared but not yet defined), the same two-phase
// declare/define split original_source/resolver.rs uses to catch
// self-referential initializers like `let a = a;`.
type Resolver struct {
	scopes  []map[string]bool
	current funcKind
}

// New creates a Resolver ready to resolve one Program.
func New() *Resolver {
	return &Resolver{}
}

// resolveError is the panic payload used to unwind to Resolve's recover,
// mirroring package parser's parseError.
type resolveError struct{ err *loxerr.Error }

// Resolve annotates every VariableRef in prog with its lexical depth,
// returning the first resolution error encountered (or nil on success).
func Resolve(prog *parser.Program) (err error) {
	r := New()
	defer func() {
		if rec := recover(); rec != nil {
			if re, ok := rec.(resolveError); ok {
				err = re.err
				return
			}
			panic(rec)
		}
	}()
	for _, s := range prog.Stmts {
		r.resolveStmt(s)
	}
	return nil
}

func (r *Resolver) raise(kind loxerr.Kind, loc cursor.Loc, format string, args ...any) {
	panic(resolveError{loxerr.New(loxerr.Resolve, kind, loc, format, args...)})
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare registers name in the innermost scope as "declared, not yet
// defined". A duplicate within the same scope is a resolution error; this
// check is deliberately scope-local, since shadowing an outer binding is
// always legal.
func (r *Resolver) declare(name string, loc cursor.Loc) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top[name]; ok {
		r.raise(loxerr.KindDuplicateInScope, loc, "variable %q already declared in this scope", name)
	}
	top[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal searches the scope stack from innermost outward and sets
// ref.Depth to how many scopes out the binding sits (0 = innermost).
// Leaving Depth at -1 when nothing matches means "resolve as global" at
// eval time, matching parser.NewVariableRef's default.
func (r *Resolver) resolveLocal(ref *parser.VariableRef) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][ref.Name]; ok {
			ref.Depth = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmt(s parser.Stmt) {
	switch n := s.(type) {
	case *parser.BlockStmt:
		r.beginScope()
		for _, inner := range n.Stmts {
			r.resolveStmt(inner)
		}
		r.endScope()
	case *parser.ExprStmt:
		r.resolveExpr(n.Expr)
	case *parser.PrintStmt:
		r.resolveExpr(n.Expr)
	case *parser.VarDeclStmt:
		r.declare(n.Name, n.Loc)
		if n.Init != nil {
			r.resolveExpr(n.Init)
		}
		r.define(n.Name)
	case *parser.IfStmt:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}
	case *parser.WhileStmt:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)
	case *parser.FuncDeclStmt:
		r.define(n.Name)
		r.resolveFunction(n)
	case *parser.ReturnStmt:
		if r.current == funcNone {
			r.raise(loxerr.KindReturnOutsideFunction, n.Loc, "cannot return from top-level code")
		}
		if n.Value != nil {
			r.resolveExpr(n.Value)
		}
	}
}

func (r *Resolver) resolveFunction(fn *parser.FuncDeclStmt) {
	enclosing := r.current
	r.current = funcFunction
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p, fn.Loc)
		r.define(p)
	}
	for _, s := range fn.Body.Stmts {
		r.resolveStmt(s)
	}
	r.endScope()
	r.current = enclosing
}

func (r *Resolver) resolveExpr(e parser.Expr) {
	switch n := e.(type) {
	case *parser.AssignExpr:
		r.resolveExpr(n.Value)
		r.resolveLocal(n.Ref)
	case *parser.CallExpr:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}
	case *parser.BinaryExpr:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *parser.LogicalExpr:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *parser.UnaryExpr:
		r.resolveExpr(n.Right)
	case *parser.LiteralExpr:
		// no identifiers to resolve
	case *parser.VarExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][n.Ref.Name]; ok && !defined {
				r.raise(loxerr.KindSelfReferentialInitializer, n.Ref.Loc,
					"cannot read variable %q in its own initializer", n.Ref.Name)
			}
		}
		r.resolveLocal(n.Ref)
	}
}
