/*
File    : golox/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a lexer.Token stream into an AST: a Program is an
// ordered slice of Stmt, expressions nest via the Expr interface, and
// every variable reference carries a VariableRef that the resolver
// (package resolver) later annotates with a lexical Depth.
//
// The AST is intentionally a flat set of concrete struct types behind two
// marker interfaces (Expr, Stmt) rather than a visitor-dispatch node
// hierarchy: resolver and eval both need to mutate/read specific fields
// directly (VariableRef.Depth in particular), which a pure visitor would
// only complicate.
package parser

import (
	"github.com/akashmaji946/golox/cursor"
	"github.com/akashmaji946/golox/value"
)

// Program is the root of a parsed source file or REPL line.
type Program struct {
	Stmts []Stmt
}

// VariableRef is a variable-reference record: a name plus a signed
// depth. Depth starts at -1 ("unresolved; look up in the global scope")
// and is overwritten in place by the resolver pass.
type VariableRef struct {
	Name  string
	Depth int
	Loc   cursor.Loc
}

func NewVariableRef(name string, loc cursor.Loc) *VariableRef {
	return &VariableRef{Name: name, Depth: -1, Loc: loc}
}

// BinaryOp enumerates the non-short-circuit binary operators, excluding
// And/Or (modeled separately by LogicalExpr because of their
// short-circuit evaluation rule).
type BinaryOp int

const (
	OpEq BinaryOp = iota
	OpNe
	OpGt
	OpGe
	OpLt
	OpLe
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// LogicalOp enumerates the two short-circuiting operators.
type LogicalOp int

const (
	OpAnd LogicalOp = iota
	OpOr
)

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
)

// Expr is implemented by every expression AST node.
type Expr interface{ exprNode() }

// Stmt is implemented by every statement AST node.
type Stmt interface{ stmtNode() }

// AssignExpr assigns the evaluated Value to the variable named by Ref.
type AssignExpr struct {
	Ref   *VariableRef
	Value Expr
}

// CallExpr invokes Callee with the evaluated Args, in left-to-right order.
// Loc is the call site (the '(' token), used to locate ArityMismatch and
// NotCallable errors.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Loc    cursor.Loc
}

// BinaryExpr is one of the ten non-short-circuit binary operators.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Loc   cursor.Loc // operator token location, for TypeError messages
}

// LogicalExpr is `and`/`or`; Right is only evaluated when short-circuiting
// does not apply.
type LogicalExpr struct {
	Op    LogicalOp
	Left  Expr
	Right Expr
}

// UnaryExpr is `!` or prefix `-`.
type UnaryExpr struct {
	Op    UnaryOp
	Right Expr
	Loc   cursor.Loc
}

// LiteralExpr wraps a constant Value produced directly by the parser
// (numbers, strings, true/false, nil).
type LiteralExpr struct {
	Value value.Value
}

// VarExpr reads the variable Ref resolves to.
type VarExpr struct {
	Ref *VariableRef
}

func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*LiteralExpr) exprNode()  {}
func (*VarExpr) exprNode()      {}

// BlockStmt executes its Stmts in a fresh child scope.
type BlockStmt struct {
	Stmts []Stmt
}

// ExprStmt evaluates Expr for effect and discards the result.
type ExprStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its display form plus a newline.
type PrintStmt struct {
	Expr Expr
}

// VarDeclStmt declares Name in the current scope, bound to Init's value
// (or Nil if Init is nil).
type VarDeclStmt struct {
	Name string
	Init Expr
	Loc  cursor.Loc
}

// IfStmt executes Then when Cond is truthy, else Else (which may be nil).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt repeats Body while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FuncDeclStmt declares a named function. Params carries positional
// parameter names, Body is the function's statement block.
type FuncDeclStmt struct {
	Name   string
	Params []string
	Body   *BlockStmt
	Loc    cursor.Loc
}

// ReturnStmt carries an optional expression (nil means "return nil"). Loc
// is the `return` keyword's location, used for ReturnOutsideFunction.
type ReturnStmt struct {
	Value Expr
	Loc   cursor.Loc
}

func (*BlockStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}
func (*PrintStmt) stmtNode()    {}
func (*VarDeclStmt) stmtNode()  {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*FuncDeclStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
