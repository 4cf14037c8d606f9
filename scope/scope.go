/*
File    : golox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the runtime environment chain: a linked list
// of bindings, one per lexically nested block or function call, each
// pointing at its enclosing Scope.
//
// Scope exposes depth-indexed accessors (GetAt/AssignAt) that the
// evaluator uses for already-resolved references (parser.VariableRef.Depth
// >= 0), plus a dynamic global fallback for the resolver's -1 sentinel,
// and a full-chain Lookup for callers with no resolved depth on hand.
package scope

import (
	"fmt"

	"github.com/akashmaji946/golox/value"
)

// Scope is one lexical environment: its own bindings plus a link to the
// enclosing Scope (nil at the global scope).
type Scope struct {
	vars   map[string]value.Value
	parent *Scope
}

// New creates a child scope of parent (nil for the global scope).
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]value.Value), parent: parent}
}

// Define binds name to v in this scope, overwriting any existing binding
// in this scope only (redeclaration is a resolver-time error, not a
// runtime one, so Define never itself rejects a repeat name).
func (s *Scope) Define(name string, v value.Value) {
	s.vars[name] = v
}

// ancestor walks up depth parent links from s.
func (s *Scope) ancestor(depth int) *Scope {
	cur := s
	for i := 0; i < depth; i++ {
		cur = cur.parent
	}
	return cur
}

// GetAt fetches name from the scope depth levels out from s (0 = s
// itself), per the resolver's computed VariableRef.Depth.
func (s *Scope) GetAt(depth int, name string) (value.Value, bool) {
	v, ok := s.ancestor(depth).vars[name]
	return v, ok
}

// AssignAt stores v into name at the scope depth levels out from s.
func (s *Scope) AssignAt(depth int, name string, v value.Value) {
	s.ancestor(depth).vars[name] = v
}

// Global walks to the root of the scope chain. The evaluator uses this
// for VariableRef.Depth == -1 references, which the resolver leaves
// global by construction.
func (s *Scope) Global() *Scope {
	cur := s
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// GetGlobal looks up name directly in the global scope.
func (s *Scope) GetGlobal(name string) (value.Value, bool) {
	v, ok := s.Global().vars[name]
	return v, ok
}

// AssignGlobal stores v under name directly in the global scope. It
// reports whether the name already existed there; assigning to an
// undeclared global is an UndefinedVariable runtime error, which the
// caller (package eval) raises using this return value.
func (s *Scope) AssignGlobal(name string, v value.Value) bool {
	g := s.Global()
	if _, ok := g.vars[name]; !ok {
		return false
	}
	g.vars[name] = v
	return true
}

// Lookup walks the full parent chain from s. It exists for callers with
// no resolved depth on hand; the evaluator always uses GetAt/GetGlobal
// once resolution has run.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// String renders the bindings visible from s, innermost scope first,
// for the REPL's `/scope` diagnostic command.
func (s *Scope) String() string {
	out := ""
	depth := 0
	for cur := s; cur != nil; cur = cur.parent {
		out += fmt.Sprintf("scope[%d]: ", depth)
		for name, v := range cur.vars {
			out += fmt.Sprintf("%s=%s ", name, v.Display())
		}
		out += "\n"
		depth++
	}
	return out
}
