/*
File    : golox/eval/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/scope"
	"github.com/akashmaji946/golox/value"
)

// callable is what the evaluator needs beyond value.Function to invoke a
// function value: its arity and a way to run it against a fresh argument
// list. Both concrete types below live here (not in package value) to
// avoid value importing scope/parser; see value/function.go.
type callable interface {
	value.Function
	Arity() int
	call(ev *Evaluator, args []value.Value) (value.Value, error)
}

// Native wraps a Go function as a golox callable: a fixed arity plus the
// closure that implements it.
type Native struct {
	name  string
	arity int
	fn    func(args []value.Value) (value.Value, error)
}

func (*Native) Type() value.Type  { return value.TypeFunction }
func (n *Native) Display() string { return "<native fn>" }
func (n *Native) Arity() int      { return n.arity }

// SameAs compares natives by the identity of the wrapping struct, the
// closest Go equivalent of pointer identity for the native function.
func (n *Native) SameAs(other value.Function) bool {
	o, ok := other.(*Native)
	return ok && o == n
}

func (n *Native) call(_ *Evaluator, args []value.Value) (value.Value, error) {
	return n.fn(args)
}

// UserFunction is a closure: a reference to the FuncDeclStmt that
// declared it plus the scope that was active at that moment.
type UserFunction struct {
	decl    *parser.FuncDeclStmt
	closure *scope.Scope
}

func (*UserFunction) Type() value.Type  { return value.TypeFunction }
func (f *UserFunction) Display() string { return "<user fn>" }
func (f *UserFunction) Arity() int      { return len(f.decl.Params) }

// SameAs compares user-defined functions by identity: same declaration
// node and same captured closure.
func (f *UserFunction) SameAs(other value.Function) bool {
	o, ok := other.(*UserFunction)
	return ok && o.decl == f.decl && o.closure == f.closure
}

func (f *UserFunction) call(ev *Evaluator, args []value.Value) (value.Value, error) {
	callScope := scope.New(f.closure)
	for i, p := range f.decl.Params {
		callScope.Define(p, args[i])
	}
	result, err := ev.execBlock(f.decl.Body, callScope)
	if err != nil {
		return nil, err
	}
	if result.isReturn {
		return result.value, nil
	}
	return value.Nil{}, nil
}
