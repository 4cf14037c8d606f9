/*
File    : golox/eval/natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"time"

	"github.com/akashmaji946/golox/scope"
	"github.com/akashmaji946/golox/value"
)

// NewGlobalScope builds the root scope pre-populated with the required
// minimum native (`clock`) plus one supplemented native (`str`). The
// native set is small and fixed, so each entry is defined directly rather
// than built from a registration table.
func NewGlobalScope() *scope.Scope {
	g := scope.New(nil)
	g.Define("clock", &Native{
		name:  "clock",
		arity: 0,
		fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
	g.Define("str", &Native{
		name:  "str",
		arity: 1,
		fn: func(args []value.Value) (value.Value, error) {
			return value.String(args[0].Display()), nil
		},
	})
	return g
}
