/*
File    : golox/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, resolves, and evaluates src against a fresh global
// scope, returning everything `print` wrote.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.New(src).Parse()
	require.NoError(t, err)
	require.NoError(t, resolver.Resolve(prog))

	var buf bytes.Buffer
	ev := New(&buf)
	runErr := ev.Run(prog, NewGlobalScope())
	return buf.String(), runErr
}

func TestEval_ScenarioA_Closure(t *testing.T) {
	out, err := run(t, `
		fn makeCounter() {
			let n = 0;
			fn count() { n = n + 1; return n; }
			return count;
		}
		let c = makeCounter();
		print c(); print c(); print c();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEval_ScenarioB_ForDesugar(t *testing.T) {
	out, err := run(t, `
		let s = 0;
		for (let i = 1; i <= 4; i = i + 1) { s = s + i; }
		print s;
	`)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestEval_ScenarioC_ShortCircuit(t *testing.T) {
	out, err := run(t, `print nil or "a"; print false and 1; print 0 and "b";`)
	require.NoError(t, err)
	assert.Equal(t, "a\nfalse\nb\n", out)
}

func TestEval_ScenarioD_Truthiness(t *testing.T) {
	out, err := run(t, `print !nil; print !false; print !0; print !"";`)
	require.NoError(t, err)
	assert.Equal(t, "true\ntrue\nfalse\nfalse\n", out)
}

func TestEval_ScenarioE_StringConcat(t *testing.T) {
	out, err := run(t, `print "hi, " + "world";`)
	require.NoError(t, err)
	assert.Equal(t, "hi, world\n", out)
}

func TestEval_ScenarioF_Shadowing(t *testing.T) {
	out, err := run(t, `let x = 1; { let x = 2; print x; } print x;`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestEval_DeterminismAcrossRuns(t *testing.T) {
	src := `
		fn fib(n) { if (n < 2) { return n; } return fib(n - 1) + fib(n - 2); }
		print fib(10);
	`
	first, err := run(t, src)
	require.NoError(t, err)
	second, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEval_ClosureIsolation(t *testing.T) {
	out, err := run(t, `
		fn makeCounter() {
			let n = 0;
			fn count() { n = n + 1; return n; }
			return count;
		}
		let a = makeCounter();
		let b = makeCounter();
		print a(); print a(); print b(); print a();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n1\n3\n", out)
}

func TestEval_DivisionByZeroIsNotAnError(t *testing.T) {
	out, err := run(t, `print 1 / 0; print -1 / 0; print 0 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf\n-Inf\nNaN\n", out)
}

func TestEval_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	le := err.(*loxerr.Error)
	assert.Equal(t, loxerr.Runtime, le.Phase)
	assert.Equal(t, loxerr.KindUndefinedVariable, le.Kind)
}

func TestEval_TypeErrorOnMixedAddition(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	require.Error(t, err)
	assert.Equal(t, loxerr.KindTypeError, err.(*loxerr.Error).Kind)
}

func TestEval_NotCallableValue(t *testing.T) {
	_, err := run(t, `let x = 1; x();`)
	require.Error(t, err)
	assert.Equal(t, loxerr.KindNotCallable, err.(*loxerr.Error).Kind)
}

func TestEval_ArityMismatch(t *testing.T) {
	_, err := run(t, `fn f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Equal(t, loxerr.KindArityMismatch, err.(*loxerr.Error).Kind)
}

func TestEval_ClockNativeReturnsANumber(t *testing.T) {
	out, err := run(t, `print str(clock() >= 0);`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEval_ReassigningUndeclaredGlobalIsAnError(t *testing.T) {
	_, err := run(t, `missing = 1;`)
	require.Error(t, err)
	assert.Equal(t, loxerr.KindUndefinedVariable, err.(*loxerr.Error).Kind)
}

func TestEval_FunctionEqualityIsByIdentity(t *testing.T) {
	out, err := run(t, `
		fn f() { return 1; }
		fn g() { return 1; }
		print f == f;
		print f == g;
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestEval_WhileLoopPropagatesReturn(t *testing.T) {
	out, err := run(t, `
		fn firstEven(n) {
			let i = 0;
			while (i < n) {
				if (i == 2) { return i; }
				i = i + 1;
			}
			return -1;
		}
		print firstEven(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}
