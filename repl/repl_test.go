/*
File    : golox/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/eval"
	"github.com/stretchr/testify/assert"
)

func newTestRepl(out *bytes.Buffer) *Repl {
	r := New("golox", "0.1.0", "test", "----", "> ")
	r.global = eval.NewGlobalScope()
	r.eval = eval.New(out)
	return r
}

func TestRepl_EvalLinePersistsGlobalScopeAcrossLines(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)

	assert.Equal(t, "ok", r.evalLine(&out, "let x = 1;"))
	assert.Equal(t, "ok", r.evalLine(&out, "print x;"))
	assert.Equal(t, "1\n", out.String())
}

func TestRepl_EvalLineReportsSyntaxErrorAndContinues(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)

	assert.Equal(t, "<error>", r.evalLine(&out, "let ="))
	assert.Contains(t, out.String(), "syntax error")

	out.Reset()
	assert.Equal(t, "ok", r.evalLine(&out, "print 1;"))
	assert.Equal(t, "1\n", out.String())
}

func TestRepl_EvalLineReportsRuntimeErrorAndContinues(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)

	assert.Equal(t, "<error>", r.evalLine(&out, "print missing;"))
	assert.Contains(t, out.String(), "runtime error")
}

func TestRepl_PrintBannerWritesPromptHints(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)
	r.PrintBanner(&out)
	assert.Contains(t, out.String(), "/exit")
	assert.Contains(t, out.String(), "/scope")
}
