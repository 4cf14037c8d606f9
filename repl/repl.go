/*
File    : golox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive Read-Eval-Print Loop for golox:
a readline + fatih/color shell (banner, colored error/result output, panic
recovery around each line) that drives the lexer/parser/resolver/eval
pipeline one line at a time, persisting one global scope.Scope across
lines for the lifetime of the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/history"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/scope"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session: a persistent global scope plus the
// cosmetic banner/version/prompt strings shown at startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string

	// History, if non-nil, persists every evaluated line. Set via
	// `golox repl --history <path>`.
	History *history.Store

	global *scope.Scope
	eval   *eval.Evaluator
}

// New creates a Repl holding the given banner, version, author, line and
// prompt strings. It creates no scope or evaluator: Start sets up the
// global scope (pre-populated with the natives clock and str) and the
// evaluator when the session begins.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		Prompt:  prompt,
	}
}

// PrintBanner writes the startup banner and usage hints to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type your code and press enter")
	cyanColor.Fprintln(writer, "Type /exit to quit, /scope to inspect bindings")
	cyanColor.Fprintln(writer, "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits or EOF is
// reached on stdin. One global scope persists across every accepted line.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "repl error: %v\n", err)
		return
	}
	defer rl.Close()

	r.global = eval.NewGlobalScope()
	r.eval = eval.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Bye.\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case "/exit":
			writer.Write([]byte("Bye.\n"))
			return
		case "/scope":
			cyanColor.Fprint(writer, r.global.String())
			continue
		}

		rl.SaveHistory(line)
		result := r.evalLine(writer, line)
		if r.History != nil {
			if err := r.History.Record(line, result); err != nil {
				redColor.Fprintf(writer, "history error: %v\n", err)
			}
		}
	}
}

// evalLine parses, resolves, and evaluates one line of source, printing
// any resulting error in red and returning a short textual summary for
// history persistence. Unlike file execution, the REPL never exits on
// error: it reports and returns to the prompt.
func (r *Repl) evalLine(writer io.Writer, line string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[panic] %v\n", rec)
			result = "<panic>"
		}
	}()

	prog, err := parser.New(line).Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", renderError(err))
		return "<error>"
	}

	if err := resolver.Resolve(prog); err != nil {
		redColor.Fprintf(writer, "%s\n", renderError(err))
		return "<error>"
	}

	if err := r.eval.Run(prog, r.global); err != nil {
		redColor.Fprintf(writer, "%s\n", renderError(err))
		return "<error>"
	}
	return "ok"
}

func renderError(err error) string {
	if le, ok := err.(*loxerr.Error); ok {
		return le.Error()
	}
	return err.Error()
}
