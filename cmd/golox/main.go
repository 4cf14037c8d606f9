/*
File    : golox/cmd/golox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

cmd/golox is the CLI entry point: one root command with `run`/`repl`/
`server` subcommands, while keeping `golox script.lox` running a file and
bare `golox` starting the REPL, by making `repl` the root command's
default when no subcommand is given.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/history"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/resolver"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
	author  = "Akash Maji"
	banner  = "golox"
	line    = "----------------------------------------"
)

var errColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds the cobra command tree and executes it, returning the
// process exit code (0/64/65/70/74) rather than letting cobra's own
// os.Exit(1) on error swallow the distinction.
func run(args []string) int {
	exitCode := 0

	root := &cobra.Command{
		Use:     "golox [script]",
		Short:   "golox is a tree-walking interpreter for a small Lox-like language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			if len(posArgs) == 1 {
				exitCode = runFile(posArgs[0])
				return nil
			}
			exitCode = runRepl("")
			return nil
		},
	}

	var historyPath string

	var printAST bool
	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "execute a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			exitCode = runFileWithOpts(posArgs[0], printAST)
			return nil
		},
	}
	runCmd.Flags().BoolVar(&printAST, "print-ast", false, "print each top-level expression statement in parenthesized form before executing")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "start an interactive session",
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			exitCode = runRepl(historyPath)
			return nil
		},
	}
	replCmd.Flags().StringVar(&historyPath, "history", "", "persist session history to a SQLite file at this path")

	var serverPort int
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "serve one golox session per TCP connection",
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			exitCode = runServer(serverPort)
			return nil
		},
	}
	serverCmd.Flags().IntVar(&serverPort, "port", 7070, "TCP port to listen on")

	root.AddCommand(runCmd, replCmd, serverCmd)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "usage error: %v\n", err)
		return 64
	}
	return exitCode
}

// runFile executes one script file start to finish: lex → parse →
// resolve → evaluate, mapping any failure to its process exit code.
func runFile(path string) int {
	return runFileWithOpts(path, false)
}

// runFileWithOpts is runFile plus the `run --print-ast` debugging hook: when
// printAST is set, every top-level expression statement's parenthesized form
// (parser.Print) is written to stdout before the program executes.
func runFileWithOpts(path string, printAST bool) int {
	src, err := os.ReadFile(path)
	if err != nil {
		errColor.Fprintf(os.Stderr, "cannot open %s: %v\n", path, err)
		return 74
	}

	prog, err := parser.New(string(src)).Parse()
	if err != nil {
		return reportAndExitCode(err)
	}
	if err := resolver.Resolve(prog); err != nil {
		return reportAndExitCode(err)
	}

	if printAST {
		for _, s := range prog.Stmts {
			if es, ok := s.(*parser.ExprStmt); ok {
				fmt.Println(parser.Print(es.Expr))
			}
		}
	}

	ev := eval.New(os.Stdout)
	if err := ev.Run(prog, eval.NewGlobalScope()); err != nil {
		return reportAndExitCode(err)
	}
	return 0
}

func reportAndExitCode(err error) int {
	if le, ok := err.(*loxerr.Error); ok {
		errColor.Fprintf(os.Stderr, "%s\n", le.Error())
		return le.Phase.ExitCode()
	}
	errColor.Fprintf(os.Stderr, "%v\n", err)
	return 70
}

func runRepl(historyPath string) int {
	r := repl.New(banner, version, author, line, "> ")
	if historyPath != "" {
		store, err := history.Open(historyPath)
		if err != nil {
			errColor.Fprintf(os.Stderr, "cannot open history file %s: %v\n", historyPath, err)
			return 74
		}
		defer store.Close()
		r.History = store
	}
	r.Start(os.Stdout)
	return 0
}

func runServer(port int) int {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		errColor.Fprintf(os.Stderr, "cannot listen on port %d: %v\n", port, err)
		return 74
	}
	defer ln.Close()
	fmt.Printf("golox server listening on :%d\n", port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			continue
		}
		go func() {
			defer conn.Close()
			repl.ServeConn(conn, version)
		}()
	}
}
