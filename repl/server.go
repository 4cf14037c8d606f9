/*
File    : golox/repl/server.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

ServeConn is the `golox server` mode's per-connection loop: it accepts one
TCP connection and runs one golox session on it. A raw socket has no
terminal, so this loop uses bufio.Scanner line splitting instead of
chzyer/readline (which needs a real tty) while sharing evalLine with the
interactive REPL, so the two modes' language behavior never drifts apart.
*/
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akashmaji946/golox/eval"
)

// ServeConn runs one golox session to completion against rw (typically a
// net.Conn), writing a small banner, then evaluating one line per read
// until EOF. Each connection gets its own global scope.
func ServeConn(rw io.ReadWriter, version string) {
	fmt.Fprintf(rw, "golox %s\ntype /exit to disconnect\n", version)

	r := New("golox", version, "", "", "golox> ")
	r.global = eval.NewGlobalScope()
	r.eval = eval.New(rw)

	scanner := bufio.NewScanner(rw)
	for {
		fmt.Fprint(rw, r.Prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "/exit" {
			fmt.Fprint(rw, "Bye.\n")
			return
		}
		if line == "/scope" {
			fmt.Fprint(rw, r.global.String())
			continue
		}
		r.evalLine(rw, line)
	}
}
