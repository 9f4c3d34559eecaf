// Package repl implements the read-eval-print-loop described in spec §6,
// extracted from main so it can be driven by an injected io.Reader/io.Writer
// in tests rather than a real terminal, following the teacher's repl()/
// lispRepl() shape in main.go.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rashmirathi1729/liswat/internal/eval"
)

const prompt = "Lisp>>> "
const quitToken = "quit"

// Run reads lines from in, evaluates each against it, and writes the
// prompt and results to out until the quit token is read or in is
// exhausted. Evaluation errors are printed and do not terminate the loop.
func Run(it *eval.Interpreter, in io.Reader, out io.Writer) {
	stdin := bufio.NewReader(in)
	for {
		fmt.Fprint(out, prompt)
		line, err := stdin.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == quitToken {
			return
		}
		if line != "" {
			result, serr := it.Interpret(line)
			if serr != nil {
				fmt.Fprintln(out, serr.Error())
				log.Println(serr.Error())
			} else {
				fmt.Fprintln(out, result)
			}
		}
		if err != nil {
			if err == io.EOF {
				return
			}
			fmt.Fprintln(out, err)
			return
		}
	}
}
