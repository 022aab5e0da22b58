// Package repl implements Steel's interactive shell, generalized from
// the teacher's line-terminated loop to Steel's `;`-terminated grammar:
// input is accumulated across lines until brace/paren nesting closes
// and a trailing `;` is seen, then parsed and evaluated against a
// Scope that persists across statements.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/evaluator"
	"github.com/amoghasbhardwaj/steel/lexer"
	"github.com/amoghasbhardwaj/steel/parser"
)

const (
	prompt        = "steel> "
	continuePrompt = "   ...> "
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	valueColor  = color.New(color.FgGreen)
	noticeColor = color.New(color.FgYellow)
)

// Start runs the REPL loop, reading from in and writing prompts,
// results, and diagnostics to out, until `.exit` or EOF.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	scope := ast.NewScope(nil)
	ev := evaluator.New(out, nil)
	debug := false

	var buf strings.Builder
	braceDepth, parenDepth := 0, 0

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := scanner.Text()

		if buf.Len() == 0 {
			switch strings.TrimSpace(line) {
			case ".exit":
				return
			case ".clear":
				scope = ast.NewScope(nil)
				noticeColor.Fprintln(out, "scope cleared")
				fmt.Fprint(out, prompt)
				continue
			case ".help":
				printHelp(out)
				fmt.Fprint(out, prompt)
				continue
			case ".debug":
				debug = !debug
				noticeColor.Fprintf(out, "debug mode: %v\n", debug)
				fmt.Fprint(out, prompt)
				continue
			}
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
		parenDepth += strings.Count(line, "(") - strings.Count(line, ")")

		if braceDepth > 0 || parenDepth > 0 || !strings.HasSuffix(strings.TrimSpace(line), ";") {
			fmt.Fprint(out, continuePrompt)
			continue
		}

		src := buf.String()
		buf.Reset()
		braceDepth, parenDepth = 0, 0

		p := parser.New(lexer.New(src), scope)
		program, err := p.ParseProgram()
		if err != nil {
			errorColor.Fprintf(out, "%v\n", err)
			fmt.Fprint(out, prompt)
			continue
		}
		if debug {
			noticeColor.Fprintf(out, "parsed %d statement(s)\n", len(program.Statements))
		}

		result, err := ev.Eval(program, scope)
		if err != nil {
			errorColor.Fprintf(out, "%v\n", err)
			fmt.Fprint(out, prompt)
			continue
		}
		if _, isNoOp := result.(*ast.NoOp); !isNoOp {
			valueColor.Fprintf(out, "%s\n", evaluator.FormatValue(result))
		}
		fmt.Fprint(out, prompt)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Steel REPL")
	fmt.Fprintln(out, "  .exit   quit")
	fmt.Fprintln(out, "  .clear  reset the current scope")
	fmt.Fprintln(out, "  .help   show this message")
	fmt.Fprintln(out, "  .debug  toggle parse diagnostics")
}
