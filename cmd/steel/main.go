// Command steel is the CLI entry point: `steel run <file>` executes a
// source file (spec §6's single positional-argument contract), `steel
// repl` starts the interactive shell the teacher's main.go also offered.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amoghasbhardwaj/steel/ast"
	"github.com/amoghasbhardwaj/steel/evaluator"
	"github.com/amoghasbhardwaj/steel/internal/iowriter"
	"github.com/amoghasbhardwaj/steel/internal/library"
	"github.com/amoghasbhardwaj/steel/lexer"
	"github.com/amoghasbhardwaj/steel/parser"
	"github.com/amoghasbhardwaj/steel/repl"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "steel",
		Short: "Steel is a tree-walking interpreter for a small statically-typed scripting language",
	}
	root.AddCommand(runCmd())
	root.AddCommand(replCmd())
	return root
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Steel source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the Steel interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	w := iowriter.NewBuffered(os.Stdout)
	defer w.Flush()

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	loader := library.NewFSLoader(os.DirFS(dir))

	scope := ast.NewScope(nil)
	p := parser.New(lexer.New(string(src)), scope)
	program, err := p.ParseProgram()
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	ev := evaluator.New(w, loader)
	if _, err := ev.Eval(program, scope); err != nil {
		w.Flush()
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
