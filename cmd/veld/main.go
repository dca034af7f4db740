package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veld-lang/veld-lang/internal/arena"
	"github.com/veld-lang/veld-lang/internal/ast"
	"github.com/veld-lang/veld-lang/internal/diag"
	"github.com/veld-lang/veld-lang/internal/parser"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: veld <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  parse <file>    Parse a Veld source file and dump the syntax tree\n")
		fmt.Fprintf(os.Stderr, "  check <file>    Parse a Veld source file and report problems\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "parse":
		runParse(args)
	case "check":
		runCheck(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runParse(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: veld parse <file>\n")
		os.Exit(1)
	}
	filename := args[0]

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "veld: %v\n", err)
		os.Exit(1)
	}

	a := arena.New()
	expr, perr := parser.ParseExpr(a, src)
	if perr != nil {
		report(filename, string(src), perr)
		os.Exit(1)
	}

	fmt.Print(ast.Dump(expr))
}

func runCheck(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: veld check <file>\n")
		os.Exit(1)
	}
	filename := args[0]

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "veld: %v\n", err)
		os.Exit(1)
	}

	a := arena.New()
	defs, _, perr := parser.ParseDefs(a, src)
	if perr != nil {
		report(filename, string(src), perr)
		os.Exit(1)
	}

	fmt.Printf("%s: ok (%d definitions)\n", filename, len(defs))
}

func report(filename, src string, err error) {
	d := diag.FromParseError(filename, err)
	f := diag.NewFormatter(os.Stderr)
	f.Format(d, src)
}
