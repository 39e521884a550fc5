package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ltungv/lox/glox/internal/lox"
)

type options struct {
	printAst bool
}

func main() {
	fs := flag.NewFlagSet("glox", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: glox [flags] [script]")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to a YAML config file (default ~/"+defaultConfigFile+")")
	printAst := fs.Bool("print-ast", false, "print the syntax tree of every input before running it")
	noEcho := fs.Bool("no-echo", false, "do not print the value of expression statements in the REPL")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(64)
	}

	args := fs.Args()
	if len(args) > 1 {
		fs.Usage()
		os.Exit(64)
	}

	cfg, err := loadConfig(*configPath)
	exitOnError(err, 64)
	if *noEcho {
		cfg.Echo = false
	}

	opts := options{printAst: *printAst}
	if len(args) != 1 {
		runPrompt(cfg, opts)
	} else {
		runFile(args[0], opts)
	}
}

func run(script string, interpreter *lox.Interpreter, reporter lox.Reporter, opts options) {
	if opts.printAst {
		printAst(os.Stderr, script)
	}
	lox.Run(script, interpreter, reporter)
}

// printAst writes the syntax tree of the script, one statement per line.
// Syntax errors are left for the real run to report.
func printAst(w io.Writer, script string) {
	var printer lox.AstPrinter
	for _, stmt := range lox.Parse(script, lox.NewSimpleReporter(io.Discard)) {
		fmt.Fprintln(w, printer.PrintStmt(stmt))
	}
}

// Run the given file as script
func runFile(fpath string, opts options) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 66)

	reporter := lox.NewSimpleReporter(os.Stderr)
	interpreter := lox.NewInterpreter(os.Stdout, reporter, false)
	run(string(bytes), interpreter, reporter, opts)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
