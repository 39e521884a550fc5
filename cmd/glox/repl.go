package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ltungv/lox/glox/internal/lox"
	"github.com/peterh/liner"
)

// Run the interpreter in REPL mode. The same interpreter is used for every
// input so global definitions accumulate over the session.
func runPrompt(cfg Config, opts options) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	interpreter := lox.NewInterpreter(os.Stdout, reporter, cfg.Echo)
	for {
		script, ok := readInput(ln, cfg.Prompt, cfg.Continuation)
		if !ok {
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(script)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(script, "\n", " "))
		run(script, interpreter, reporter, opts)
		reporter.Reset()
	}
}

// readInput keeps prompting with the continuation prompt while the input so
// far is an unfinished program.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		// io.EOF on Ctrl-D, liner.ErrPromptAborted on Ctrl-C.
		line, err := ln.Prompt(p)
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		script := b.String()
		if !lox.IsIncomplete(script) {
			return script, true
		}
	}
}
