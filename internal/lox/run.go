package lox

import "errors"

// Run scans, parses, resolves then interprets the given source. Each stage
// runs only if the ones before it reported no error. The interpreter keeps
// its global state between runs.
func Run(script string, interpreter *Interpreter, reporter Reporter) {
	statements := Parse(script, reporter)
	if reporter.HadError() {
		return
	}
	resolver := NewResolver(interpreter, reporter)
	resolver.Resolve(statements)
	if reporter.HadError() {
		return
	}
	interpreter.Interpret(statements)
}

// Parse scans and parses the source, returning whatever statements could be
// built. Errors go to the reporter.
func Parse(script string, reporter Reporter) []Stmt {
	scanner := NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	parser := NewParser(tokens, reporter)
	return parser.Parse()
}

// IsIncomplete reports whether the source is a valid program prefix that
// needs more input, e.g. an unclosed block, string or comment.
func IsIncomplete(script string) bool {
	collector := &collectingReporter{}
	Parse(script, collector)
	for _, err := range collector.errs {
		var parseErr *ParseError
		if errors.As(err, &parseErr) && parseErr.token.Typ == EOF {
			return true
		}
		var scanErr *ScanError
		if errors.As(err, &scanErr) && scanErr.unterminated() {
			return true
		}
	}
	return false
}

// collectingReporter keeps reported errors in memory instead of printing
// them.
type collectingReporter struct {
	errs []error
}

func (r *collectingReporter) Report(err error) {
	r.errs = append(r.errs, err)
}

func (r *collectingReporter) HadError() bool {
	for _, err := range r.errs {
		var runtimeErr *RuntimeError
		if !errors.As(err, &runtimeErr) {
			return true
		}
	}
	return false
}

func (r *collectingReporter) HadRuntimeError() bool {
	for _, err := range r.errs {
		var runtimeErr *RuntimeError
		if errors.As(err, &runtimeErr) {
			return true
		}
	}
	return false
}

func (r *collectingReporter) Reset() {
	r.errs = nil
}
