package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir, err := filepath.Abs(os.Args[1])
	if err != nil {
		exitOnError(err)
	}

	// we do it the scripting way, instead of having types support from Go stdlib
	exprTypes := []string{
		"Assign   : Name *Token, Val Expr",
		"Binary   : Op *Token, Lhs Expr, Rhs Expr",
		"Call     : Callee Expr, Paren *Token, Args []Expr",
		"Get      : Obj Expr, Name *Token",
		"Group    : Expr Expr",
		"Literal  : Val interface{}",
		"Logical  : Op *Token, Lhs Expr, Rhs Expr",
		"Set      : Obj Expr, Name *Token, Val Expr",
		"Super    : Keyword *Token, Method *Token",
		"This     : Keyword *Token",
		"Unary    : Op *Token, Expr Expr",
		"Var      : Name *Token",
	}
	stmtTypes := []string{
		"Block    : Stmts []Stmt",
		"Class    : Name *Token, Superclass *VarExpr, Methods []*FunctionStmt",
		"Expr     : Expr Expr",
		"Function : Name *Token, Params []*Token, Body []Stmt",
		"If       : Cond Expr, ThenBranch Stmt, ElseBranch Stmt",
		"Print    : Expr Expr",
		"Return   : Keyword *Token, Val Expr",
		"Var      : Name *Token, Init Expr",
		"While    : Cond Expr, Body Stmt",
	}

	exitOnError(defineAst(
		outputDir, "Expr", "exprNode",
		"Expr is a node in the syntax tree that evaluates to a value. The set of\n"+
			"// expressions is closed, consumers switch over the concrete types.",
		exprTypes,
	))
	exitOnError(defineAst(
		outputDir, "Stmt", "stmtNode",
		"Stmt is a node in the syntax tree that is executed for its effect. The\n"+
			"// set of statements is closed, consumers switch over the concrete types.",
		stmtTypes,
	))
}

func defineAst(outputDir, baseName, marker, doc string, types []string) error {
	var buf bytes.Buffer
	packageName := filepath.Base(outputDir)
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Sealed interface, only types in this package can implement the marker.
	fmt.Fprintf(&buf, "// %s\n", doc)
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\t%s()\n", marker)
	fmt.Fprintf(&buf, "}\n")

	for _, t := range types {
		parts := strings.SplitN(t, ":", 2)
		typeName := strings.TrimSpace(parts[0])
		fields := strings.TrimSpace(parts[1])
		defineType(&buf, baseName, marker, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}

	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	return os.WriteFile(fpath, src, 0644)
}

func defineType(
	writer io.Writer,
	baseName string,
	marker string,
	typeName string,
	fieldList string,
) {
	var names, types []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.Fields(strings.TrimSpace(f))
		names = append(names, field[0])
		types = append(types, field[1])
	}
	structName := typeName + baseName

	// Struct definition
	fmt.Fprintf(writer, "\ntype %s struct {\n", structName)
	for i := range names {
		fmt.Fprintf(writer, "\t%s %s\n", names[i], types[i])
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	var params, args []string
	for i := range names {
		param := lowerFirst(names[i])
		params = append(params, fmt.Sprintf("%s %s", param, types[i]))
		args = append(args, param)
	}
	fmt.Fprintf(
		writer,
		"func New%s(%s) *%s {\n\treturn &%s{%s}\n}\n\n",
		structName,
		strings.Join(params, ", "),
		structName,
		structName,
		strings.Join(args, ", "),
	)

	// Marker method
	fmt.Fprintf(writer, "func (*%s) %s() {}\n", structName, marker)
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
