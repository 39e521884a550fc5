package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders syntax trees as parenthesized prefix expressions. It is
// used to debug the parser.
type AstPrinter struct{}

// Print renders an expression.
func (printer *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *AssignExpr:
		return printer.parenthesize("=", expr.Name.Lexeme, expr.Val)
	case *BinaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs)
	case *CallExpr:
		parts := []interface{}{expr.Callee}
		for _, arg := range expr.Args {
			parts = append(parts, arg)
		}
		return printer.parenthesize("call", parts...)
	case *GetExpr:
		return printer.parenthesize(".", expr.Obj, expr.Name.Lexeme)
	case *GroupExpr:
		return printer.parenthesize("group", expr.Expr)
	case *LiteralExpr:
		switch v := expr.Val.(type) {
		case nil:
			return "nil"
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			return strconv.Quote(v)
		default:
			return fmt.Sprintf("%v", v)
		}
	case *LogicalExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs)
	case *SetExpr:
		return printer.parenthesize("=", expr.Obj, expr.Name.Lexeme, expr.Val)
	case *SuperExpr:
		return printer.parenthesize("super", expr.Method.Lexeme)
	case *ThisExpr:
		return "this"
	case *UnaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Expr)
	case *VarExpr:
		return expr.Name.Lexeme
	}
	panic(fmt.Sprintf("ast printer: unexpected expression %T", expr))
}

// PrintStmt renders a statement.
func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		return printer.parenthesize("block", stmtParts(stmt.Stmts)...)
	case *ClassStmt:
		parts := []interface{}{stmt.Name.Lexeme}
		if stmt.Superclass != nil {
			parts = append(parts, "<", stmt.Superclass.Name.Lexeme)
		}
		for _, method := range stmt.Methods {
			parts = append(parts, method)
		}
		return printer.parenthesize("class", parts...)
	case *ExprStmt:
		return printer.parenthesize(";", stmt.Expr)
	case *FunctionStmt:
		params := make([]string, 0, len(stmt.Params))
		for _, p := range stmt.Params {
			params = append(params, p.Lexeme)
		}
		parts := []interface{}{
			stmt.Name.Lexeme,
			"(" + strings.Join(params, " ") + ")",
		}
		parts = append(parts, stmtParts(stmt.Body)...)
		return printer.parenthesize("fun", parts...)
	case *IfStmt:
		if stmt.ElseBranch == nil {
			return printer.parenthesize("if", stmt.Cond, stmt.ThenBranch)
		}
		return printer.parenthesize("if-else", stmt.Cond, stmt.ThenBranch, stmt.ElseBranch)
	case *PrintStmt:
		return printer.parenthesize("print", stmt.Expr)
	case *ReturnStmt:
		if stmt.Val == nil {
			return "(return)"
		}
		return printer.parenthesize("return", stmt.Val)
	case *VarStmt:
		if stmt.Init == nil {
			return printer.parenthesize("var", stmt.Name.Lexeme)
		}
		return printer.parenthesize("var", stmt.Name.Lexeme, stmt.Init)
	case *WhileStmt:
		return printer.parenthesize("while", stmt.Cond, stmt.Body)
	}
	panic(fmt.Sprintf("ast printer: unexpected statement %T", stmt))
}

func (printer *AstPrinter) parenthesize(name string, parts ...interface{}) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, part := range parts {
		b.WriteString(" ")
		switch part := part.(type) {
		case Expr:
			b.WriteString(printer.Print(part))
		case Stmt:
			b.WriteString(printer.PrintStmt(part))
		case string:
			b.WriteString(part)
		default:
			fmt.Fprintf(&b, "%v", part)
		}
	}
	b.WriteString(")")
	return b.String()
}

func stmtParts(stmts []Stmt) []interface{} {
	parts := make([]interface{}, 0, len(stmts))
	for _, stmt := range stmts {
		parts = append(parts, stmt)
	}
	return parts
}
