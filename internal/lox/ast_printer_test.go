package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinterPrint(t *testing.T) {
	testCases := []struct {
		expr Expr
		want string
	}{
		{NewLiteralExpr(nil), "nil"},
		{NewLiteralExpr(true), "true"},
		{NewLiteralExpr(2.5), "2.5"},
		{NewLiteralExpr(12.0), "12"},
		{NewLiteralExpr(`say "hi"`), `"say \"hi\""`},
		{
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 1),
				NewUnaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr(123.0)),
				NewGroupExpr(NewLiteralExpr(45.67))),
			"(* (- 123) (group 45.67))",
		},
		{NewAssignExpr(tokIdent("a"), NewVarExpr(tokIdent("b"))), "(= a b)"},
		{
			NewCallExpr(
				NewGetExpr(NewThisExpr(NewToken(THIS, "this", nil, 1)), tokIdent("m")),
				NewToken(RIGHT_PAREN, ")", nil, 1),
				[]Expr{NewLiteralExpr(1.0), NewLiteralExpr("x")}),
			`(call (. this m) 1 "x")`,
		},
		{NewSuperExpr(NewToken(SUPER, "super", nil, 1), tokIdent("init")), "(super init)"},
	}

	assert := assert.New(t)
	var printer AstPrinter
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(tc.expr))
	}
}

func TestAstPrinterPrintStmt(t *testing.T) {
	assert := assert.New(t)
	var printer AstPrinter

	var stmt Stmt = NewVarStmt(tokIdent("a"), NewLiteralExpr(1.0))
	assert.Equal("(var a 1)", printer.PrintStmt(stmt))

	stmt = NewIfStmt(
		NewVarExpr(tokIdent("a")),
		NewPrintStmt(NewLiteralExpr(1.0)),
		NewReturnStmt(NewToken(RETURN, "return", nil, 1), nil))
	assert.Equal("(if-else a (print 1) (return))", printer.PrintStmt(stmt))
}
