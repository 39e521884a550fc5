/*
Package lox implements a tree-walking interpreter for the Lox programming
language. Source code goes through four stages: the Scanner produces tokens,
the Parser builds the syntax tree, the Resolver computes for every local
variable reference how many scopes away its declaration lives, and the
Interpreter executes the tree using those distances.

Grammars

	program    --> decl* EOF ;
	decl       --> classDecl
	             | funDecl
	             | varDecl
	             | stmt ;
	classDecl  --> "class" IDENT ( "<" IDENT )? "{" function* "}" ;
	funDecl    --> "fun" function ;
	function   --> IDENT "(" params? ")" block ;
	params     --> IDENT ( "," IDENT )* ;
	varDecl    --> "var" IDENT ( "=" expr )? ";" ;
	stmt       --> block
	             | exprStmt
	             | forStmt
	             | ifStmt
	             | printStmt
	             | returnStmt
	             | whileStmt ;
	block      --> "{" decl* "}" ;
	exprStmt   --> expr ";" ;
	forStmt    --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
	ifStmt     --> "if" "(" expr ")" stmt ( "else" stmt )? ;
	printStmt  --> "print" expr ";" ;
	returnStmt --> "return" expr? ";" ;
	whileStmt  --> "while" "(" expr ")" stmt ;
	expr       --> assign ;
	assign     --> ( call "." )? IDENT "=" assign
	             | or ;
	or         --> and ( "or" and )* ;
	and        --> equality ( "and" equality )* ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" | "+" | "/" | "*" ) unary
	             | call ;
	call       --> primary ( "(" args? ")" | "." IDENT )* ;
	args       --> expr ( "," expr )* ;
	primary    --> NUMBER | STRING | IDENT
	             | "true" | "false" | "nil"
	             | "this" | "super" "." IDENT
	             | "(" expr ")" ;

"unary" rule has some matches for error generations:
+ Unary '+' expressions are not supported.
+ Unary '/' expressions are not supported.
+ Unary '*' expressions are not supported.

Values

Lox values are carried as interface{} holding one of nil, bool, float64,
string, loxCallable (*loxFn, *loxClass, *loxNative) or *loxInstance. Every
operator site switches over exactly this set.

Recursion in Lox programs is bounded only by the Go stack; a runaway
recursion crashes the process.
*/
package lox

//go:generate go run ../cmd/ast_codegen .
