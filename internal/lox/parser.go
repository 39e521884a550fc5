package lox

import "fmt"

// maxArgs is the largest number of arguments a call, or parameters a function,
// may have. Going over it is reported but does not put the parser in panic
// mode.
const maxArgs = 8

// Parser composes the syntax tree for the Lox language from the sequence of
// valid tokens that follow the grammar in the package documentation.
//
// Errors are reported as soon as they are found. The parser then discards
// tokens until it reaches what looks like the beginning of the next
// statement, so a single run can report several independent errors.
type Parser struct {
	current  int
	tokens   []*Token
	reporter Reporter
}

// NewParser creates a new parse for the Lox language
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{0, tokens, reporter}
}

// Parse returns the statements of the program. Statements that could not be
// parsed are left out.
func (parser *Parser) Parse() []Stmt {
	statements := make([]Stmt, 0)
	for !parser.isEOF() {
		if stmt := parser.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// decl --> classDecl | funDecl | varDecl | stmt ;
func (parser *Parser) declaration() Stmt {
	var (
		stmt Stmt
		err  error
	)
	switch {
	case parser.match(CLASS):
		stmt, err = parser.classDeclaration()
	case parser.match(FUN):
		stmt, err = parser.function("function")
	case parser.match(VAR):
		stmt, err = parser.varDeclaration()
	default:
		stmt, err = parser.statement()
	}
	if err != nil {
		parser.reporter.Report(err)
		parser.sync()
		return nil
	}
	return stmt
}

// classDecl --> "class" IDENT ( "<" IDENT )? "{" function* "}" ;
func (parser *Parser) classDeclaration() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *VarExpr
	if parser.match(LESS) {
		superName, err := parser.consume(IDENTIFIER, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = NewVarExpr(superName)
	}

	if _, err := parser.consume(LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}
	methods := make([]*FunctionStmt, 0)
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		method, err := parser.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}
	return NewClassStmt(name, superclass, methods), nil
}

// function --> IDENT "(" params? ")" block ;
func (parser *Parser) function(kind string) (*FunctionStmt, error) {
	name, err := parser.consume(IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(
		LEFT_PAREN,
		fmt.Sprintf("Expect '(' after %s name.", kind),
	); err != nil {
		return nil, err
	}

	params := make([]*Token, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				parser.reporter.Report(newParseError(
					parser.peek(),
					fmt.Sprintf("Can't have more than %d parameters.", maxArgs),
				))
			}
			param, err := parser.consume(IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := parser.consume(
		LEFT_BRACE,
		fmt.Sprintf("Expect '{' before %s body.", kind),
	); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	return NewFunctionStmt(name, params, body), nil
}

// varDecl --> "var" IDENT ( "=" expr )? ";" ;
func (parser *Parser) varDeclaration() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer Expr
	if parser.match(EQUAL) {
		initializer, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(
		SEMICOLON,
		"Expect ';' after variable declaration.",
	); err != nil {
		return nil, err
	}
	return NewVarStmt(name, initializer), nil
}

// stmt --> block | exprStmt | forStmt | ifStmt | printStmt | returnStmt | whileStmt ;
func (parser *Parser) statement() (Stmt, error) {
	switch {
	case parser.match(FOR):
		return parser.forStatement()
	case parser.match(IF):
		return parser.ifStatement()
	case parser.match(PRINT):
		return parser.printStatement()
	case parser.match(RETURN):
		return parser.returnStatement()
	case parser.match(WHILE):
		return parser.whileStatement()
	case parser.match(LEFT_BRACE):
		stmts, err := parser.block()
		if err != nil {
			return nil, err
		}
		return NewBlockStmt(stmts), nil
	}
	return parser.expressionStatement()
}

// A for loop is turned into an equivalent while loop so the later stages
// never see it.
//
// forStmt --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
func (parser *Parser) forStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var (
		initializer Stmt
		err         error
	)
	switch {
	case parser.match(SEMICOLON):
	case parser.match(VAR):
		initializer, err = parser.varDeclaration()
	default:
		initializer, err = parser.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !parser.check(SEMICOLON) {
		if cond, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !parser.check(RIGHT_PAREN) {
		if incr, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := parser.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = NewBlockStmt([]Stmt{body, NewExprStmt(incr)})
	}
	if cond == nil {
		cond = NewLiteralExpr(true)
	}
	body = NewWhileStmt(cond, body)
	if initializer != nil {
		body = NewBlockStmt([]Stmt{initializer, body})
	}
	return body, nil
}

// ifStmt --> "if" "(" expr ")" stmt ( "else" stmt )? ;
func (parser *Parser) ifStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := parser.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if parser.match(ELSE) {
		if elseBranch, err = parser.statement(); err != nil {
			return nil, err
		}
	}
	return NewIfStmt(cond, thenBranch, elseBranch), nil
}

// printStmt --> "print" expr ";" ;
func (parser *Parser) printStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return NewPrintStmt(expr), nil
}

// returnStmt --> "return" expr? ";" ;
func (parser *Parser) returnStatement() (Stmt, error) {
	keyword := parser.prev()
	var (
		val Expr
		err error
	)
	if !parser.check(SEMICOLON) {
		if val, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return NewReturnStmt(keyword, val), nil
}

// whileStmt --> "while" "(" expr ")" stmt ;
func (parser *Parser) whileStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := parser.statement()
	if err != nil {
		return nil, err
	}
	return NewWhileStmt(cond, body), nil
}

// block --> "{" decl* "}" ;
func (parser *Parser) block() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		if stmt := parser.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// exprStmt --> expr ";" ;
func (parser *Parser) expressionStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewExprStmt(expr), nil
}

// expr --> assign ;
func (parser *Parser) expression() (Expr, error) {
	return parser.assignment()
}

// The left-hand side is parsed as an ordinary expression first, then turned
// into an assignment target if an "=" follows.
//
// assign --> ( call "." )? IDENT "=" assign | or ;
func (parser *Parser) assignment() (Expr, error) {
	expr, err := parser.or()
	if err != nil {
		return nil, err
	}
	if !parser.match(EQUAL) {
		return expr, nil
	}

	equals := parser.prev()
	val, err := parser.assignment()
	if err != nil {
		return nil, err
	}
	switch target := expr.(type) {
	case *VarExpr:
		return NewAssignExpr(target.Name, val), nil
	case *GetExpr:
		return NewSetExpr(target.Obj, target.Name, val), nil
	}
	parser.reporter.Report(newParseError(equals, "Invalid assignment target."))
	return expr, nil
}

// or --> and ( "or" and )* ;
func (parser *Parser) or() (Expr, error) {
	expr, err := parser.and()
	if err != nil {
		return nil, err
	}
	for parser.match(OR) {
		op := parser.prev()
		rhs, err := parser.and()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, rhs)
	}
	return expr, nil
}

// and --> equality ( "and" equality )* ;
func (parser *Parser) and() (Expr, error) {
	expr, err := parser.equality()
	if err != nil {
		return nil, err
	}
	for parser.match(AND) {
		op := parser.prev()
		rhs, err := parser.equality()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, rhs)
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `comparison` if does not hits "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binary(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binary(parser.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.binary(parser.factor, MINUS, PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	return parser.binary(parser.unary, SLASH, STAR)
}

func (parser *Parser) binary(operand func() (Expr, error), ops ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(ops...) {
		op := parser.prev()
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// unary --> ( "!" | "-" | "+" | "/" | "*" ) unary
//         | call ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS, PLUS, SLASH, STAR) {
		op := parser.prev()
		switch expr, err := parser.unary(); op.Typ {
		case PLUS, SLASH, STAR:
			err = newParseError(
				op,
				fmt.Sprintf("Unary '%s' expressions are not supported.", op.Lexeme),
			)
			fallthrough
		case BANG, MINUS:
			if err != nil {
				return nil, err
			}
			return NewUnaryExpr(op, expr), nil
		}
	}
	return parser.call()
}

// call --> primary ( "(" args? ")" | "." IDENT )* ;
func (parser *Parser) call() (Expr, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case parser.match(LEFT_PAREN):
			if expr, err = parser.finishCall(expr); err != nil {
				return nil, err
			}
		case parser.match(DOT):
			name, err := parser.consume(IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = NewGetExpr(expr, name)
		default:
			return expr, nil
		}
	}
}

// args --> expr ( "," expr )* ;
func (parser *Parser) finishCall(callee Expr) (Expr, error) {
	args := make([]Expr, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				parser.reporter.Report(newParseError(
					parser.peek(),
					fmt.Sprintf("Can't have more than %d arguments.", maxArgs),
				))
			}
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	paren, err := parser.consume(RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return NewCallExpr(callee, paren, args), nil
}

// primary --> NUMBER | STRING | IDENT | "true" | "false" | "nil"
//           | "this" | "super" "." IDENT | "(" expr ")" ;
func (parser *Parser) primary() (Expr, error) {
	switch {
	case parser.match(FALSE):
		return NewLiteralExpr(false), nil
	case parser.match(TRUE):
		return NewLiteralExpr(true), nil
	case parser.match(NIL):
		return NewLiteralExpr(nil), nil
	case parser.match(NUMBER, STRING):
		return NewLiteralExpr(parser.prev().Literal), nil
	case parser.match(THIS):
		return NewThisExpr(parser.prev()), nil
	case parser.match(IDENTIFIER):
		return NewVarExpr(parser.prev()), nil
	case parser.match(SUPER):
		keyword := parser.prev()
		if _, err := parser.consume(DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := parser.consume(IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return NewSuperExpr(keyword, method), nil
	case parser.match(LEFT_PAREN):
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return NewGroupExpr(expr), nil
	}
	return nil, newParseError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, newParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

// sync discards tokens until it reaches a statement boundary.
func (parser *Parser) sync() {
	parser.advance()
	for !parser.isEOF() {
		if parser.prev().Typ == SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		parser.advance()
	}
}
