package lox

import "strconv"

// Scanner turns Lox source into tokens. Errors go to the reporter and the
// offending input is skipped.
type Scanner struct {
	line     int
	start    int
	current  int
	source   []rune
	tokens   []*Token
	reporter Reporter
}

// NewScanner creates a scanner over the source, starting at line 1.
func NewScanner(source []rune, reporter Reporter) *Scanner {
	return &Scanner{
		line:     1,
		source:   source,
		tokens:   make([]*Token, 0),
		reporter: reporter,
	}
}

// singleCharTokens holds the runes that always make a token on their own.
var singleCharTokens = map[rune]TokenType{
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
	',': COMMA,
	'.': DOT,
	'-': MINUS,
	'+': PLUS,
	';': SEMICOLON,
	'*': STAR,
}

// equalSuffixed maps a rune to its token type alone and followed by '='.
var equalSuffixed = map[rune][2]TokenType{
	'!': {BANG, BANG_EQUAL},
	'=': {EQUAL, EQUAL_EQUAL},
	'<': {LESS, LESS_EQUAL},
	'>': {GREATER, GREATER_EQUAL},
}

// Scan reads the whole source and returns its tokens, always terminated by an
// EOF token. Invalid input is reported and skipped.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}
	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.scanToken()
	}
	scanner.tokens = append(scanner.tokens, NewToken(EOF, "", nil, scanner.line))
	return scanner.tokens
}

func (scanner *Scanner) scanToken() {
	r := scanner.advance()
	if typ, ok := singleCharTokens[r]; ok {
		scanner.addToken(typ, nil)
		return
	}
	if types, ok := equalSuffixed[r]; ok {
		if scanner.match('=') {
			scanner.addToken(types[1], nil)
		} else {
			scanner.addToken(types[0], nil)
		}
		return
	}

	switch {
	case r == ' ' || r == '\r' || r == '\t':
	case r == '\n':
		scanner.line++
	case r == '/' && scanner.match('/'):
		// The newline is left for the main loop to count.
		for scanner.peek() != '\n' && scanner.hasNext() {
			scanner.advance()
		}
	case r == '/' && scanner.match('*'):
		scanner.scanMultilineComment()
	case r == '/':
		scanner.addToken(SLASH, nil)
	case r == '"':
		scanner.scanString()
	case isDigit(r):
		scanner.scanNumber()
	case isBeginIdent(r):
		scanner.scanIdentifier()
	default:
		scanner.reporter.Report(newScanError(scanner.line, "Unexpected character."))
	}
}

// Strings may span lines and have no escape sequences.
func (scanner *Scanner) scanString() {
	for scanner.hasNext() && scanner.peek() != '"' {
		if scanner.advance() == '\n' {
			scanner.line++
		}
	}
	if !scanner.hasNext() {
		scanner.reporter.Report(newScanError(scanner.line, "Unterminated string."))
		return
	}
	scanner.advance()
	scanner.addToken(STRING, string(scanner.source[scanner.start+1:scanner.current-1]))
}

// A number is a run of digits with an optional fraction. A trailing '.'
// without digits after it is left for the next token.
func (scanner *Scanner) scanNumber() {
	scanner.skipDigits()
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		scanner.skipDigits()
	}
	// The lexeme only holds digits and at most one inner '.', it always parses.
	literal, _ := strconv.ParseFloat(scanner.lexeme(), 64)
	scanner.addToken(NUMBER, literal)
}

func (scanner *Scanner) skipDigits() {
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	typ, isKeyword := keywords[scanner.lexeme()]
	if !isKeyword {
		typ = IDENTIFIER
	}
	scanner.addToken(typ, nil)
}

// scanMultilineComment skips to the first "*/". Comments do not nest.
func (scanner *Scanner) scanMultilineComment() {
	for scanner.hasNext() {
		switch scanner.advance() {
		case '\n':
			scanner.line++
		case '*':
			if scanner.match('/') {
				return
			}
		}
	}
	scanner.reporter.Report(newScanError(scanner.line, "Unterminated multiline comment."))
}

func (scanner *Scanner) lexeme() string {
	return string(scanner.source[scanner.start:scanner.current])
}

func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	scanner.tokens = append(scanner.tokens, NewToken(typ, scanner.lexeme(), literal, scanner.line))
}

func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match consumes the next rune only if it is the expected one.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() || scanner.peek() != expected {
		return false
	}
	scanner.current++
	return true
}

// peek and peekNext look ahead without consuming. Past the end they return
// NUL.
func (scanner *Scanner) peek() rune {
	return scanner.runeAt(scanner.current)
}

func (scanner *Scanner) peekNext() rune {
	return scanner.runeAt(scanner.current + 1)
}

func (scanner *Scanner) runeAt(i int) rune {
	if i >= len(scanner.source) {
		return 0
	}
	return scanner.source[i]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}

func isBeginIdent(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}
