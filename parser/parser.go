/*
File    : wisp/parser/parser.go
*/

// Package parser implements a recursive-descent parser for Wisp, turning
// a token stream into an ordered list of statement AST nodes. It never
// aborts the process on a syntax error: each error is reported through a
// diag.Reporter and the parser recovers via synchronize, so a single
// source can yield multiple diagnostics from one Parse call.
//
// Wisp's grammar is a fixed precedence-climbing ladder rather than a
// table-driven Pratt parser: one method per precedence level. Errors
// accumulate on a Reporter; a panic carrying the internal parseError
// sentinel never escapes the package.
package parser

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diag"
	"github.com/wisplang/wisp/token"
	"github.com/wisplang/wisp/value"
)

// Parser holds the token stream and parsing position.
type Parser struct {
	tokens   []token.Token
	current  int
	reporter *diag.Reporter
}

// New creates a Parser over tokens that reports diagnostics through r.
func New(tokens []token.Token, r *diag.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: r}
}

// parseError is an internal sentinel carried up from a failed production to
// its nearest declaration-loop catch point, where synchronize takes over.
// It never escapes Parse.
type parseError struct{ message string }

func (e *parseError) Error() string { return e.message }

// Parse consumes the whole token stream and returns the statement list
// (program → declaration* EOF). If any declaration reported an error, the
// reporter's HadError flag is set and the caller must not hand the result
// to the interpreter.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration → varDecl | statement
//
// A parse error inside this production is caught here: synchronize
// discards tokens up to the next plausible statement boundary and the
// declaration loop continues, dropping a nil placeholder from the result
// rather than handing it to the interpreter.
func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*parseError); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()
	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// varDecl → "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

// statement → ifStmt | forStmt | whileStmt | printStmt | block | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.Block{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Condition: condition, Body: body}
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//
//	expression? ";" expression? ")" statement
//
// Desugared at parse time into a Block/While combination: the loop body
// gets the increment appended, the condition defaults to
// `true` when absent, and the whole thing becomes a While wrapped in a
// Block carrying the initializer (when present).
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: value.Boolean{Value: true}}
	}
	body = &ast.While{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Expr: expr}
}

// block → "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.Expression{Expr: expr}
}

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENTIFIER "=" assignment | logic_or
//
// The left-hand side is parsed as a full logic_or. If '=' follows and the
// LHS turned out to be a Variable, it becomes an Assign node; otherwise the
// "Invalid assignment target" error is reported but the already-parsed LHS
// is returned rather than discarded, so the enclosing context keeps
// parsing.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.reportToken(equals, "Invalid assignment target.")
	}
	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// comparison → addition ( ( ">" | ">=" | "<" | "<=" ) addition )*
func (p *Parser) comparison() ast.Expr {
	expr := p.addition()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.addition()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// addition → multiplication ( ( "-" | "+" ) multiplication )*
func (p *Parser) addition() ast.Expr {
	expr := p.multiplication()
	for p.match(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.multiplication()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// multiplication → unary ( ( "/" | "*" ) unary )*
func (p *Parser) multiplication() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary → ( "!" | "-" ) unary | primary
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		operand := p.unary()
		return &ast.Unary{Operator: operator, Operand: operand}
	}
	return p.primary()
}

// primary → "true" | "false" | "nil" | NUMBER | STRING
//
//	| IDENTIFIER | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: value.Boolean{Value: false}}
	case p.match(token.TRUE):
		return &ast.Literal{Value: value.Boolean{Value: true}}
	case p.match(token.NIL):
		return &ast.Literal{Value: value.NilValue}
	case p.match(token.NUMBER):
		return &ast.Literal{Value: value.Number{Value: p.previous().Literal.(float64)}}
	case p.match(token.STRING):
		return &ast.Literal{Value: value.Text{Value: p.previous().Literal.(string)}}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}
	panic(p.error(p.peek(), "Expect expression."))
}

// synchronize discards tokens until it finds a plausible statement
// boundary: either the previously-consumed token was ';', or the next
// token starts a new statement. Recovery then resumes the declaration
// loop.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- token-stream cursor helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the current token if it has the expected kind,
// otherwise raises a parse error anchored to the current token.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

// error reports a token-scoped parse error and returns the sentinel used to
// unwind to the nearest declaration-loop recovery point.
func (p *Parser) error(tok token.Token, message string) *parseError {
	p.reportToken(tok, message)
	return &parseError{message: message}
}

func (p *Parser) reportToken(tok token.Token, message string) {
	p.reporter.Token(tok, message)
}
