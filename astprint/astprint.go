/*
File    : wisp/astprint/astprint.go
*/

// Package astprint is a debug utility external to the interpreter core.
// It renders a parsed statement list as a parenthesized, Lisp-like trace
// for developers inspecting what the parser produced, walking the AST by
// type switch rather than through a Visitor interface — consistent with
// how the core itself dispatches.
package astprint

import (
	"fmt"
	"strings"

	"github.com/wisplang/wisp/ast"
)

// Print renders a statement list, one top-level form per line.
func Print(statements []ast.Stmt) string {
	var b strings.Builder
	for _, stmt := range statements {
		b.WriteString(stmtString(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}

func stmtString(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.Expression:
		return parenthesize(";", exprString(s.Expr))
	case *ast.Print:
		return parenthesize("print", exprString(s.Expr))
	case *ast.Var:
		if s.Initializer == nil {
			return parenthesize("var", s.Name.Lexeme)
		}
		return parenthesize("var", s.Name.Lexeme, exprString(s.Initializer))
	case *ast.Block:
		parts := make([]string, 0, len(s.Statements))
		for _, inner := range s.Statements {
			parts = append(parts, stmtString(inner))
		}
		return parenthesize("block", parts...)
	case *ast.If:
		if s.Else == nil {
			return parenthesize("if", exprString(s.Condition), stmtString(s.Then))
		}
		return parenthesize("if", exprString(s.Condition), stmtString(s.Then), stmtString(s.Else))
	case *ast.While:
		return parenthesize("while", exprString(s.Condition), stmtString(s.Body))
	default:
		return fmt.Sprintf("<unknown stmt %T>", stmt)
	}
}

func exprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		if e.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", e.Value)
	case *ast.Grouping:
		return parenthesize("group", exprString(e.Inner))
	case *ast.Unary:
		return parenthesize(e.Operator.Lexeme, exprString(e.Operand))
	case *ast.Binary:
		return parenthesize(e.Operator.Lexeme, exprString(e.Left), exprString(e.Right))
	case *ast.Logical:
		return parenthesize(e.Operator.Lexeme, exprString(e.Left), exprString(e.Right))
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assign:
		return parenthesize("=", e.Name.Lexeme, exprString(e.Value))
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}

func parenthesize(name string, parts ...string) string {
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}
