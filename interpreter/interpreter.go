/*
File    : wisp/interpreter/interpreter.go
*/

// Package interpreter walks the Wisp statement AST, producing print side
// effects and mutating an environment chain. A runtime error aborts the
// current Interpret call: evaluation functions return a Go error rather
// than panicking, so the catch point for a runtime failure is Interpret's
// own loop, not a deferred recover somewhere deeper in the call stack.
package interpreter

import (
	"fmt"
	"io"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diag"
	"github.com/wisplang/wisp/environment"
	"github.com/wisplang/wisp/token"
	"github.com/wisplang/wisp/value"
)

// RuntimeError is a semantic failure raised during evaluation, carrying
// the offending token for line reporting.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Interpreter executes a statement list against a chain of environments
// rooted at Globals. out receives the output of `print` statements.
type Interpreter struct {
	Globals  *environment.Environment
	env      *environment.Environment
	reporter *diag.Reporter
	out      io.Writer
}

// New creates an Interpreter with a fresh global environment.
func New(r *diag.Reporter, out io.Writer) *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{Globals: globals, env: globals, reporter: r, out: out}
}

// Interpret executes statements in order against the interpreter's current
// environment. On a runtime error it reports the error, sets
// HadRuntimeError on the reporter, and abandons the rest of the input;
// side effects already committed remain.
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			if rerr, ok := err.(*RuntimeError); ok {
				in.reporter.Runtime(rerr.Token, rerr.Message)
			}
			return
		}
	}
}

// execute runs one statement, dispatching on its concrete AST type.
func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(v))
		return nil

	case *ast.Var:
		var v value.Value = value.NilValue
		if s.Initializer != nil {
			var err error
			v, err = in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Statements, environment.New(in.env))

	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", stmt)
	}
}

// executeBlock runs statements against a new child environment, restoring
// the caller's environment on every exit path — normal return or error
// unwind alike.
func (in *Interpreter) executeBlock(statements []ast.Stmt, child *environment.Environment) error {
	previous := in.env
	in.env = child
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// evaluate computes the value of an expression, dispatching on its
// concrete AST type.
func (in *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value.(value.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Inner)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		v, ok := in.env.Get(e.Name.Lexeme)
		if !ok {
			return nil, in.runtimeErr(e.Name, fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme))
		}
		return v, nil

	case *ast.Assign:
		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if !in.env.Assign(e.Name.Lexeme, v) {
			return nil, in.runtimeErr(e.Name, fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme))
		}
		return v, nil

	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", expr)
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.MINUS:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, in.runtimeErr(e.Operator, "Operand must be a number.")
		}
		return value.Number{Value: -n.Value}, nil
	case token.BANG:
		// Negates truthiness of any value, not just numbers or booleans;
		// see interpreter_test.go for the regression.
		return value.Boolean{Value: !value.Truthy(operand)}, nil
	default:
		return nil, in.runtimeErr(e.Operator, "Unknown unary operator.")
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.OR:
		if value.Truthy(left) {
			return left, nil
		}
	case token.AND:
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.MINUS, token.STAR, token.SLASH:
		l, lok := left.(value.Number)
		r, rok := right.(value.Number)
		if !lok || !rok {
			return nil, in.runtimeErr(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.MINUS:
			return value.Number{Value: l.Value - r.Value}, nil
		case token.STAR:
			return value.Number{Value: l.Value * r.Value}, nil
		default: // SLASH: division by zero yields IEEE infinity/NaN, no dedicated error.
			return value.Number{Value: l.Value / r.Value}, nil
		}

	case token.PLUS:
		if l, ok := left.(value.Number); ok {
			if r, ok := right.(value.Number); ok {
				return value.Number{Value: l.Value + r.Value}, nil
			}
		}
		if l, ok := left.(value.Text); ok {
			if r, ok := right.(value.Text); ok {
				return value.Text{Value: l.Value + r.Value}, nil
			}
		}
		return nil, in.runtimeErr(e.Operator, "Operands must be two numbers or two strings.")

	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		l, lok := left.(value.Number)
		r, rok := right.(value.Number)
		if !lok || !rok {
			return nil, in.runtimeErr(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.GREATER:
			return value.Boolean{Value: l.Value > r.Value}, nil
		case token.GREATER_EQUAL:
			return value.Boolean{Value: l.Value >= r.Value}, nil
		case token.LESS:
			return value.Boolean{Value: l.Value < r.Value}, nil
		default:
			return value.Boolean{Value: l.Value <= r.Value}, nil
		}

	case token.EQUAL_EQUAL:
		return value.Boolean{Value: value.Equal(left, right)}, nil
	case token.BANG_EQUAL:
		return value.Boolean{Value: !value.Equal(left, right)}, nil

	default:
		return nil, in.runtimeErr(e.Operator, "Unknown binary operator.")
	}
}

func (in *Interpreter) runtimeErr(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// stringify renders a Value for `print`. Number, Boolean, Text and Nil all
// delegate to Value.String; this wrapper exists as the single place the
// interpreter's stringification contract lives, independent of
// fmt.Stringer's general-purpose semantics.
func stringify(v value.Value) string {
	return v.String()
}
