// Package host exposes the interpreter as a single function call, for
// programs that want to evaluate Monkey source without going through the
// REPL, file runner, or server surfaces in cmd/monkey.
package host

import (
	"strings"

	"github.com/monkeylang/monkey/evaluator"
	"github.com/monkeylang/monkey/lexer"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
)

// Interpret parses and evaluates source in a fresh environment, returning
// the Inspect() rendering of the final result, or the accumulated parser
// errors joined by "\n" if parsing failed.
func Interpret(source string) string {
	env := object.NewEnvironment()
	return InterpretIn(source, env)
}

// InterpretIn is Interpret against a caller-supplied environment, letting a
// host program retain bindings across multiple calls (the same role the
// REPL's single long-lived environment plays across lines).
func InterpretIn(source string, env *object.Environment) string {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		return strings.Join(errs, "\n")
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return ""
	}
	return result.Inspect()
}
