package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/monkeylang/monkey/evaluator"
	"github.com/monkeylang/monkey/lexer"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a Monkey source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

// runSource evaluates source against a fresh environment and reports what
// runFile should do with the result, without itself touching stdout,
// stderr, or the process exit code — kept separate so tests can exercise
// every outcome, including a recovered panic, without a test binary
// exiting out from under go test.
//
// A panic escaping the evaluator (an unhandled AST node, division by zero)
// is recovered here, turning it into the same
// ERROR:-prefixed, exit-1 outcome as a parse or evaluation error instead
// of crashing the process with a raw Go stack trace — the same guarantee
// repl.go's evalLine/ExecuteLine give the REPL and server.
func runSource(source []byte) (message string, toStderr bool, exitCode int) {
	defer func() {
		if recovered := recover(); recovered != nil {
			message = fmt.Sprintf("ERROR: runtime error: %v", recovered)
			toStderr = true
			exitCode = 1
		}
	}()

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		return "ERROR: " + strings.Join(errs, "\n"), true, 1
	}

	result := evaluator.Eval(program, object.NewEnvironment())
	if result == nil {
		return "", false, 0
	}

	if result.Type() == object.ERROR_OBJ {
		return result.Inspect(), true, 1
	}

	if result.Type() != object.NULL_OBJ {
		return result.Inspect(), false, 0
	}

	return "", false, 0
}

// runFile reads path and evaluates it, matching the documented exit-code
// contract: ERROR:-prefixed output and exit 1 on a parse, evaluation, or
// panic-recovered error, otherwise the final value's Inspect() (Null
// results are skipped) and exit 0. Cobra's own error reporting in main.go
// is deliberately not relied on for this, since the contract is specific
// to file mode and distinct from the REPL's colored "Woops!" framing.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return oops.Code("run-read-failed").With("path", path).Wrapf(err, "reading source file")
	}

	message, toStderr, exitCode := runSource(source)
	if message != "" {
		if toStderr {
			fmt.Fprintln(os.Stderr, message)
		} else {
			fmt.Fprintln(os.Stdout, message)
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	return nil
}
