// Package repl implements the Read-Eval-Print Loop for the Monkey
// interpreter. The REPL provides an interactive environment where users
// can:
//   - Enter Monkey code line by line
//   - See immediate results of their code execution
//   - Navigate command history using arrow keys
//   - Receive colored feedback for different types of output
//
// The REPL uses the readline library for enhanced line editing and
// integrates with the lexer, parser, and evaluator packages to execute
// user input against a single long-lived environment.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/monkeylang/monkey/evaluator"
	"github.com/monkeylang/monkey/lexer"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
)

// Color definitions for REPL output. These provide visual feedback to
// distinguish output classes at a glance:
//   - blueColor: decorative separators
//   - yellowColor: successful evaluation results
//   - redColor: parser and runtime errors
//   - greenColor: the startup banner
//   - cyanColor: informational/usage lines
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const monkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// Repl is a configured Read-Eval-Print Loop instance. Every line evaluated
// through Start shares the environment passed to Start, so `let` bindings
// and function definitions persist across the session.
type Repl struct {
	Prompt     string // command prompt shown to the user (e.g. ">> ")
	User       string // name used in the startup banner
	ShowBanner bool   // whether Start prints the banner before reading input
}

// New creates a Repl with the given prompt, banner user name, and banner
// setting. It creates no environment; Start is given one.
func New(prompt, user string, showBanner bool) *Repl {
	return &Repl{Prompt: prompt, User: user, ShowBanner: showBanner}
}

// printBanner displays the startup banner and a short usage hint.
func (r *Repl) printBanner(writer io.Writer) {
	greenColor.Fprint(writer, monkeyFace)
	cyanColor.Fprintf(writer, "Hello %s! This is the Monkey programming language!\n", r.User)
	cyanColor.Fprintln(writer, "Feel free to type in commands")
	blueColor.Fprintln(writer, strings.Repeat("-", 48))
}

// Start begins the REPL main loop against env, reading lines via readline
// until EOF (Ctrl-D) or a readline error. Every line is parsed and
// evaluated in turn; parser errors and evaluation errors are reported
// without ending the session.
func (r *Repl) Start(writer io.Writer, env *object.Environment) {
	if r.ShowBanner {
		r.printBanner(writer)
	}

	env.SetWriter(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

// evalLine parses and evaluates a single line of input against env,
// printing its result or error. A panic escaping the evaluator (an
// unhandled AST node, division by zero) is recovered here so the session
// survives a fatal evaluation error.
func (r *Repl) evalLine(writer io.Writer, line string, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Woops! We ran into some monkey business here!\n")
			redColor.Fprintf(writer, " runtime error: %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		printParserErrors(writer, errs)
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}
	if result.Type() == object.NULL_OBJ {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(writer, result.Inspect())
		return
	}

	yellowColor.Fprintln(writer, result.Inspect())
}

// printParserErrors renders the accumulated parser error list in the
// format the REPL promises: a header line, a "parser errors:" sub-header,
// then one tab-indented line per error.
func printParserErrors(writer io.Writer, errs []string) {
	redColor.Fprintln(writer, "Woops! We ran into some monkey business here!")
	redColor.Fprintln(writer, "  parser errors:")
	for _, msg := range errs {
		redColor.Fprintln(writer, "\t"+msg)
	}
}

// ExecuteLine runs a single line against env and returns its rendered
// output (result, parser errors, or recovered runtime error) without any
// readline interaction. Used by the server's per-connection session loop.
func ExecuteLine(line string, env *object.Environment) (output string, fatal bool) {
	var sb strings.Builder

	func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				fmt.Fprintf(&sb, "Woops! We ran into some monkey business here!\n runtime error: %v\n", recovered)
			}
		}()

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()

		if errs := p.Errors(); len(errs) > 0 {
			fmt.Fprintln(&sb, "Woops! We ran into some monkey business here!")
			fmt.Fprintln(&sb, "  parser errors:")
			for _, msg := range errs {
				fmt.Fprintln(&sb, "\t"+msg)
			}
			return
		}

		result := evaluator.Eval(program, env)
		if result != nil && result.Type() != object.NULL_OBJ {
			fmt.Fprintln(&sb, result.Inspect())
		}
	}()

	return sb.String(), false
}
