package object

import (
	"io"
	"os"
)

// Environment is a nestable name→Object mapping: the lexical scope chain
// that backs closures and function call frames.
//
// outer is set once at construction and never rewritten, so a child
// environment can never mutate its parent's bindings — only Set on the
// local store is permitted.
type Environment struct {
	store  map[string]Object
	outer  *Environment
	writer io.Writer
}

// NewEnvironment creates a fresh top-level environment with no outer,
// writing `puts` output to os.Stdout until SetWriter says otherwise.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object), writer: os.Stdout}
}

// NewEnclosedEnvironment creates a child environment for a function call
// frame, chained to outer for name resolution and inheriting outer's
// writer as it is at that moment (so `puts` in a function body writes where
// the function's defining environment writes, including after a SetWriter
// on that environment made before the call).
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	env.writer = outer.writer
	return env
}

// Writer returns where `puts` should write in this environment.
func (e *Environment) Writer() io.Writer { return e.writer }

// SetWriter redirects this environment's `puts` output — used by the REPL
// and server session loop to target a particular connection or, in tests,
// a buffer.
func (e *Environment) SetWriter(w io.Writer) { e.writer = w }

// Get resolves name in this environment, falling back to outer
// environments until one binds it or the chain is exhausted.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set always binds name in this environment's local layer, regardless of
// whether an outer environment already binds it (shadowing, not mutation
// of the outer binding).
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
