package evaluator

import (
	"fmt"
	"io"

	"github.com/monkeylang/monkey/object"
)

// builtins are the native functions visible in every environment, resolved
// only after identifier lookup fails against the user's own bindings —
// a user `let len = ...` shadows the builtin of the same name.
var builtins = map[string]*object.Builtin{
	"len": {
		Fn: func(w io.Writer, args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError(codeArityMismatch, "wrong number of arguments. got=%d, want=1", len(args))
			}

			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			case *object.Array:
				return &object.Integer{Value: int64(len(arg.Elements))}
			default:
				return newError(codeBadArgument, "argument to `len` not supported, got %s", args[0].Type())
			}
		},
	},
	"first": {
		Fn: func(w io.Writer, args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError(codeArityMismatch, "wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError(codeBadArgument, "argument to `first` must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) > 0 {
				return arr.Elements[0]
			}
			return NULL
		},
	},
	"last": {
		Fn: func(w io.Writer, args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError(codeArityMismatch, "wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError(codeBadArgument, "argument to `last` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length > 0 {
				return arr.Elements[length-1]
			}
			return NULL
		},
	},
	"rest": {
		Fn: func(w io.Writer, args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError(codeArityMismatch, "wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError(codeBadArgument, "argument to `rest` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length > 0 {
				newElements := make([]object.Object, length-1)
				copy(newElements, arr.Elements[1:length])
				return &object.Array{Elements: newElements}
			}
			return NULL
		},
	},
	"push": {
		Fn: func(w io.Writer, args ...object.Object) object.Object {
			if len(args) != 2 {
				return newError(codeArityMismatch, "wrong number of arguments. got=%d, want=2", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError(codeBadArgument, "argument to `push` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			newElements := make([]object.Object, length+1)
			copy(newElements, arr.Elements)
			newElements[length] = args[1]
			return &object.Array{Elements: newElements}
		},
	},
	"puts": {
		Fn: func(w io.Writer, args ...object.Object) object.Object {
			for _, arg := range args {
				fmt.Fprintln(w, arg.Inspect())
			}
			return NULL
		},
	},
}
