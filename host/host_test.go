package host

import (
	"testing"

	"github.com/monkeylang/monkey/object"
	"github.com/stretchr/testify/assert"
)

func TestInterpretEvaluatesResult(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + 5", "10"},
		{`"hello" + " " + "world"`, "hello world"},
		{"let a = 5; a * 2;", "10"},
		{"fn(x) { x + 1; }(4);", "5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Interpret(tt.input))
	}
}

func TestInterpretReturnsEmptyStringForStatementsWithNoValue(t *testing.T) {
	assert.Equal(t, "", Interpret("let a = 5;"))
}

func TestInterpretReturnsEvaluationErrorInspect(t *testing.T) {
	assert.Equal(t, "ERROR: identifier not found: foo", Interpret("foo"))
}

func TestInterpretJoinsParserErrorsWithNewlineAndNoPrefix(t *testing.T) {
	out := Interpret("let x 5; let y 10;")
	assert.NotContains(t, out, "parse error:")
	assert.Contains(t, out, "\n")
}

func TestInterpretInSharesEnvironmentAcrossCalls(t *testing.T) {
	env := object.NewEnvironment()

	assert.Equal(t, "", InterpretIn("let a = 5;", env))
	assert.Equal(t, "10", InterpretIn("a * 2;", env))
}
