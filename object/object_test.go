package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.Equal(t, diff1.HashKey(), diff2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerAndStringHashKeysNeverCollide(t *testing.T) {
	i := &Integer{Value: 5}
	s := &String{Value: "5"}
	assert.NotEqual(t, i.HashKey(), s.HashKey())
}

func TestBooleanHashKey(t *testing.T) {
	t1 := &Boolean{Value: true}
	t2 := &Boolean{Value: true}
	f1 := &Boolean{Value: false}

	assert.Equal(t, t1.HashKey(), t2.HashKey())
	assert.NotEqual(t, t1.HashKey(), f1.HashKey())
}

func TestEnvironmentOuterChaining(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("y", &Integer{Value: 2})

	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*Integer).Value)

	_, ok = outer.Get("y")
	assert.False(t, ok, "outer must not see bindings made in inner")

	inner.Set("x", &Integer{Value: 99})
	val, _ = inner.Get("x")
	assert.Equal(t, int64(99), val.(*Integer).Value, "Set shadows in the local layer")

	outerVal, _ := outer.Get("x")
	assert.Equal(t, int64(1), outerVal.(*Integer).Value, "shadowing must not mutate the outer binding")
}
