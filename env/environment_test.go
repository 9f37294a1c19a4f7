package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_UnboundVariable(t *testing.T) {
	e := New()
	_, ok := e.Get("x")
	assert.False(t, ok)
}

func TestEnvironment_SetThenGet(t *testing.T) {
	e := New()
	e.Set("x", 42)
	v, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int32(42), v)
}

func TestEnvironment_LastWriteWins(t *testing.T) {
	e := New()
	e.Set("x", 1)
	e.Set("x", 2)
	v, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int32(2), v)
}
