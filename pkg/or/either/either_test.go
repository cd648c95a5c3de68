package either

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRight(t *testing.T) {
	t.Parallel()
	e := Right[string](42)

	assert.True(t, e.IsRight())
	assert.False(t, e.IsLeft())
	v, ok := e.RightValue()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	_, ok = e.LeftValue()
	assert.False(t, ok)
	assert.Equal(t, "Right(42)", e.String())
}

func TestLeft(t *testing.T) {
	t.Parallel()
	e := Left[string, int]("boom")

	assert.True(t, e.IsLeft())
	l, ok := e.LeftValue()
	assert.True(t, ok)
	assert.Equal(t, "boom", l)
	_, ok = e.RightValue()
	assert.False(t, ok)
	assert.Equal(t, "Left(boom)", e.String())
}
