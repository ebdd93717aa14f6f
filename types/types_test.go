package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosAdd(t *testing.T) {
	p := Pos{X: 3, Y: 3}
	assert.Equal(t, Pos{X: 3, Y: 2}, p.Add(Up))
	assert.Equal(t, Pos{X: 3, Y: 4}, p.Add(Down))
	assert.Equal(t, Pos{X: 2, Y: 3}, p.Add(Left))
	assert.Equal(t, Pos{X: 4, Y: 3}, p.Add(Right))
	assert.Equal(t, p, p.Add(Direction(42)))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "(1,2)", Pos{X: 1, Y: 2}.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}
