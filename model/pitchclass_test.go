package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOperations(t *testing.T) {
	assert := assert.New(t)

	s := NewPitchClassSet(0, 4, 7)
	assert.True(s.Has(0))
	assert.True(s.Has(4))
	assert.False(s.Has(5))
	assert.Equal(s.Size(), 3)

	other := NewPitchClassSet(4, 7, 10)
	assert.Equal(s.Intersect(other), NewPitchClassSet(4, 7))
	assert.Equal(s.Diff(other), NewPitchClassSet(0))
	assert.Equal(other.Diff(s), NewPitchClassSet(10))
	assert.Equal(s.Union(other), NewPitchClassSet(0, 4, 7, 10))
}

func TestAddReducesModulo12(t *testing.T) {
	var s PitchClassSet
	s = s.Add(12).Add(16).Add(19)
	assert.Equal(t, s, NewPitchClassSet(0, 4, 7))
}

func TestTransposeWraps(t *testing.T) {
	assert := assert.New(t)

	s := NewPitchClassSet(0, 4, 7)
	assert.Equal(s.Transpose(0), s)
	assert.Equal(s.Transpose(9), NewPitchClassSet(9, 1, 4))
	assert.Equal(s.Transpose(12), s)
}

func TestClassesAscending(t *testing.T) {
	s := NewPitchClassSet(11, 0, 5)
	assert.Equal(t, s.Classes(), []PitchClass{0, 5, 11})
}
