package fretboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenStrings(t *testing.T) {
	expected := []uint8{40, 45, 50, 55, 59, 64}
	for s := 0; s < NumStrings; s++ {
		p, ok := Press{String: s, Fret: 0}.Pitch()
		assert.True(t, ok)
		assert.Equal(t, p, expected[s])
	}
}

func TestFrettedNotes(t *testing.T) {
	assert := assert.New(t)

	// 3rd fret on the low E string is G2
	p, ok := Press{String: 0, Fret: 3}.Pitch()
	assert.True(ok)
	assert.Equal(p, uint8(43))

	// 1st fret on the B string is middle C
	p, ok = Press{String: 4, Fret: 1}.Pitch()
	assert.True(ok)
	assert.Equal(p, uint8(60))

	p, ok = Press{String: 5, Fret: MaxFret}.Pitch()
	assert.True(ok)
	assert.Equal(p, uint8(88))
}

func TestOffTheNeckIsInvalid(t *testing.T) {
	cases := []Press{
		{String: -1, Fret: 0},
		{String: NumStrings, Fret: 0},
		{String: 0, Fret: -1},
		{String: 0, Fret: MaxFret + 1},
	}
	for _, c := range cases {
		_, ok := c.Pitch()
		assert.False(t, ok)
	}
}
