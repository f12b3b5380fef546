package pitch

import (
	"fmt"
	"testing"

	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDiscardsOctavesAndDuplicates(t *testing.T) {
	events := []NoteEvent{MidiNote(60), MidiNote(64), MidiNote(67), MidiNote(72), MidiNote(48)}
	set := Normalize(events)

	assert := assert.New(t)
	assert.Equal(set, model.NewPitchClassSet(0, 4, 7))
	assert.Equal(set.Size(), 3)
}

func TestNormalizeFiltersUnrepresentableEvents(t *testing.T) {
	events := []NoteEvent{MidiNote(-1), MidiNote(128), MidiNote(300), MidiNote(62)}
	assert.Equal(t, Normalize(events), model.NewPitchClassSet(2))
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Normalize(nil), model.PitchClassSet(0))
	assert.Equal(Normalize([]NoteEvent{}), model.PitchClassSet(0))
}

func TestParseClass(t *testing.T) {
	cases := []struct {
		name string
		pc   model.PitchClass
		ok   bool
	}{
		{"C", 0, true},
		{"C#", 1, true},
		{"Db", 1, true},
		{"eb", 3, true},
		{" G ", 7, true},
		{"bb", 10, true},
		{"B", 11, true},
		{"H", 0, false},
		{"C##", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("parse %q", c.name), func(t *testing.T) {
			pc, ok := ParseClass(c.name)
			assert := assert.New(t)
			assert.Equal(ok, c.ok)
			if c.ok {
				assert.Equal(pc, c.pc)
			}
		})
	}
}

func TestClassNamesAscending(t *testing.T) {
	set := model.NewPitchClassSet(7, 0, 10, 4)
	assert.Equal(t, ClassNames(set), []string{"C", "E", "G", "A#"})
}
