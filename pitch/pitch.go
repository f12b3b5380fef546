package pitch

import (
	"strings"

	"github.com/abhi9vaidya/Guitariz-sub000/model"
)

// classNames uses sharps throughout, matching the rest of the app.
var classNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatAliases = map[string]model.PitchClass{
	"DB": 1,
	"EB": 3,
	"GB": 6,
	"AB": 8,
	"BB": 10,
}

// NoteEvent is any input resolvable to an absolute MIDI-like pitch. The second
// return reports whether the event is representable; unrepresentable events
// are dropped during normalization instead of failing the whole detection.
type NoteEvent interface {
	Pitch() (uint8, bool)
}

// MidiNote is a raw MIDI note number. Values outside 0-127 resolve as invalid.
type MidiNote int

func (n MidiNote) Pitch() (uint8, bool) {
	if n < 0 || n > 127 {
		return 0, false
	}
	return uint8(n), true
}

// Normalize reduces raw note events to a pitch-class set: octaves discarded,
// duplicates collapsed, invalid events filtered. Zero events is fine and
// yields the empty set.
func Normalize(events []NoteEvent) model.PitchClassSet {
	var s model.PitchClassSet
	for _, evt := range events {
		if p, ok := evt.Pitch(); ok {
			s = s.Add(p % 12)
		}
	}
	return s
}

func ClassName(pc model.PitchClass) string {
	return classNames[pc%12]
}

// ClassNames renders a set as ascending note names for display.
func ClassNames(s model.PitchClassSet) []string {
	res := make([]string, 0, s.Size())
	for _, pc := range s.Classes() {
		res = append(res, classNames[pc])
	}
	return res
}

// ParseClass resolves a note name like "C#", "eb" or "G" to its pitch class.
func ParseClass(name string) (model.PitchClass, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if pc, ok := flatAliases[upper]; ok {
		return pc, true
	}
	for pc, n := range classNames {
		if strings.ToUpper(n) == upper {
			return model.PitchClass(pc), true
		}
	}
	return 0, false
}
