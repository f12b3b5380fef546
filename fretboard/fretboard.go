package fretboard

// openPitch is the MIDI pitch of each open string in standard tuning:
// E2(40) A2(45) D3(50) G3(55) B3(59) E4(64). String 0 is the low E.
var openPitch = [NumStrings]int{40, 45, 50, 55, 59, 64}

const (
	NumStrings = 6
	MaxFret    = 24
)

// Press is a fretted note: a string index and a fret number (0 = open).
type Press struct {
	String int
	Fret   int
}

// Pitch resolves the press to a MIDI pitch. Presses off the neck are invalid
// and get filtered during normalization.
func (p Press) Pitch() (uint8, bool) {
	if p.String < 0 || p.String >= NumStrings || p.Fret < 0 || p.Fret > MaxFret {
		return 0, false
	}
	return uint8(openPitch[p.String] + p.Fret), true
}
