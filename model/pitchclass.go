package model

// PitchClass is a note name with the octave discarded: 0 = C, 1 = C#, ... 11 = B.
type PitchClass = uint8

// PitchClassSet is a set of pitch classes packed into the low 12 bits of a
// uint16. Being a plain integer makes intersection/difference single bitwise
// ops and gives the value equality the dedup step relies on.
type PitchClassSet uint16

const FullPitchClassSet = PitchClassSet(0xFFF)

func (s PitchClassSet) Add(pc PitchClass) PitchClassSet {
	return s | 1<<(pc%12)
}

func (s PitchClassSet) Has(pc PitchClass) bool {
	return s&(1<<(pc%12)) != 0
}

func (s PitchClassSet) Union(other PitchClassSet) PitchClassSet {
	return s | other
}

func (s PitchClassSet) Intersect(other PitchClassSet) PitchClassSet {
	return s & other
}

// Diff returns the pitch classes in s that are not in other.
func (s PitchClassSet) Diff(other PitchClassSet) PitchClassSet {
	return s &^ other
}

func (s PitchClassSet) Size() int {
	n := 0
	for b := s & FullPitchClassSet; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Transpose rotates every member of the set up by the given number of
// semitones, wrapping at the octave.
func (s PitchClassSet) Transpose(by PitchClass) PitchClassSet {
	by %= 12
	bits := s & FullPitchClassSet
	return (bits<<by | bits>>(12-by)) & FullPitchClassSet
}

// Classes unpacks the set into ascending pitch classes.
func (s PitchClassSet) Classes() []PitchClass {
	var res []PitchClass
	for pc := PitchClass(0); pc < 12; pc++ {
		if s.Has(pc) {
			res = append(res, pc)
		}
	}
	return res
}

// NewPitchClassSet builds a set from absolute pitches, reducing each modulo 12.
func NewPitchClassSet(pitches ...uint8) PitchClassSet {
	var s PitchClassSet
	for _, p := range pitches {
		s = s.Add(p % 12)
	}
	return s
}
