package model

type Notes = []uint8

type Strictness string

const (
	Strict  Strictness = "strict"
	Lenient Strictness = "lenient"
)

// DetectionOptions is supplied by the caller on every call; the engine keeps
// nothing between calls. Non-positive numeric fields are clamped to defaults
// rather than rejected.
type DetectionOptions struct {
	Strictness    Strictness
	MaxCandidates int
	MinNotes      int

	// AllowInversions is accepted for interface symmetry with bass-aware
	// callers but has no effect: inversions are a property of the lowest
	// sounding pitch, which is discarded during normalization.
	AllowInversions bool
}

// ChordCandidate is one scored interpretation of the current note set.
type ChordCandidate struct {
	Name    string
	Quality string
	Root    PitchClass
	Score   int
	Matched PitchClassSet
	Missing PitchClassSet
	Extra   PitchClassSet

	// AlternateNames holds equally valid names for the same pitch-class
	// set that lost the dedup tie-break, best first.
	AlternateNames []string
}

// ChordMetadata is an optional per-quality enrichment record from the
// metadata table.
type ChordMetadata struct {
	Quality     string `json:"quality"`
	Description string `json:"description"`
	CommonUse   string `json:"common_use,omitempty"`
}
