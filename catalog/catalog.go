// Package catalog holds the static table of chord shapes the matcher scores
// against. Entries are plain data: adding a shape is an append here, never a
// code change in the matcher.
package catalog

import (
	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/abhi9vaidya/Guitariz-sub000/pitch"
)

type Template struct {
	// Name is the quality, e.g. "Minor 7".
	Name string

	// Suffix is appended to the root's note name for display, e.g. "m7"
	// gives "Am7". The plain triads spell the quality out instead.
	Suffix string

	// Intervals are semitone offsets from an implicit root of 0 and always
	// include 0 itself.
	Intervals []uint8

	// Weight breaks score ties: common shapes outrank exotic ones.
	Weight int
}

// All is the catalog, loaded once and never mutated. Order is irrelevant;
// the ranker imposes its own total order.
var All = []Template{
	{Name: "Major", Suffix: " Major", Intervals: []uint8{0, 4, 7}, Weight: 10},
	{Name: "Minor", Suffix: " Minor", Intervals: []uint8{0, 3, 7}, Weight: 10},
	{Name: "Suspended 2", Suffix: "sus2", Intervals: []uint8{0, 2, 7}, Weight: 9},
	{Name: "Suspended 4", Suffix: "sus4", Intervals: []uint8{0, 5, 7}, Weight: 9},
	{Name: "Diminished", Suffix: "dim", Intervals: []uint8{0, 3, 6}, Weight: 9},
	{Name: "Augmented", Suffix: "aug", Intervals: []uint8{0, 4, 8}, Weight: 9},
	{Name: "Dominant 7", Suffix: "7", Intervals: []uint8{0, 4, 7, 10}, Weight: 8},
	{Name: "Major 7", Suffix: "maj7", Intervals: []uint8{0, 4, 7, 11}, Weight: 8},
	{Name: "Minor 7", Suffix: "m7", Intervals: []uint8{0, 3, 7, 10}, Weight: 8},
	{Name: "Minor 7 Flat 5", Suffix: "m7b5", Intervals: []uint8{0, 3, 6, 10}, Weight: 7},
	{Name: "Diminished 7", Suffix: "dim7", Intervals: []uint8{0, 3, 6, 9}, Weight: 7},
	{Name: "Dominant 7 Sus 4", Suffix: "7sus4", Intervals: []uint8{0, 5, 7, 10}, Weight: 7},
	{Name: "Dominant 9", Suffix: "9", Intervals: []uint8{0, 4, 7, 10, 2}, Weight: 6},
	{Name: "Sixth", Suffix: "6", Intervals: []uint8{0, 4, 7, 9}, Weight: 5},
	{Name: "Minor Sixth", Suffix: "m6", Intervals: []uint8{0, 3, 7, 9}, Weight: 5},
	{Name: "Added 9", Suffix: "add9", Intervals: []uint8{0, 4, 7, 2}, Weight: 5},
	{Name: "Power 5", Suffix: "5", Intervals: []uint8{0, 7}, Weight: 3},
}

// Required is the pitch-class set the template demands when built on root.
func (t Template) Required(root model.PitchClass) model.PitchClassSet {
	return model.NewPitchClassSet(t.Intervals...).Transpose(root)
}

// Format names the template on the given root, e.g. "C Major", "Am7", "G7".
func (t Template) Format(root model.PitchClass) string {
	return pitch.ClassName(root) + t.Suffix
}
