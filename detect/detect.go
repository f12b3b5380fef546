// Package detect is the chord-recognition engine: a pure function from a
// pitch-class set and per-call options to a ranked list of named candidates.
// It holds no state between calls and never returns an error; insufficient
// or unmatchable input simply yields an empty list.
package detect

import (
	"sort"

	"github.com/abhi9vaidya/Guitariz-sub000/catalog"
	"github.com/abhi9vaidya/Guitariz-sub000/constants"
	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/abhi9vaidya/Guitariz-sub000/pitch"
)

type match struct {
	template catalog.Template
	root     model.PitchClass
	score    int
	required model.PitchClassSet
	matched  model.PitchClassSet
	missing  model.PitchClassSet
	extra    model.PitchClassSet
}

func clampOptions(opts model.DetectionOptions) model.DetectionOptions {
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = constants.DefaultMaxCandidates
	}
	if opts.MinNotes <= 0 {
		opts.MinNotes = constants.DefaultMinNotes
	}
	if opts.Strictness != model.Strict {
		opts.Strictness = model.Lenient
	}
	return opts
}

// matchAll scores every (root, template) pair against the input and keeps
// the ones the current strictness accepts.
func matchAll(input model.PitchClassSet, opts model.DetectionOptions) []match {
	var accepted []match
	for root := model.PitchClass(0); root < 12; root++ {
		for _, t := range catalog.All {
			required := t.Required(root)
			matched := required.Intersect(input)
			missing := required.Diff(input)
			extra := input.Diff(required)

			// a chord needs at least a defining interval pair, and it
			// cannot be named for notes that aren't present
			if matched.Size() < 2 || missing != 0 {
				continue
			}
			if opts.Strictness == model.Strict && extra != 0 {
				continue
			}

			score := 100 - constants.ExtraPenalty*extra.Size()
			if score <= 0 {
				continue
			}
			accepted = append(accepted, match{
				template: t,
				root:     root,
				score:    score,
				required: required,
				matched:  matched,
				missing:  missing,
				extra:    extra,
			})
		}
	}
	return accepted
}

// rank orders matches into the deterministic total order the dedup and
// truncation steps rely on: score desc, template weight desc, root asc,
// then name asc for same-root ties between equal-weight templates.
func rank(matches []match) {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.template.Weight != b.template.Weight {
			return a.template.Weight > b.template.Weight
		}
		if a.root != b.root {
			return a.root < b.root
		}
		return a.template.Name < b.template.Name
	})
}

// dedupe collapses matches over the same required pitch-class set: they name
// the same physical shape (Am7 vs C6, Csus2 vs Gsus4, the symmetric dim7
// roots). The best-ranked one stays primary; the rest become alternate names.
func dedupe(matches []match) []model.ChordCandidate {
	var res []model.ChordCandidate
	primary := make(map[model.PitchClassSet]int)
	for _, m := range matches {
		if i, ok := primary[m.required]; ok {
			res[i].AlternateNames = append(res[i].AlternateNames, m.template.Format(m.root))
			continue
		}
		primary[m.required] = len(res)
		res = append(res, model.ChordCandidate{
			Name:    m.template.Format(m.root),
			Quality: m.template.Name,
			Root:    m.root,
			Score:   m.score,
			Matched: m.matched,
			Missing: m.missing,
			Extra:   m.extra,
		})
	}
	return res
}

// Chords is the single entry point: ranked chord interpretations of the
// input set, best first. The first element is the caller's headline name.
func Chords(input model.PitchClassSet, opts model.DetectionOptions) []model.ChordCandidate {
	opts = clampOptions(opts)
	if input.Size() < opts.MinNotes {
		return nil
	}

	matches := matchAll(input, opts)
	rank(matches)
	candidates := dedupe(matches)

	if len(candidates) > opts.MaxCandidates {
		candidates = candidates[:opts.MaxCandidates]
	}
	return candidates
}

// FromEvents normalizes raw note events and detects in one call.
func FromEvents(events []pitch.NoteEvent, opts model.DetectionOptions) []model.ChordCandidate {
	return Chords(pitch.Normalize(events), opts)
}
