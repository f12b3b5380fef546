package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// Snapshot is the set of pitch classes sounding from OffsetMs until the next
// snapshot.
type Snapshot struct {
	OffsetMs int64
	Sounding model.PitchClassSet
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	note      uint8
}

// Snapshots folds the file's note on/off events, across all tracks in time
// order, into the sequence of distinct sounding pitch-class sets. Consecutive
// snapshots always differ; silence shows up as the empty set.
func Snapshots(s *smf.SMF) []Snapshot {
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := int64(s.TimeAt(absTicks))
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset: absTime,
					note:   key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset:    absTime,
					isNoteOff: true,
					note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.Slice(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].offset != reducedEvents[j].offset {
			return reducedEvents[i].offset < reducedEvents[j].offset
		}
		return reducedEvents[i].isNoteOff
	})

	var res []Snapshot
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}

		var sounding model.PitchClassSet
		for note := range pressed {
			sounding = sounding.Add(note % 12)
		}

		offsetMs := evt.offset / 1000
		if len(res) > 0 {
			last := &res[len(res)-1]
			if last.Sounding == sounding {
				continue
			}
			// events at the same instant collapse into one snapshot
			if last.OffsetMs == offsetMs {
				last.Sounding = sounding
				continue
			}
		}
		res = append(res, Snapshot{OffsetMs: offsetMs, Sounding: sounding})
	}
	return res
}
