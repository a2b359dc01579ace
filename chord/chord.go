package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/harmonfunc/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

type OnNotes = map[uint8]bool

// CreateChordKey names a note set independent of order, e.g. "48-64-67".
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

// Held returns the notes currently on, low to high.
func Held(on OnNotes) model.Notes {
	notes := make(model.Notes, 0, len(on))
	for note, isOn := range on {
		if isOn {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}

// ReduceEvents flattens every track's note on/off messages into absolute time.
func ReduceEvents(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					AbsTicks: uint64(absTicks),
					Offset:   s.TimeAt(absTicks),
					// running status files send note on with velocity 0 to release
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					AbsTicks:  uint64(absTicks),
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}
	return reducedEvents
}

// Slice turns note events into the sequence of sounding note sets. A chord is emitted
// for every tick where the set changes and is not empty.
func Slice(events []model.ReducedEvent) []model.Chord {
	sorted := append([]model.ReducedEvent(nil), events...)
	// earlier ticks first, and note offs before note ons on the same tick
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AbsTicks != sorted[j].AbsTicks {
			return sorted[i].AbsTicks < sorted[j].AbsTicks
		}
		return sorted[i].IsNoteOff && !sorted[j].IsNoteOff
	})

	var chords []model.Chord
	pressed := make(map[uint8]int)
	var lastKey string
	for i, evt := range sorted {
		if evt.IsNoteOff {
			if pressed[evt.Note] > 1 {
				pressed[evt.Note]--
			} else {
				delete(pressed, evt.Note)
			}
		} else {
			pressed[evt.Note]++
		}

		if i+1 < len(sorted) && sorted[i+1].AbsTicks == evt.AbsTicks {
			continue
		}

		notes := make(model.Notes, 0, len(pressed))
		for note := range pressed {
			notes = append(notes, note)
		}
		key := CreateChordKey(notes)
		if len(notes) == 0 || key == lastKey {
			lastKey = key
			continue
		}
		lastKey = key

		sort.Slice(notes, func(a, b int) bool {
			return notes[a] < notes[b]
		})
		chords = append(chords, model.Chord{
			AbsTicks: evt.AbsTicks,
			Offset:   evt.Offset,
			Notes:    notes,
		})
	}
	return chords
}

// GetChords reads every vertical slice of s in time order.
func GetChords(s *smf.SMF) (chords []model.Chord, err error) {
	defer func() {
		if r := recover(); r != nil {
			chords, err = nil, fmt.Errorf("could not slice midi file: %v", r)
		}
	}()
	return Slice(ReduceEvents(s)), nil
}
