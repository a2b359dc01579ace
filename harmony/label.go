package harmony

import (
	"fmt"
	"sort"

	"github.com/jsphweid/harmonfunc/degree"
	"github.com/jsphweid/harmonfunc/pitch"
)

// Voices orders the pitches from low to high and prepares each for reconciliation.
func Voices(k pitch.Key, pitches []pitch.Pitch) []Voice {
	sorted := append([]pitch.Pitch(nil), pitches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MIDI() < sorted[j].MIDI()
	})

	voices := make([]Voice, len(sorted))
	for i, p := range sorted {
		pos := Middle
		switch {
		case len(sorted) == 1:
			pos = Solo
		case i == 0:
			pos = Lowest
		case i == len(sorted)-1:
			pos = Highest
		}
		d := degree.Of(k, p)
		voices[i] = Voice{Key: k, Degree: d, Position: pos, Candidates: Candidates(k, d, pos)}
	}
	return voices
}

// Analyze resolves the functions of a chord given as pitches in any order.
func Analyze(k pitch.Key, pitches []pitch.Pitch) (FunctionalChord, error) {
	if len(pitches) == 0 {
		return FunctionalChord{}, fmt.Errorf("%w: chord has no pitches", ErrNonsensicalInput)
	}
	return Reconcile(Voices(k, pitches)), nil
}

// LabelChord analyses the chord and renders it as "concise" or "verbose".
func LabelChord(k pitch.Key, pitches []pitch.Pitch, verbosity string) (string, error) {
	v, err := ParseVerbosity(verbosity)
	if err != nil {
		return "", err
	}
	c, err := Analyze(k, pitches)
	if err != nil {
		return "", err
	}
	return c.Render(v), nil
}
