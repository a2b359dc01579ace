// Package analysis labels the chord slices of whole pieces.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonfunc/chord"
	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/logger"
	"github.com/jsphweid/harmonfunc/midi"
	"github.com/jsphweid/harmonfunc/model"
	"github.com/jsphweid/harmonfunc/pitch"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/sync/errgroup"
)

// LabelNotes spells MIDI notes in k and labels them as one chord.
func LabelNotes(k pitch.Key, notes model.Notes) (model.LabeledChord, error) {
	pitches := make([]pitch.Pitch, len(notes))
	for i, n := range notes {
		pitches[i] = pitch.FromMIDI(int(n), k)
	}
	return LabelPitches(k, pitches)
}

func LabelPitches(k pitch.Key, pitches []pitch.Pitch) (model.LabeledChord, error) {
	fc, err := harmony.Analyze(k, pitches)
	if err != nil {
		return model.LabeledChord{}, err
	}

	voices := harmony.Voices(k, pitches)
	lc := model.LabeledChord{
		Label:        fc.Label(),
		VerboseLabel: fc.VerboseLabel(),
	}
	for _, v := range voices {
		lc.Degrees = append(lc.Degrees, v.Degree)
	}
	for _, p := range sortedByMIDI(pitches) {
		lc.Pitches = append(lc.Pitches, p.String())
		lc.Notes = append(lc.Notes, uint8(p.MIDI()))
	}
	return lc, nil
}

// LabelChords labels every chord with up to workers goroutines. Results keep the
// order of chords.
func LabelChords(ctx context.Context, k pitch.Key, chords []model.Chord, workers int) ([]model.LabeledChord, error) {
	if workers < 1 {
		workers = 1
	}
	res := make([]model.LabeledChord, len(chords))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range chords {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lc, err := LabelNotes(k, chords[i].Notes)
			if err != nil {
				return fmt.Errorf("chord at tick %d: %w", chords[i].AbsTicks, err)
			}
			lc.AbsTicks = chords[i].AbsTicks
			lc.Offset = float64(chords[i].Offset) / float64(time.Second/time.Microsecond)
			res[i] = lc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// AnalyzeSMF slices and labels a parsed MIDI file.
func AnalyzeSMF(ctx context.Context, s *smf.SMF, k pitch.Key, source, runID string, workers int) (model.Analysis, error) {
	chords, err := chord.GetChords(s)
	if err != nil {
		return model.Analysis{}, err
	}

	start := time.Now()
	labeled, err := LabelChords(ctx, k, chords, workers)
	if err != nil {
		return model.Analysis{}, err
	}
	logger.Debug("Labeled chords", logger.Fields{
		"source":      source,
		"chords":      len(labeled),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return model.Analysis{
		ID:        uuid.NewString(),
		RunID:     runID,
		Source:    source,
		Key:       k.Name(),
		CreatedAt: time.Now().UTC(),
		Chords:    labeled,
	}, nil
}

// AnalyzeFile reads and analyses one MIDI file from disk.
func AnalyzeFile(ctx context.Context, path string, k pitch.Key, runID string, workers int) (model.Analysis, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Analysis{}, err
	}
	return AnalyzeSMF(ctx, s, k, path, runID, workers)
}

func sortedByMIDI(pitches []pitch.Pitch) []pitch.Pitch {
	sorted := append([]pitch.Pitch(nil), pitches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MIDI() < sorted[j].MIDI()
	})
	return sorted
}
