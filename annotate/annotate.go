// Package annotate writes chord labels back into MIDI files as lyric events.
package annotate

import (
	"fmt"

	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func labelFor(c model.LabeledChord, v harmony.Verbosity) string {
	if v == harmony.Verbose {
		return c.VerboseLabel
	}
	return c.Label
}

// LyricTrack places each chord's label at the chord's tick. Chords must be in time
// order.
func LyricTrack(chords []model.LabeledChord, v harmony.Verbosity) smf.Track {
	var track smf.Track
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTrackSequenceName("harmonic functions")})

	var last uint64
	for _, c := range chords {
		delta := uint32(0)
		if c.AbsTicks > last {
			delta = uint32(c.AbsTicks - last)
			last = c.AbsTicks
		}
		track = append(track, smf.Event{Delta: delta, Message: smf.MetaLyric(labelFor(c, v))})
	}
	track.Close(0)
	return track
}

// Create returns a copy of mf with a lyric track of labels added.
func Create(mf *smf.SMF, chords []model.LabeledChord, v harmony.Verbosity) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		newTrack := append(smf.Track(nil), track...)
		res.Tracks = append(res.Tracks, newTrack)
	}
	res.Tracks = append(res.Tracks, LyricTrack(chords, v))
	return &res
}

// WriteFile annotates mf and writes the result to path.
func WriteFile(path string, mf *smf.SMF, chords []model.LabeledChord, v harmony.Verbosity) error {
	if err := Create(mf, chords, v).WriteFile(path); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
