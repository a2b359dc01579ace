package annotate

import (
	"bytes"
	"testing"

	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/model"
	"github.com/stretchr/testify/assert"
)

func TestLyricTrack(t *testing.T) {
	chords := []model.LabeledChord{
		{AbsTicks: 0, Label: "T(1)", VerboseLabel: "C:Tba,C:Tag,C:Tas"},
		{AbsTicks: 480, Label: "S(4)", VerboseLabel: "C:Sba,C:Sag,C:Sas"},
		{AbsTicks: 1200, Label: "D(5)", VerboseLabel: "C:Dba,C:Dag,C:Das"},
	}

	track := LyricTrack(chords, harmony.Concise)

	assert := assert.New(t)
	// name, three lyrics, end of track
	assert.Len(track, 5)
	assert.Equal(uint32(0), track[1].Delta)
	assert.Equal(uint32(480), track[2].Delta)
	assert.Equal(uint32(720), track[3].Delta)
	assert.True(bytes.Contains(track[2].Message, []byte("S(4)")))

	verbose := LyricTrack(chords, harmony.Verbose)
	assert.True(bytes.Contains(verbose[1].Message, []byte("C:Tba,C:Tag,C:Tas")))
}

func TestLyricTrackSameTick(t *testing.T) {
	chords := []model.LabeledChord{
		{AbsTicks: 100, Label: "T(1)"},
		{AbsTicks: 100, Label: "T(3)"},
	}

	track := LyricTrack(chords, harmony.Concise)
	assert.Equal(t, uint32(100), track[1].Delta)
	assert.Equal(t, uint32(0), track[2].Delta)
}
