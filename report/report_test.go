package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/jsphweid/harmonfunc/model"
	"github.com/stretchr/testify/assert"
)

func chords(labels ...string) []model.LabeledChord {
	res := make([]model.LabeledChord, len(labels))
	for i, l := range labels {
		res[i] = model.LabeledChord{Label: l, Notes: model.Notes{48, 64, 67}}
	}
	return res
}

func TestSummarize(t *testing.T) {
	analyses := []model.Analysis{
		{ID: "a", Chords: chords("T(1)", "S(4)")},
		{ID: "b", Chords: chords("D^T(5)", "T(1)")},
	}
	analyses[1].Chords[0].Notes = model.Notes{43, 48, 64, 67, 71}

	s := Summarize(analyses)

	assert := assert.New(t)
	assert.Equal(2, s.NumAnalyses)
	assert.Equal(4, s.NumChords)
	assert.Equal(uint64(14), s.NumVoices)
	assert.InDelta(3.5, s.MeanVoices, 1e-9)
	assert.Equal(map[string]int{"T(1)": 2, "S(4)": 1, "D^T(5)": 1}, s.Labels)
	assert.Equal(map[string]int{"T": 2, "S": 1, "D": 1}, s.Functions)
	// -(0.5 ln 0.5 + 2 * 0.25 ln 0.25)
	assert.InDelta(1.5*math.Ln2, s.FunctionEntropy, 1e-9)
}

func TestSummarizeSingleFunction(t *testing.T) {
	s := Summarize([]model.Analysis{{Chords: chords("T(1)", "T(3)")}})
	assert.InDelta(t, 0, s.FunctionEntropy, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.NumChords)
	assert.Zero(t, s.MeanVoices)
	assert.Empty(t, s.Labels)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Summarize([]model.Analysis{{Chords: chords("T(1)", "D(5)")}}).Write(&buf)

	out := buf.String()
	assert.Contains(t, out, "chords: 2\n")
	assert.Contains(t, out, "functions: D=1 T=1\n")
	assert.Contains(t, out, "mean voices per chord: 3.00\n")
}
