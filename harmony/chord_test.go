package harmony

import (
	"testing"

	"github.com/jsphweid/harmonfunc/pitch"
	"github.com/stretchr/testify/assert"
)

func TestNewFunctionalChord(t *testing.T) {
	assert := assert.New(t)

	a := MustFunctionalNote(cMajor, Tonic, Base, "1")
	b := MustFunctionalNote(cMajor, Tonic, Agent, "3")
	c := MustFunctionalNote(cMajor, Tonic, Associate, "5")

	others := []FunctionalNote{b, c, a}
	chord := NewFunctionalChord(a, others, WithKey(cMajor))
	assert.Equal(cMajor, chord.Key())
	assert.Equal(a, chord.Bass())
	assert.Equal([]FunctionalNote{b, c, a}, chord.Others())
	assert.Equal([]FunctionalNote{a, b, c, a}, chord.Notes())

	// later changes to the caller's slice do not leak in
	others[0] = c
	assert.Equal(b, chord.Others()[0])

	alone := NewFunctionalChord(a, nil)
	assert.Equal(cMajor, alone.Key())
	assert.Empty(alone.Others())
	assert.Equal([]FunctionalNote{a}, alone.Notes())

	g := pitch.MustParseKey("G")
	assert.Equal(g, NewFunctionalChord(a, nil, WithKey(g)).Key())
}

func TestChordLabel(t *testing.T) {
	tests := []struct {
		notes string
		want  string
	}{
		{"Tba1 Tag3 Tas5", "T(1)"},
		{"Tba1 Tag4 Tba1 Tas5", "T(1)"},
		{"Tba1", "T(1)"},
		{"Tag3 Tba1 Tas5", "T(3)"},
		{"Dba5 Tag3 Tba1 Tas5", "D^T(5)"},
		{"Sag-6 Tba1 Tag3 Tas5", "S^T(-6)"},
		{"Tba1 Sag6 Dag7", "T^SD(1)"},
		{"Tba1 Dag7 Sag6", "T^SD(1)"},
		{"Dba5 Dag7 Tag3 Sag6", "D^ST(5)"},
		{"Uun2 Tag3 Tba1", "U^T(2)"},
		{"Sba4 Uun2 Uun3", "S(4)"},
		{"Uun2 Uun1 Uun5", "U(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.notes, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChord(t, tt.notes).Label())
		})
	}
}

func TestChordVerboseLabel(t *testing.T) {
	assert := assert.New(t)

	chord := parseChord(t, "Tba1 Tag3 Tas5 Tba1")
	assert.Equal("C:Tba,C:Tag,C:Tas,C:Tba", chord.VerboseLabel())
	assert.Equal(chord.VerboseLabel(), chord.Render(Verbose))
	assert.Equal("T(1)", chord.Render(Concise))
	assert.Equal("T(1)", chord.String())
}

func TestChordEqual(t *testing.T) {
	assert := assert.New(t)

	a := parseChord(t, "Tba1 Tag3 Tas5")
	assert.True(a.Equal(parseChord(t, "Tba1 Tag3 Tas5")))
	assert.True(a.Equal(parseChord(t, "Tba1 Tas5 Tag3")))
	assert.False(a.Equal(parseChord(t, "Tag3 Tba1 Tas5")))
	assert.False(a.Equal(parseChord(t, "Tba1 Tag3")))
	assert.False(a.Equal(parseChord(t, "Tba1 Tag3 Tas5 Tas5")))
	assert.False(parseChord(t, "Tba1 Tag3 Tag3 Tas5").Equal(parseChord(t, "Tba1 Tag3 Tas5 Tas5")))

	minor := NewFunctionalChord(a.Bass(), a.Others(), WithKey(pitch.MustParseKey("c")))
	assert.True(a.Equal(minor))
	other := NewFunctionalChord(a.Bass(), a.Others(), WithKey(pitch.MustParseKey("G")))
	assert.False(a.Equal(other))
}
