package harmony

import (
	"strings"
	"testing"

	"github.com/jsphweid/harmonfunc/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cMajor = pitch.MustParseKey("C")

var (
	functionCodes = map[byte]HarmonicFunction{'S': Subdominant, 'T': Tonic, 'D': Dominant, 'U': UnknownFunction}
	roleCodes     = map[string]FunctionalRole{"ba": Base, "ag": Agent, "as": Associate, "un": UnknownRole}
)

// parseNote reads shorthand like "Tag-3" as a note in C.
func parseNote(t *testing.T, s string) FunctionalNote {
	t.Helper()
	require.True(t, len(s) >= 4, s)
	f, ok := functionCodes[s[0]]
	require.True(t, ok, s)
	r, ok := roleCodes[s[1:3]]
	require.True(t, ok, s)
	return MustFunctionalNote(cMajor, f, r, s[3:])
}

func parseChord(t *testing.T, s string) FunctionalChord {
	t.Helper()
	var notes []FunctionalNote
	for _, f := range strings.Fields(s) {
		notes = append(notes, parseNote(t, f))
	}
	return NewFunctionalChord(notes[0], notes[1:])
}

// voicesFor builds voices in C from degrees listed low to high.
func voicesFor(degrees string) []Voice {
	fields := strings.Fields(degrees)
	voices := make([]Voice, len(fields))
	for i, d := range fields {
		pos := Middle
		switch {
		case i == 0:
			pos = Lowest
		case i == len(fields)-1:
			pos = Highest
		}
		voices[i] = Voice{Key: cMajor, Degree: d, Position: pos, Candidates: Candidates(cMajor, d, pos)}
	}
	return voices
}

func TestFunctionLetters(t *testing.T) {
	assert := assert.New(t)

	for f, want := range map[HarmonicFunction]string{Subdominant: "S", Tonic: "T", Dominant: "D", UnknownFunction: "U"} {
		got, err := f.Letter()
		assert.NoError(err)
		assert.Equal(want, got)
	}
	assert.Equal("Unknown function", UnknownFunction.String())
	assert.Equal("Subdominant", Subdominant.String())

	_, err := HarmonicFunction(42).Letter()
	assert.ErrorIs(err, ErrNonsensicalInput)
	assert.Contains(err.Error(), "42")
}

func TestRoleLetters(t *testing.T) {
	assert := assert.New(t)

	for r, want := range map[FunctionalRole]string{Base: "ba", Agent: "ag", Associate: "as", UnknownRole: "un"} {
		got, err := r.Letter()
		assert.NoError(err)
		assert.Equal(want, got)
	}
	assert.Equal("unknown role", UnknownRole.String())

	_, err := FunctionalRole(-1).Letter()
	assert.ErrorIs(err, ErrNonsensicalInput)
}

func TestVoicePositionNames(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"lowest", "middle", "highest", "solo"} {
		p, err := ParseVoicePosition(name)
		assert.NoError(err)
		assert.Equal(name, p.String())
	}

	_, err := VoicePosition(42).Name()
	assert.ErrorIs(err, ErrNonsensicalInput)
	_, err = ParseVoicePosition("bottom")
	assert.ErrorIs(err, ErrNonsensicalInput)
}

func TestParseVerbosity(t *testing.T) {
	assert := assert.New(t)

	v, err := ParseVerbosity("verbose")
	assert.NoError(err)
	assert.Equal(Verbose, v)

	_, err = ParseVerbosity("loud")
	assert.ErrorIs(err, ErrNonsensicalInput)
	assert.Contains(err.Error(), "loud")
}

func TestConditionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("guaranteed", Guaranteed().String())
	assert.Equal("true if lowest voice is A", LowestVoiceIs(DegreeDependency("A")).String())
	assert.Equal("true in presence of B", PresentWith(DegreeDependency("B")).String())
}

func TestConditionEqual(t *testing.T) {
	assert := assert.New(t)

	a := Condition{Contingency: IsGuaranteed, Dependency: DegreeDependency("A")}
	b := LowestVoiceIs(DegreeDependency("B"))
	c := PresentWith(DegreeDependency("C"))
	for _, x := range []Condition{a, b, c} {
		assert.True(x.Equal(x))
	}
	assert.False(a.Equal(b))
	assert.False(b.Equal(a))
	assert.False(a.Equal(c))
	assert.False(c.Equal(b))

	// the dependency of a guaranteed condition is never consulted
	assert.True(a.Equal(Condition{Contingency: IsGuaranteed, Dependency: DegreeDependency("B")}))
	assert.False(b.Equal(LowestVoiceIs(DegreeDependency("A"))))

	tba1 := MustFunctionalNote(cMajor, Tonic, Base, "1")
	assert.True(LowestVoiceIs(tba1).Equal(LowestVoiceIs(MustFunctionalNote(cMajor, Tonic, Base, "1"))))
	assert.False(LowestVoiceIs(tba1).Equal(LowestVoiceIs(MustFunctionalNote(cMajor, Tonic, Agent, "3"))))
	assert.False(LowestVoiceIs(tba1).Equal(PresentWith(tba1)))
	assert.False(PresentWith(tba1).Equal(PresentWith(DegreeDependency("1"))))
}

func TestFunctionalNote(t *testing.T) {
	assert := assert.New(t)

	n := MustFunctionalNote(pitch.MustParseKey("c"), Tonic, Agent, "-3")
	assert.Equal("^-3 as Tonic agent in C", n.String())
	n = MustFunctionalNote(pitch.MustParseKey("c#"), Subdominant, Associate, "1")
	assert.Equal("^1 as Subdominant associate in C#", n.String())

	assert.Equal("D-:Sas", MustFunctionalNote(pitch.MustParseKey("D-"), Subdominant, Associate, "1").Label())
	assert.Equal("F:Uun", MustFunctionalNote(pitch.MustParseKey("F"), UnknownFunction, UnknownRole, "-4").Label())
	assert.Equal("E:Dba", MustFunctionalNote(pitch.MustParseKey("E"), Dominant, Base, "5").Label())

	_, err := NewFunctionalNote(cMajor, HarmonicFunction(9), Base, "1")
	assert.ErrorIs(err, ErrNonsensicalInput)
	_, err = NewFunctionalNote(cMajor, Tonic, FunctionalRole(9), "1")
	assert.ErrorIs(err, ErrNonsensicalInput)
}

func TestFunctionalNoteEqual(t *testing.T) {
	assert := assert.New(t)

	fSharp := pitch.MustParseKey("F#")
	a := MustFunctionalNote(fSharp, Dominant, Agent, "7")
	assert.True(a.Equal(MustFunctionalNote(fSharp, Dominant, Agent, "7")))
	assert.False(a.Equal(MustFunctionalNote(fSharp, Dominant, Agent, "-7")))
	assert.False(a.Equal(MustFunctionalNote(fSharp, Dominant, Base, "7")))
	assert.False(a.Equal(MustFunctionalNote(fSharp, Tonic, Agent, "7")))
	assert.False(a.Equal(MustFunctionalNote(pitch.MustParseKey("G"), Dominant, Agent, "7")))
	assert.True(a.Equal(MustFunctionalNote(pitch.MustParseKey("f#"), Dominant, Agent, "7")))
}
