package degree

import (
	"fmt"
	"testing"

	"github.com/jsphweid/harmonfunc/pitch"
	"github.com/stretchr/testify/assert"
)

// pitches for degrees 1..7, one row per alteration prefix
var byTonic = map[string]map[string][7]string{
	"C": {
		"":   {"C", "D", "E", "F", "G", "A", "B"},
		"-":  {"C-", "D-", "E-", "F-", "G-", "A-", "B-"},
		"#":  {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
		"--": {"C--", "D--", "E--", "F--", "G--", "A--", "B--"},
		"##": {"C##", "D##", "E##", "F##", "G##", "A##", "B##"},
	},
	"D": {
		"":   {"D", "E", "F#", "G", "A", "B", "C#"},
		"-":  {"D-", "E-", "F", "G-", "A-", "B-", "C"},
		"#":  {"D#", "E#", "F##", "G#", "A#", "B#", "C##"},
		"--": {"D--", "E--", "F-", "G--", "A--", "B--", "C-"},
		"##": {"D##", "E##", "F###", "G##", "A##", "B##", "C###"},
	},
	"E-": {
		"":   {"E-", "F", "G", "A-", "B-", "C", "D"},
		"-":  {"E--", "F-", "G-", "A--", "B--", "C-", "D-"},
		"#":  {"E", "F#", "G#", "A", "B", "C#", "D#"},
		"--": {"E---", "F--", "G--", "A---", "B---", "C--", "D--"},
		"##": {"E#", "F##", "G##", "A#", "B#", "C##", "D##"},
	},
	"C#": {
		"":   {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
		"-":  {"C", "D", "E", "F", "G", "A", "B"},
		"#":  {"C##", "D##", "E##", "F##", "G##", "A##", "B##"},
		"--": {"C-", "D-", "E-", "F-", "G-", "A-", "B-"},
		"##": {"C###", "D###", "E###", "F###", "G###", "A###", "B###"},
	},
	"C-": {
		"":   {"C-", "D-", "E-", "F-", "G-", "A-", "B-"},
		"-":  {"C--", "D--", "E--", "F--", "G--", "A--", "B--"},
		"#":  {"C", "D", "E", "F", "G", "A", "B"},
		"--": {"C---", "D---", "E---", "F---", "G---", "A---", "B---"},
		"##": {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
	},
}

func TestOf(t *testing.T) {
	for tonic, rows := range byTonic {
		k := pitch.MustParseKey(tonic)
		for prefix, names := range rows {
			for i, name := range names {
				want := fmt.Sprintf("%s%d", prefix, i+1)
				t.Run(tonic+"/"+name, func(t *testing.T) {
					assert.Equal(t, want, Of(k, pitch.MustParse(name)))
				})
			}
		}
	}
}

func TestOfIgnoresRegisterAndMode(t *testing.T) {
	assert := assert.New(t)

	for _, key := range []string{"C", "c"} {
		k := pitch.MustParseKey(key)
		for _, name := range []string{"C", "C4", "C5", "C3", "C20", "C0"} {
			assert.Equal("1", Of(k, pitch.MustParse(name)), key+" "+name)
		}
	}
}

func TestOfUnnameable(t *testing.T) {
	k := pitch.MustParseKey("C")
	assert.Equal(t, "", Of(k, pitch.MustParse("E###")))
	assert.Equal(t, "", Of(k, pitch.MustParse("G---")))
}

func TestHelpers(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(4, Digit("#4"))
	assert.Equal(7, Digit("--7"))
	assert.Equal(0, Digit(""))

	assert.True(IsSingleFlat("-2"))
	assert.False(IsSingleFlat("--2"))
	assert.False(IsSingleFlat("2"))
	assert.True(IsSingleSharp("#4"))
	assert.False(IsSingleSharp("##4"))
}
