package harmony

import (
	"strings"

	"github.com/jsphweid/harmonfunc/pitch"
)

// FunctionalChord is a resolved chord: the bass note plus the notes above it in
// ascending order.
type FunctionalChord struct {
	key    pitch.Key
	bass   FunctionalNote
	others []FunctionalNote
}

type ChordOption func(*FunctionalChord)

// WithKey sets the chord's key. Without it the chord takes the bass note's key.
func WithKey(k pitch.Key) ChordOption {
	return func(c *FunctionalChord) {
		c.key = k
	}
}

func NewFunctionalChord(bass FunctionalNote, others []FunctionalNote, opts ...ChordOption) FunctionalChord {
	c := FunctionalChord{
		key:    bass.key,
		bass:   bass,
		others: append([]FunctionalNote(nil), others...),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c FunctionalChord) Key() pitch.Key { return c.key }

func (c FunctionalChord) Bass() FunctionalNote { return c.bass }

func (c FunctionalChord) Others() []FunctionalNote {
	return append([]FunctionalNote(nil), c.others...)
}

// Notes is the bass followed by the others.
func (c FunctionalChord) Notes() []FunctionalNote {
	return append([]FunctionalNote{c.bass}, c.others...)
}

// Equal ignores mode and the order of the upper notes, but not how often each occurs.
func (c FunctionalChord) Equal(o FunctionalChord) bool {
	if !c.key.Same(o.key) || !c.bass.Equal(o.bass) || len(c.others) != len(o.others) {
		return false
	}

	used := make([]bool, len(o.others))
	for _, n := range c.others {
		found := false
		for i, m := range o.others {
			if !used[i] && n.Equal(m) {
				used[i], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var labelPriority = []HarmonicFunction{Subdominant, Tonic, Dominant}

// Label is the concise form: bass function, then "^" and any other functions among
// S, T and D, then the bass degree, e.g. "D^T(5)".
func (c FunctionalChord) Label() string {
	present := map[HarmonicFunction]bool{}
	for _, n := range c.others {
		if n.function != c.bass.function {
			present[n.function] = true
		}
	}

	label, _ := c.bass.function.Letter()
	extra := ""
	for _, f := range labelPriority {
		if present[f] {
			letter, _ := f.Letter()
			extra += letter
		}
	}
	if extra != "" {
		label += "^" + extra
	}
	return label + "(" + c.bass.degree + ")"
}

// VerboseLabel lists every note label from the bass up, e.g. "C:Tba,C:Tag,C:Tas".
func (c FunctionalChord) VerboseLabel() string {
	labels := make([]string, 0, len(c.others)+1)
	for _, n := range c.Notes() {
		labels = append(labels, n.Label())
	}
	return strings.Join(labels, ",")
}

func (c FunctionalChord) Render(v Verbosity) string {
	if v == Verbose {
		return c.VerboseLabel()
	}
	return c.Label()
}

func (c FunctionalChord) String() string {
	return c.Label()
}
