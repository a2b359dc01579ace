package harmony

import (
	"strings"

	"github.com/jsphweid/harmonfunc/degree"
	"github.com/jsphweid/harmonfunc/pitch"
)

// Candidate is a function a voice may take once every one of its conditions holds.
type Candidate struct {
	Note       FunctionalNote
	Conditions []Condition
}

// Contingency is the kind of the first condition, which decides when the candidate
// is considered.
func (c Candidate) Contingency() Contingency {
	if len(c.Conditions) == 0 {
		return IsGuaranteed
	}
	return c.Conditions[0].Contingency
}

func (c Candidate) Equal(o Candidate) bool {
	if !c.Note.Equal(o.Note) || len(c.Conditions) != len(o.Conditions) {
		return false
	}
	for i := range c.Conditions {
		if !c.Conditions[i].Equal(o.Conditions[i]) {
			return false
		}
	}
	return true
}

func (c Candidate) String() string {
	conds := make([]string, 0, len(c.Conditions))
	for _, cond := range c.Conditions {
		conds = append(conds, cond.String())
	}
	return c.Note.String() + ", " + strings.Join(conds, " and ")
}

func (c Candidate) holds(resolved []*FunctionalNote) bool {
	for _, cond := range c.Conditions {
		if !cond.holds(resolved) {
			return false
		}
	}
	return true
}

var (
	appliedSubdominantShift = pitch.MustParseInterval("M-6")
	appliedDominantShift    = pitch.MustParseInterval("M2")
)

func appliedKey(k pitch.Key, deg string, shift pitch.Interval) pitch.Key {
	return pitch.Key{Tonic: k.DegreePitch(degree.Digit(deg)).Transpose(shift)}
}

// Candidates lists every function the degree could serve in key k from the given
// voice position. An empty result means the degree has no recognised function.
func Candidates(k pitch.Key, deg string, pos VoicePosition) []Candidate {
	var res []Candidate
	add := func(n FunctionalNote, conds ...Condition) {
		res = append(res, Candidate{Note: n, Conditions: conds})
	}
	present := func(f HarmonicFunction, r FunctionalRole, d string) Condition {
		return PresentWith(note(k, f, r, d))
	}
	lowestIs := func(f HarmonicFunction, r FunctionalRole, d string) Condition {
		return LowestVoiceIs(note(k, f, r, d))
	}

	// applied subdominant agents; the flat agents -3, -6 and -7 are handled below
	switch deg {
	case "-1", "-2", "-4", "-5":
		ak := appliedKey(k, deg, appliedSubdominantShift)
		add(note(ak, Subdominant, Agent, deg), PresentWith(note(ak, Subdominant, Base, "4")))
	}

	switch deg {
	case "3", "-3":
		add(note(k, Tonic, Agent, deg), Guaranteed())
	case "6", "-6":
		add(note(k, Subdominant, Agent, deg), Guaranteed())
	case "7", "-7":
		add(note(k, Dominant, Agent, deg), Guaranteed())
	}

	if pos == Lowest {
		switch deg {
		case "1":
			add(note(k, Tonic, Base, "1"), Guaranteed())
		case "4":
			add(note(k, Subdominant, Base, "4"), Guaranteed())
		case "5":
			add(note(k, Dominant, Base, "5"), Guaranteed())
		}
	} else {
		switch deg {
		case "1":
			add(note(k, Tonic, Base, "1"), present(Tonic, Agent, "3"))
			add(note(k, Tonic, Base, "1"), present(Tonic, Agent, "-3"))
			add(note(k, Subdominant, Associate, "1"), present(Subdominant, Agent, "6"))
			add(note(k, Subdominant, Associate, "1"), present(Subdominant, Agent, "-6"))
			add(note(k, Subdominant, Associate, "1"), lowestIs(Subdominant, Base, "4"))
		case "4":
			add(note(k, Subdominant, Base, "4"), present(Subdominant, Agent, "6"))
			add(note(k, Subdominant, Base, "4"), present(Subdominant, Agent, "-6"))
		case "5":
			add(note(k, Dominant, Base, "5"), present(Dominant, Agent, "7"))
			add(note(k, Dominant, Base, "5"), present(Dominant, Agent, "-7"))
			add(note(k, Tonic, Associate, "5"), present(Tonic, Agent, "3"))
			add(note(k, Tonic, Associate, "5"), present(Tonic, Agent, "-3"))
			add(note(k, Tonic, Associate, "5"), lowestIs(Tonic, Base, "1"))
		}
	}

	if deg == "2" {
		add(note(k, Dominant, Associate, "2"), present(Dominant, Agent, "7"))
		add(note(k, Dominant, Associate, "2"), present(Dominant, Agent, "-7"))
		if pos != Lowest {
			add(note(k, Dominant, Associate, "2"), lowestIs(Dominant, Base, "5"))
		}
	} else if degree.IsSingleSharp(deg) {
		ak := appliedKey(k, deg, appliedDominantShift)
		add(note(ak, Dominant, Agent, "7"), PresentWith(note(ak, Dominant, Base, "5")))
		add(note(ak, Dominant, Agent, "7"),
			PresentWith(note(ak, Dominant, Associate, "2")),
			PresentWith(note(ak, UnknownFunction, UnknownRole, "4")))
	}

	return res
}
