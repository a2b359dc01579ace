package harmony

import "github.com/jsphweid/harmonfunc/pitch"

const maxReconcilePasses = 10

// Voice is one pitch of a chord awaiting resolution.
type Voice struct {
	Key        pitch.Key
	Degree     string
	Position   VoicePosition
	Candidates []Candidate
}

// Reconcile resolves every voice to one function. voices[0] is the lowest voice and
// the rest follow in ascending order; there must be at least one. Voices left open
// after the passes settle become Unknown in their own key and degree.
func Reconcile(voices []Voice) FunctionalChord {
	if len(voices) == 0 {
		return FunctionalChord{}
	}

	resolved := make([]*FunctionalNote, len(voices))
	resolve := func(i int, n *FunctionalNote) bool {
		if n == nil {
			return false
		}
		resolved[i] = n
		return true
	}

	for pass := 0; pass < maxReconcilePasses; pass++ {
		progress := false

		if resolved[0] == nil {
			n := pick(voices[0].Candidates, IsGuaranteed, resolved)
			if n == nil {
				n = pick(voices[0].Candidates, IsPresent, resolved)
			}
			progress = resolve(0, n) || progress
		}

		for i := 1; i < len(voices); i++ {
			if resolved[i] != nil {
				continue
			}
			var n *FunctionalNote
			if resolved[0] != nil {
				n = pick(voices[i].Candidates, IsLowestVoice, resolved)
			}
			if n == nil {
				n = pick(voices[i].Candidates, IsPresent, resolved)
			}
			if n == nil {
				n = pick(voices[i].Candidates, IsGuaranteed, resolved)
			}
			progress = resolve(i, n) || progress
		}

		if !progress || allResolved(resolved) {
			break
		}
	}

	notes := make([]FunctionalNote, len(voices))
	for i, v := range voices {
		if resolved[i] != nil {
			notes[i] = *resolved[i]
		} else {
			notes[i] = note(v.Key, UnknownFunction, UnknownRole, v.Degree)
		}
	}
	return NewFunctionalChord(notes[0], notes[1:], WithKey(voices[0].Key))
}

// pick returns the last candidate of the given kind whose conditions all hold.
func pick(cands []Candidate, kind Contingency, resolved []*FunctionalNote) *FunctionalNote {
	var found *FunctionalNote
	for i := range cands {
		if cands[i].Contingency() == kind && cands[i].holds(resolved) {
			found = &cands[i].Note
		}
	}
	return found
}

func allResolved(resolved []*FunctionalNote) bool {
	for _, r := range resolved {
		if r == nil {
			return false
		}
	}
	return true
}
