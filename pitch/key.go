package pitch

import (
	"fmt"
	"strings"
	"unicode"
)

// Key is a tonic plus mode. An upper-case tonic name means major, lower-case minor.
type Key struct {
	Tonic Pitch
	Minor bool
}

// ParseKey accepts "C", "f#", "B-", "Eb major" or "c minor".
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Key{}, fmt.Errorf("%w: bad key %q", ErrInvalidPitch, s)
	}

	tonic, err := Parse(fields[0])
	if err != nil {
		return Key{}, err
	}
	if tonic.Octave != defaultOctave || strings.ContainsAny(fields[0], "0123456789") {
		return Key{}, fmt.Errorf("%w: key %q should not name an octave", ErrInvalidPitch, s)
	}

	k := Key{Tonic: tonic, Minor: unicode.IsLower(rune(fields[0][0]))}
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "major":
			k.Minor = false
		case "minor":
			k.Minor = true
		default:
			return Key{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidPitch, fields[1])
		}
	}
	return k, nil
}

func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Name is the tonic spelling, e.g. "E-".
func (k Key) Name() string {
	return k.Tonic.Name()
}

func (k Key) String() string {
	if k.Minor {
		return strings.ToLower(k.Name()[:1]) + k.Name()[1:] + " minor"
	}
	return k.Name() + " major"
}

// Same reports whether both keys share a tonic. Mode plays no part.
func (k Key) Same(other Key) bool {
	return strings.EqualFold(k.Name(), other.Name())
}

// DegreePitch is the major-scale pitch on step n (1..7, wrapping) above the tonic.
// Minor keys use the major scale too, so alterations read the same in either mode.
func (k Key) DegreePitch(n int) Pitch {
	steps := mod(n-1, 7)
	return k.Tonic.Transpose(Interval{Steps: steps, Semitones: majorSemitones[steps]})
}
