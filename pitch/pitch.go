package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPitch = errors.New("invalid pitch")

const letters = "CDEFGAB"

// semitones above C for each natural letter
var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// semitones above the tonic for each step of the major scale
var majorSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

const defaultOctave = 4

// Pitch is a spelled pitch. Letter is 0 for C through 6 for B and Accidental counts
// sharps (positive) or flats (negative).
type Pitch struct {
	Letter     int
	Accidental int
	Octave     int
}

// Parse reads names like "C", "F#3", "B--", "Eb5" or "e-4". A missing octave means 4.
func Parse(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pitch{}, fmt.Errorf("%w: empty name", ErrInvalidPitch)
	}

	letter := strings.IndexByte(letters, upper(s[0]))
	if letter < 0 {
		return Pitch{}, fmt.Errorf("%w: %q has no note letter", ErrInvalidPitch, s)
	}

	p := Pitch{Letter: letter, Octave: defaultOctave}
	i := 1
AccidentalLoop:
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			p.Accidental++
		case '-', 'b':
			p.Accidental--
		default:
			break AccidentalLoop
		}
	}

	if i < len(s) {
		octave, err := strconv.Atoi(s[i:])
		if err != nil || octave < 0 {
			return Pitch{}, fmt.Errorf("%w: %q has a bad octave", ErrInvalidPitch, s)
		}
		p.Octave = octave
	}
	return p, nil
}

func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseAll parses every name, failing on the first bad one.
func ParseAll(names []string) ([]Pitch, error) {
	res := make([]Pitch, 0, len(names))
	for _, name := range names {
		p, err := Parse(name)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// Name is the register-free spelling, e.g. "B-" or "F##".
func (p Pitch) Name() string {
	var sb strings.Builder
	sb.WriteByte(letters[mod(p.Letter, 7)])
	for i := 0; i < p.Accidental; i++ {
		sb.WriteByte('#')
	}
	for i := 0; i > p.Accidental; i-- {
		sb.WriteByte('-')
	}
	return sb.String()
}

func (p Pitch) String() string {
	return p.Name() + strconv.Itoa(p.Octave)
}

// MIDI is the key number, C4 == 60.
func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + letterSemitones[mod(p.Letter, 7)] + p.Accidental
}

func (p Pitch) PitchClass() int {
	return mod(p.MIDI(), 12)
}

// Transpose moves the pitch by a spelled interval, keeping the spelling implied by it.
func (p Pitch) Transpose(iv Interval) Pitch {
	index := p.Letter + iv.Steps
	octave := p.Octave + floorDiv(index, 7)
	letter := mod(index, 7)

	target := p.MIDI() + iv.Semitones
	natural := (octave+1)*12 + letterSemitones[letter]
	return Pitch{Letter: letter, Accidental: target - natural, Octave: octave}
}

// FromMIDI spells a key number in k: diatonic notes take the key's spelling and
// chromatic ones follow common tonal usage (raised 1, 4; lowered 3, 6, 7; lowered 2 in
// minor).
func FromMIDI(note int, k Key) Pitch {
	offset := mod(note-k.Tonic.PitchClass(), 12)
	sp := majorSpelling[offset]
	if k.Minor {
		sp = minorSpelling[offset]
	}

	dp := k.DegreePitch(sp.step)
	p := Pitch{Letter: dp.Letter, Accidental: dp.Accidental + sp.alteration}
	p.Octave = floorDiv(note-letterSemitones[p.Letter]-p.Accidental, 12) - 1
	return p
}

type spelling struct {
	step       int
	alteration int
}

var majorSpelling = [12]spelling{
	{1, 0}, {1, 1}, {2, 0}, {3, -1}, {3, 0}, {4, 0},
	{4, 1}, {5, 0}, {6, -1}, {6, 0}, {7, -1}, {7, 0},
}

var minorSpelling = [12]spelling{
	{1, 0}, {2, -1}, {2, 0}, {3, -1}, {3, 0}, {4, 0},
	{4, 1}, {5, 0}, {6, -1}, {6, 0}, {7, -1}, {7, 0},
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
