package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a spelled, directed interval: Steps counts letter names moved and
// Semitones the chromatic distance. A descending major sixth is {-5, -9}.
type Interval struct {
	Steps     int
	Semitones int
}

// ParseInterval reads names such as "M2", "m3", "P8", "A4" or "dd5". A minus sign
// before the number descends, e.g. "M-6".
func ParseInterval(s string) (Interval, error) {
	i := 0
	for i < len(s) && strings.IndexByte("MmPAd", s[i]) >= 0 {
		i++
	}
	quality, rest := s[:i], s[i:]

	descending := strings.HasPrefix(rest, "-")
	rest = strings.TrimPrefix(rest, "-")

	number, err := strconv.Atoi(rest)
	if err != nil || number < 1 || quality == "" {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}

	steps := number - 1
	perfect := isPerfectClass(steps)
	var alteration int
	switch {
	case quality == "P" && perfect, quality == "M" && !perfect:
		alteration = 0
	case quality == "m" && !perfect:
		alteration = -1
	case quality == "A":
		alteration = 1
	case quality == "AA":
		alteration = 2
	case quality == "d" && perfect:
		alteration = -1
	case quality == "d":
		alteration = -2
	case quality == "dd" && perfect:
		alteration = -2
	case quality == "dd":
		alteration = -3
	default:
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}

	iv := Interval{
		Steps:     steps,
		Semitones: majorSemitones[steps%7] + 12*(steps/7) + alteration,
	}
	if descending {
		iv.Steps, iv.Semitones = -iv.Steps, -iv.Semitones
	}
	return iv, nil
}

func MustParseInterval(s string) Interval {
	iv, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return iv
}

// Between is the ascending interval from one pitch class to another, reduced to
// within the octave. Registers are ignored.
func Between(from, to Pitch) Interval {
	steps := mod(to.Letter-from.Letter, 7)
	natural := letterSemitones[mod(to.Letter, 7)] - letterSemitones[mod(from.Letter, 7)]
	if natural < 0 {
		natural += 12
	}
	return Interval{Steps: steps, Semitones: natural + to.Accidental - from.Accidental}
}

// Number is the generic interval number within the octave, 1 (unison) to 7.
func (iv Interval) Number() int {
	return mod(iv.Steps, 7) + 1
}

// Quality names the interval quality: "P", "M", "m", "A", "d", "AA" or "dd".
// Anything further altered returns "".
func (iv Interval) Quality() string {
	steps := mod(iv.Steps, 7)
	deviation := iv.Semitones - majorSemitones[steps] - 12*floorDiv(iv.Steps, 7)
	if isPerfectClass(steps) {
		switch deviation {
		case 0:
			return "P"
		case 1:
			return "A"
		case 2:
			return "AA"
		case -1:
			return "d"
		case -2:
			return "dd"
		}
		return ""
	}
	switch deviation {
	case 0:
		return "M"
	case -1:
		return "m"
	case 1:
		return "A"
	case 2:
		return "AA"
	case -2:
		return "d"
	case -3:
		return "dd"
	}
	return ""
}

func isPerfectClass(steps int) bool {
	switch mod(steps, 7) {
	case 0, 3, 4:
		return true
	}
	return false
}
