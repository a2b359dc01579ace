// Package degree names the scale degree of a spelled pitch relative to a key tonic.
package degree

import (
	"strconv"

	"github.com/jsphweid/harmonfunc/pitch"
)

// Of returns the degree of p in k as an alteration prefix plus a digit: "1", "-3",
// "#4", "--7". Registers and mode are ignored. Intervals too altered to name give "".
func Of(k pitch.Key, p pitch.Pitch) string {
	iv := pitch.Between(k.Tonic, p)
	number := iv.Number()

	prefix, ok := prefixFor(iv.Quality(), number)
	if !ok {
		return ""
	}
	return prefix + strconv.Itoa(number)
}

func prefixFor(quality string, number int) (string, bool) {
	switch quality {
	case "M", "P":
		return "", true
	case "m":
		return "-", true
	case "A":
		return "#", true
	case "d":
		if number == 1 || number == 4 || number == 5 {
			return "-", true
		}
		return "--", true
	case "AA":
		return "##", true
	case "dd":
		return "--", true
	}
	return "", false
}

// Digit is the trailing scale step of a degree string, or 0 when there is none.
func Digit(d string) int {
	if d == "" {
		return 0
	}
	n, err := strconv.Atoi(d[len(d)-1:])
	if err != nil {
		return 0
	}
	return n
}

// IsSingleFlat reports degrees like "-2": exactly one flat before the digit.
func IsSingleFlat(d string) bool {
	return len(d) == 2 && d[0] == '-'
}

// IsSingleSharp reports degrees like "#4".
func IsSingleSharp(d string) bool {
	return len(d) == 2 && d[0] == '#'
}
