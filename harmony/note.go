package harmony

import (
	"fmt"

	"github.com/jsphweid/harmonfunc/pitch"
)

// FunctionalNote is one voice's function: the key it is read in, the function and
// role it serves there, and the scale degree that produced it. Values are immutable.
type FunctionalNote struct {
	key      pitch.Key
	function HarmonicFunction
	role     FunctionalRole
	degree   string
}

// NewFunctionalNote validates the function and role before building the note.
func NewFunctionalNote(k pitch.Key, f HarmonicFunction, r FunctionalRole, degree string) (FunctionalNote, error) {
	if _, err := f.Letter(); err != nil {
		return FunctionalNote{}, err
	}
	if _, err := r.Letter(); err != nil {
		return FunctionalNote{}, err
	}
	return note(k, f, r, degree), nil
}

func MustFunctionalNote(k pitch.Key, f HarmonicFunction, r FunctionalRole, degree string) FunctionalNote {
	n, err := NewFunctionalNote(k, f, r, degree)
	if err != nil {
		panic(err)
	}
	return n
}

func note(k pitch.Key, f HarmonicFunction, r FunctionalRole, degree string) FunctionalNote {
	return FunctionalNote{key: k, function: f, role: r, degree: degree}
}

func (n FunctionalNote) Key() pitch.Key { return n.key }

func (n FunctionalNote) Function() HarmonicFunction { return n.function }

func (n FunctionalNote) Role() FunctionalRole { return n.role }

func (n FunctionalNote) Degree() string { return n.degree }

// Equal compares tonic, function, role and degree. Mode is not compared.
func (n FunctionalNote) Equal(o FunctionalNote) bool {
	return n.key.Same(o.key) &&
		n.function == o.function &&
		n.role == o.role &&
		n.degree == o.degree
}

// Label is the short form, e.g. "D-:Sas".
func (n FunctionalNote) Label() string {
	f, _ := n.function.Letter()
	r, _ := n.role.Letter()
	return n.key.Name() + ":" + f + r
}

func (n FunctionalNote) String() string {
	return fmt.Sprintf("^%s as %s %s in %s", n.degree, n.function, n.role, n.key.Name())
}

func (FunctionalNote) isDependency() {}
