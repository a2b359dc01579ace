package harmony

import (
	"errors"
	"fmt"
)

// ErrNonsensicalInput is returned for values outside the closed vocabularies below
// and for unusable arguments such as an empty chord.
var ErrNonsensicalInput = errors.New("nonsensical input")

type HarmonicFunction int

const (
	Subdominant HarmonicFunction = iota
	Tonic
	Dominant
	UnknownFunction
)

func (f HarmonicFunction) String() string {
	switch f {
	case Subdominant:
		return "Subdominant"
	case Tonic:
		return "Tonic"
	case Dominant:
		return "Dominant"
	case UnknownFunction:
		return "Unknown function"
	}
	return fmt.Sprintf("HarmonicFunction(%d)", int(f))
}

// Letter is the one-letter code used in labels: S, T, D or U.
func (f HarmonicFunction) Letter() (string, error) {
	switch f {
	case Subdominant:
		return "S", nil
	case Tonic:
		return "T", nil
	case Dominant:
		return "D", nil
	case UnknownFunction:
		return "U", nil
	}
	return "", fmt.Errorf("%w: expected a HarmonicFunction member, got %d", ErrNonsensicalInput, int(f))
}

type FunctionalRole int

const (
	Base FunctionalRole = iota
	Agent
	Associate
	UnknownRole
)

func (r FunctionalRole) String() string {
	switch r {
	case Base:
		return "base"
	case Agent:
		return "agent"
	case Associate:
		return "associate"
	case UnknownRole:
		return "unknown role"
	}
	return fmt.Sprintf("FunctionalRole(%d)", int(r))
}

// Letter is the two-letter code used in labels: ba, ag, as or un.
func (r FunctionalRole) Letter() (string, error) {
	switch r {
	case Base:
		return "ba", nil
	case Agent:
		return "ag", nil
	case Associate:
		return "as", nil
	case UnknownRole:
		return "un", nil
	}
	return "", fmt.Errorf("%w: expected a FunctionalRole member, got %d", ErrNonsensicalInput, int(r))
}

// VoicePosition is where a voice sits in its chord. A chord of one voice is Solo.
type VoicePosition int

const (
	Lowest VoicePosition = iota
	Middle
	Highest
	Solo
)

func (p VoicePosition) String() string {
	name, err := p.Name()
	if err != nil {
		return fmt.Sprintf("VoicePosition(%d)", int(p))
	}
	return name
}

func (p VoicePosition) Name() (string, error) {
	switch p {
	case Lowest:
		return "lowest", nil
	case Middle:
		return "middle", nil
	case Highest:
		return "highest", nil
	case Solo:
		return "solo", nil
	}
	return "", fmt.Errorf("%w: expected a VoicePosition member, got %d", ErrNonsensicalInput, int(p))
}

// ParseVoicePosition is the inverse of Name.
func ParseVoicePosition(s string) (VoicePosition, error) {
	for _, p := range []VoicePosition{Lowest, Middle, Highest, Solo} {
		if name, _ := p.Name(); name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown voice position %q", ErrNonsensicalInput, s)
}

// Contingency is what a candidate function depends on.
type Contingency int

const (
	IsGuaranteed Contingency = iota
	IsLowestVoice
	IsPresent
)

func (c Contingency) String() string {
	switch c {
	case IsGuaranteed:
		return "guaranteed"
	case IsLowestVoice:
		return "lowest voice"
	case IsPresent:
		return "present"
	}
	return fmt.Sprintf("Contingency(%d)", int(c))
}

// Verbosity selects between the two label renderings.
type Verbosity int

const (
	Concise Verbosity = iota
	Verbose
)

func (v Verbosity) String() string {
	if v == Verbose {
		return "verbose"
	}
	return "concise"
}

func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "concise":
		return Concise, nil
	case "verbose":
		return Verbose, nil
	}
	return 0, fmt.Errorf("%w: verbosity must be \"concise\" or \"verbose\", got %q", ErrNonsensicalInput, s)
}
