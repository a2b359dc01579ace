package harmony

// Dependency is what a condition waits on: a FunctionalNote or a raw DegreeDependency.
type Dependency interface {
	isDependency()
	String() string
}

// DegreeDependency matches any resolved voice with this scale degree.
type DegreeDependency string

func (DegreeDependency) isDependency() {}

func (d DegreeDependency) String() string { return string(d) }

type Condition struct {
	Contingency Contingency
	Dependency  Dependency
}

func Guaranteed() Condition {
	return Condition{Contingency: IsGuaranteed}
}

func LowestVoiceIs(d Dependency) Condition {
	return Condition{Contingency: IsLowestVoice, Dependency: d}
}

func PresentWith(d Dependency) Condition {
	return Condition{Contingency: IsPresent, Dependency: d}
}

// Equal treats every IsGuaranteed condition as the same, since the dependency is never
// consulted for them.
func (c Condition) Equal(o Condition) bool {
	if c.Contingency == IsGuaranteed || o.Contingency == IsGuaranteed {
		return c.Contingency == o.Contingency
	}
	if c.Contingency != o.Contingency {
		return false
	}

	switch d := c.Dependency.(type) {
	case DegreeDependency:
		od, ok := o.Dependency.(DegreeDependency)
		return ok && d == od
	case FunctionalNote:
		on, ok := o.Dependency.(FunctionalNote)
		return ok && d.Equal(on)
	}
	return c.Dependency == nil && o.Dependency == nil
}

func (c Condition) String() string {
	dep := "nothing"
	if c.Dependency != nil {
		dep = c.Dependency.String()
	}
	switch c.Contingency {
	case IsLowestVoice:
		return "true if lowest voice is " + dep
	case IsPresent:
		return "true in presence of " + dep
	}
	return "guaranteed"
}

// holds checks the condition against the voices resolved so far. resolved[0] is the
// lowest voice and nil entries are still open.
func (c Condition) holds(resolved []*FunctionalNote) bool {
	switch c.Contingency {
	case IsGuaranteed:
		return true
	case IsLowestVoice:
		return len(resolved) > 0 && resolved[0] != nil && matches(c.Dependency, *resolved[0])
	case IsPresent:
		for _, r := range resolved {
			if r != nil && matches(c.Dependency, *r) {
				return true
			}
		}
	}
	return false
}

func matches(d Dependency, n FunctionalNote) bool {
	switch d := d.(type) {
	case FunctionalNote:
		return d.Equal(n)
	case DegreeDependency:
		return string(d) == n.degree
	}
	return false
}
