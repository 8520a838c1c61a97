package argv

import (
	"fmt"
	"strings"
)

// Enum is an ordered set of value names for enumerated parameters. A value
// is decoded by unambiguous prefix, exactly like long option names, and the
// destination always receives the canonical form: the full name for string
// destinations, the name's position for int destinations.
//
// An Enum is immutable and may back any number of specifications.
type Enum struct {
	names []string
}

// NewEnum returns an Enum over the given value names in order. It panics
// when no name is given, a name is empty or repeated, or a name includes a
// character not allowed in names.
func NewEnum(names ...string) *Enum {
	if len(names) == 0 {
		panic(fmt.Errorf("an enum needs at least one value name"))
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if len(n) == 0 {
			panic(fmt.Errorf("enum value names cannot be empty"))
		}
		if err := validate(n); err != nil {
			panic(err)
		}
		if seen[n] {
			panic(fmt.Errorf(`enum value "%s" repeated`, n))
		}
		seen[n] = true
	}
	e := &Enum{names: make([]string, len(names))}
	copy(e.names, names)
	return e
}

// Names returns the value names in definition order.
func (e *Enum) Names() []string {
	names := make([]string, len(e.names))
	copy(names, e.names)
	return names
}

// Index returns the position of a canonical value name, or -1.
func (e *Enum) Index(name string) int {
	for i, n := range e.names {
		if n == name {
			return i
		}
	}
	return -1
}

// decode resolves a fragment to its canonical name and position.
func (e *Enum) decode(fragment string) (string, int, error) {
	name, ok, competing := resolve(fragment, e.names)
	if !ok {
		if len(competing) > 1 {
			return "", 0, &ambiguityError{fragment: fragment, competing: competing}
		}
		return "", 0, fmt.Errorf(`"%s" is not one of %s`, fragment, strings.Join(e.names, ", "))
	}
	return name, e.Index(name), nil
}
