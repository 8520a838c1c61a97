package argv

import (
	"fmt"
	"strings"
)

// resolve matches a user-typed fragment against a set of full names: an
// exact match wins, otherwise a unique prefix match. When the fragment is
// a prefix of two or more candidates, they are all returned so the caller
// can report the ambiguity. Matching is case-sensitive and candidates are
// examined in the order given, keeping reports deterministic.
func resolve(fragment string, candidates []string) (match string, found bool, competing []string) {
	for _, c := range candidates {
		if c == fragment {
			return c, true, nil
		}
		if strings.HasPrefix(c, fragment) {
			competing = append(competing, c)
		}
	}
	if len(competing) == 1 {
		return competing[0], true, nil
	}
	return "", false, competing
}

// ambiguityError carries the competing full names of an ambiguous
// fragment through the decoding pipeline, where the error kind is decided.
type ambiguityError struct {
	fragment  string
	competing []string
}

func (e *ambiguityError) Error() string {
	return fmt.Sprintf(`"%s" is ambiguous (%s)`, e.fragment, strings.Join(e.competing, ", "))
}
