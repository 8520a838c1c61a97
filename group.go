package argv

import (
	"fmt"
	"strings"
)

// GroupPolicy selects the membership constraint a group enforces over the
// parameters actually supplied.
type GroupPolicy int

const (
	// MutuallyExclusive allows at most one member.
	MutuallyExclusive GroupPolicy = iota
	// AllOrNone requires every member or no member.
	AllOrNone
	// FirstOrNone requires the supplied members to form a leading run of
	// the member list: a member may only be supplied when every member
	// declared before it is supplied too.
	FirstOrNone
	// ExactlyOne requires precisely one member.
	ExactlyOne
	// AtLeastOne requires one or more members.
	AtLeastOne
)

var policyNames = map[GroupPolicy]string{
	MutuallyExclusive: "mutually exclusive",
	AllOrNone:         "all or none",
	FirstOrNone:       "first or none",
	ExactlyOne:        "exactly one",
	AtLeastOne:        "at least one",
}

func (g GroupPolicy) String() string {
	if s, ok := policyNames[g]; ok {
		return s
	}
	return fmt.Sprintf("GroupPolicy(%d)", int(g))
}

// group is a declared constraint over member parameters.
type group struct {
	name    string
	policy  GroupPolicy
	members []*Spec
}

// check evaluates the policy against the parameters supplied in one parse.
func (g *group) check(supplied map[*Spec]bool) *ParseError {
	var in, out []string
	for _, m := range g.members {
		if supplied[m] {
			in = append(in, m.display())
		} else {
			out = append(out, m.display())
		}
	}
	switch g.policy {
	case MutuallyExclusive:
		if len(in) > 1 {
			return g.violation(in, "only one of %s may be supplied, got %s", g.all(), listNames(in))
		}
	case AllOrNone:
		if len(in) > 0 && len(out) > 0 {
			return g.violation(in, "%s must be supplied together, missing %s", g.all(), listNames(out))
		}
	case FirstOrNone:
		// any non-leading run has a supplied member right after an
		// unsupplied one
		for i := 1; i < len(g.members); i++ {
			if supplied[g.members[i]] && !supplied[g.members[i-1]] {
				return g.violation(in, "%s is supplied but %s is not", g.members[i].display(), g.members[i-1].display())
			}
		}
	case ExactlyOne:
		if len(in) != 1 {
			got := "none"
			if len(in) > 1 {
				got = listNames(in)
			}
			return g.violation(in, "exactly one of %s must be supplied, got %s", g.all(), got)
		}
	case AtLeastOne:
		if len(in) == 0 {
			return g.violation(in, "at least one of %s must be supplied", g.all())
		}
	}
	return nil
}

// violation builds the group's ParseError; the supplied members travel in
// the Candidates field.
func (g *group) violation(in []string, format string, a ...interface{}) *ParseError {
	pe := parseErr(GroupConstraintViolated, fmt.Sprintf(`group "%s"`, g.name), format, a...)
	pe.Candidates = in
	return pe
}

// all lists every member name.
func (g *group) all() string {
	names := make([]string, len(g.members))
	for i, m := range g.members {
		names[i] = m.display()
	}
	return listNames(names)
}

// listNames joins names with commas and a final "and".
func listNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
