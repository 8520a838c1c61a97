package argv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryDuplicateName(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`parameter "a" already defined`, t)
	i := 1
	j := 2
	r.Named("a", &i)
	r.Named("a", &j)
}

func TestRegistryDuplicateTarget(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`target for parameter "b" is already assigned`, t)
	i := 1
	r.Named("a", &i)
	r.Named("b", &i)
}

func TestRegistryNotPointer(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`target for parameter "a" is not a pointer`, t)
	i := 1
	r.Named("a", i)
}

func TestRegistryNilTarget(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`target for parameter "a" is nil`, t)
	var p *int
	r.Named("a", p)
}

func TestRegistryEmptyName(t *testing.T) {
	r := NewRegistry()
	defer panicHandler("parameter names cannot be empty", t)
	i := 1
	r.Named("", &i)
}

func TestRegistryLeadingDash(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`"-x" cannot be used as a name because it starts with '-'`, t)
	i := 1
	r.Named("-x", &i)
}

func TestRegistryInvalidName(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`"a b" cannot be used as a name because it includes the character ' '`, t)
	i := 1
	r.Named("a b", &i)
}

func TestRegistryUnsupportedTarget(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`target for parameter "data" has unsupported type *[]string`, t)
	var data []string
	r.Named("data", &data)
}

func TestRegistryPositionalBool(t *testing.T) {
	r := NewRegistry()
	defer panicHandler(`positional parameter "flag" cannot have a boolean target`, t)
	var flag bool
	r.Positional("flag", &flag)
}

func TestRegistryPositionalOrder(t *testing.T) {
	r := NewRegistry()
	var first, second string
	r.Positional("first", &first).Default("none")
	r.Positional("second", &second)
	defer panicHandler(`positional parameter "second" is mandatory but follows optional "first"`, t)
	r.Parse(nil, Config{})
}

func TestRegistryLongNames(t *testing.T) {
	r := NewRegistry()
	var a, b string
	var n int
	r.Positional("file", &a)
	r.Named("windows", &b)
	r.Incremental("winged", &n)
	// positional names never take part in option lookup
	if diff := cmp.Diff([]string{"windows", "winged"}, r.longNames()); diff != "" {
		t.Errorf("longNames mismatch (-expect +got):%s", diff)
	}
}

func TestRegistryShortSpec(t *testing.T) {
	r := NewRegistry()
	var a, b string
	r.Named("v", &a)
	r.Named("verbose", &b).Short('w')

	// a one-character canonical name is not a short name
	if p := r.shortSpec('v'); p != nil {
		t.Errorf(`"-v" resolved to parameter "%s"`, p.name)
	}
	if p := r.shortSpec('w'); p == nil || p.name != "verbose" {
		t.Errorf(`"-w" not resolved to "verbose"`)
	}
	if p := r.shortSpec('z'); p != nil {
		t.Errorf(`"-z" resolved to parameter "%s"`, p.name)
	}
}

func TestGroupUnknownPolicy(t *testing.T) {
	r := groupedRegistry()
	defer panicHandler(`group "mode" has an unknown policy`, t)
	r.Group("mode", GroupPolicy(99), "fast", "slow")
}

func TestGroupTooFewMembers(t *testing.T) {
	r := groupedRegistry()
	defer panicHandler(`group "mode" needs at least two members`, t)
	r.Group("mode", MutuallyExclusive, "fast")
}

func TestGroupUnknownMember(t *testing.T) {
	r := groupedRegistry()
	defer panicHandler(`group "mode": parameter "bogus" not defined`, t)
	r.Group("mode", MutuallyExclusive, "fast", "bogus")
}

func TestGroupRepeatedMember(t *testing.T) {
	r := groupedRegistry()
	defer panicHandler(`group "mode": parameter "fast" repeated`, t)
	r.Group("mode", MutuallyExclusive, "fast", "fast")
}

func TestGroupMemberWithoutIndicator(t *testing.T) {
	r := groupedRegistry()
	var quiet bool
	r.Named("quiet", &quiet)
	defer panicHandler(`group "mode": parameter "quiet" needs an indicator`, t)
	r.Group("mode", MutuallyExclusive, "fast", "quiet")
}

func TestGroupMemberByShortName(t *testing.T) {
	r := groupedRegistry()
	defer panicHandler(`group "mode": parameter "f" not defined`, t)
	r.Group("mode", MutuallyExclusive, "f", "slow")
}

func TestGroupDuplicate(t *testing.T) {
	r := groupedRegistry()
	r.Group("mode", MutuallyExclusive, "fast", "slow")
	defer panicHandler(`group "mode" already defined`, t)
	r.Group("mode", AllOrNone, "fast", "slow")
}

func TestGroupEmptyName(t *testing.T) {
	r := groupedRegistry()
	defer panicHandler("group names cannot be empty", t)
	r.Group("", MutuallyExclusive, "fast", "slow")
}

// groupedRegistry returns a registry with two groupable parameters, fast
// and slow, both with indicators and a short name.
func groupedRegistry() *Registry {
	r := NewRegistry()
	var fast, slow bool
	var fastSet, slowSet bool
	r.Named("fast", &fast).Short('f').Indicator(&fastSet)
	r.Named("slow", &slow).Short('s').Indicator(&slowSet)
	return r
}
