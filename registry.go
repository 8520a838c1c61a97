package argv

import (
	"fmt"
	"reflect"
	"time"
	"unicode"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Registry holds the parameter specifications registered by the caller and
// is the entry point for parsing and usage generation. Registration methods
// panic on definition errors, which are bugs in the program (see Spec);
// user input errors are returned by Parse as *ParseError values.
//
// A Registry must be fully built before its first Parse call and not
// modified afterwards. Parsing never mutates the registry, so one Registry
// is safe to share between concurrent Parse calls provided each call's
// destination slots are disjoint.
type Registry struct {
	specs       *orderedmap.OrderedMap // canonical name -> *Spec, in definition order
	names       map[string]*Spec       // canonical and short names
	targets     map[interface{}]bool   // destinations, indicators and captures
	positionals []*Spec
	groups      []*group
	doc         []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		specs:   orderedmap.New(),
		names:   make(map[string]*Spec),
		targets: make(map[interface{}]bool),
	}
}

// Positional registers a parameter assigned by position: positional tokens
// are matched against positional parameters in registration order. A
// mandatory positional parameter cannot follow an optional one. Panics on
// definition errors: invalid or duplicate name, non-pointer, boolean or
// unsupported target, or a target already assigned.
func (r *Registry) Positional(name string, target interface{}) *Spec {
	p := r.add(specPositional, name, target)
	if p.boolTarget() {
		panic(fmt.Errorf(`positional parameter "%s" cannot have a boolean target`, name))
	}
	r.positionals = append(r.positionals, p)
	return p
}

// Named registers a parameter supplied by name: --name value, --name=value,
// or through short names added with Spec.Short. A boolean destination makes
// a flag, set by presence; an explicit value needs the attached form
// --name=value. Panics on definition errors.
func (r *Registry) Named(name string, target interface{}) *Spec {
	return r.add(specNamed, name, target)
}

// Incremental registers a named parameter whose counter advances once per
// occurrence, as in -vvv. The counter is never reset, so omission leaves it
// untouched. Panics on definition errors.
func (r *Registry) Incremental(name string, counter *int) *Spec {
	return r.add(specIncremental, name, counter)
}

// Group declares a membership constraint over registered parameters,
// checked after all tokens are consumed and assigned. Members are given by
// canonical name and must have indicators, which makes suppliedness part of
// the caller-visible contract. Panics on an unknown policy, fewer than two
// members, unknown or repeated members, members without indicators, or a
// reused group name.
func (r *Registry) Group(name string, policy GroupPolicy, members ...string) {
	if len(name) == 0 {
		panic(fmt.Errorf("group names cannot be empty"))
	}
	if err := validate(name); err != nil {
		panic(err)
	}
	if policy < MutuallyExclusive || policy > AtLeastOne {
		panic(fmt.Errorf(`group "%s" has an unknown policy`, name))
	}
	if len(members) < 2 {
		panic(fmt.Errorf(`group "%s" needs at least two members`, name))
	}
	for _, g := range r.groups {
		if g.name == name {
			panic(fmt.Errorf(`group "%s" already defined`, name))
		}
	}
	g := &group{name: name, policy: policy}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		p, ok := r.names[m]
		if !ok || p.name != m {
			panic(fmt.Errorf(`group "%s": parameter "%s" not defined`, name, m))
		}
		if seen[m] {
			panic(fmt.Errorf(`group "%s": parameter "%s" repeated`, name, m))
		}
		if p.indicator == nil {
			panic(fmt.Errorf(`group "%s": parameter "%s" needs an indicator`, name, m))
		}
		seen[m] = true
		g.members = append(g.members, p)
	}
	r.groups = append(r.groups, g)
}

// Doc sets lines of preamble text for generated usage. When WriteUsage is
// given a command name, the first line is assumed to contain a formatting
// verb and is printed with Fprintf, so it embeds its own newline; it is
// printed with Fprintln otherwise, like all further lines.
func (r *Registry) Doc(s ...string) {
	r.doc = s
}

// helpers

// add registers a parameter under its canonical name.
func (r *Registry) add(kind specKind, name string, target interface{}) *Spec {
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		panic(fmt.Errorf(`target for parameter "%s" is not a pointer`, name))
	}
	if reflect.ValueOf(target).IsNil() {
		panic(fmt.Errorf(`target for parameter "%s" is nil`, name))
	}
	if len(name) == 0 {
		panic(fmt.Errorf("parameter names cannot be empty"))
	}
	if name[0] == '-' {
		panic(fmt.Errorf(`"%s" cannot be used as a name because it starts with '-'`, name))
	}
	if err := validate(name); err != nil {
		panic(err)
	}
	if _, ok := r.names[name]; ok {
		panic(fmt.Errorf(`parameter "%s" already defined`, name))
	}
	if !supportedTarget(target) {
		panic(fmt.Errorf(`target for parameter "%s" has unsupported type %v`, name, reflect.TypeOf(target)))
	}
	r.claimTarget(target, name)
	p := &Spec{reg: r, kind: kind, name: name, target: target}
	r.names[name] = p
	r.specs.Set(name, p)
	return p
}

// claimTarget records exclusive ownership of a caller-provided pointer.
// Destinations, indicators and capture slots share one ownership table.
func (r *Registry) claimTarget(target interface{}, name string) {
	if r.targets[target] {
		panic(fmt.Errorf(`target for parameter "%s" is already assigned`, name))
	}
	r.targets[target] = true
}

// longNames returns the canonical names of named and incremental
// parameters in definition order: the candidate set for abbreviation.
func (r *Registry) longNames() []string {
	var names []string
	for pair := r.specs.Oldest(); pair != nil; pair = pair.Next() {
		p := pair.Value.(*Spec)
		if p.kind != specPositional {
			names = append(names, p.name)
		}
	}
	return names
}

// shortSpec returns the parameter owning short name c, or nil.
func (r *Registry) shortSpec(c rune) *Spec {
	if p, ok := r.names[string(c)]; ok && p.hasShort(c) {
		return p
	}
	return nil
}

// checkPositionalOrder panics when a mandatory positional parameter
// follows an optional one. The defect only becomes visible once chaining
// completes, so the check runs at the start of each parse.
func (r *Registry) checkPositionalOrder() {
	var optional *Spec
	for _, p := range r.positionals {
		if p.mandatory() {
			if optional != nil {
				panic(fmt.Errorf(`positional parameter "%s" is mandatory but follows optional "%s"`, p.name, optional.name))
			}
		} else if optional == nil {
			optional = p
		}
	}
}

// supportedTarget reports whether target points to a type the decoders
// support.
func supportedTarget(target interface{}) bool {
	if _, ok := target.(*time.Duration); ok {
		return true
	}
	switch reflValue(target).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// validate verifies a name.
func validate(name string) error {
	for _, r := range name {
		if !valid(r) {
			return fmt.Errorf(`"%s" cannot be used as a name because it includes the character '%c'`, name, r)
		}
	}
	return nil
}

// valid returns true iff char is valid in a parameter or value name.
// Valid characters are letters, digits, the hyphen and the underscore.
func valid(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsDigit(char) || char == '-' || char == '_'
}
