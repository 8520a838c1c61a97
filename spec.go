package argv

import (
	"fmt"
	"reflect"
	"regexp"
	"time"
)

// specKind discriminates the three registration forms.
type specKind int

const (
	specPositional specKind = iota
	specNamed
	specIncremental
)

// Spec methods specify optional details of parameter definitions. A Spec is
// created by Registry.Positional, Registry.Named or Registry.Incremental,
// which give the parameter its canonical name and destination. Spec methods
// are designed to support chaining. Any error detected by a Spec method
// results in a panic (as is also the case for the registration methods).
// This is natural since a definition error is a bug in the program, which
// cannot continue safely. On the other hand, errors originating from user
// input don't cause panics. Panics are documented in the relevant methods.
type Spec struct {
	reg        *Registry
	kind       specKind
	name       string // the canonical name
	shorts     []rune
	target     interface{}
	indicator  *bool
	enum       *Enum
	radix      int // 0 means decimal
	defText    string
	defValue   interface{}
	hasDef     bool
	hidden     bool
	doc        []string
	validators []validator
}

// Short adds a single-character name usable as -c and in bundles. It can be
// called more than once to add several short names. Panics for positional
// parameters, when c is not valid in names, or when c clashes with an
// existing name.
func (p *Spec) Short(c rune) *Spec {
	if p.kind == specPositional {
		panic(fmt.Errorf(`positional parameter "%s" cannot have a short name`, p.name))
	}
	if !valid(c) || c == '-' {
		panic(fmt.Errorf(`"%c" cannot be used as a short name`, c))
	}
	name := string(c)
	if _, ok := p.reg.names[name]; ok {
		panic(fmt.Errorf(`short name "%c" for parameter "%s" clashes with an existing name`, c, p.name))
	}
	p.reg.names[name] = p
	p.shorts = append(p.shorts, c)
	return p
}

// Doc sets lines of help text for the parameter.
func (p *Spec) Doc(s ...string) *Spec {
	p.doc = s
	return p
}

// Default makes the parameter optional: when it is not supplied, the
// destination receives the value decoded from text. The text is decoded
// immediately; chaining Radix or Enum afterwards re-decodes it, so either
// order works. Panics for incremental and boolean parameters and when the
// text cannot be decoded.
func (p *Spec) Default(text string) *Spec {
	if p.kind == specIncremental {
		panic(fmt.Errorf(`incremental parameter "%s" cannot have a default`, p.name))
	}
	if p.boolTarget() {
		panic(fmt.Errorf(`boolean parameter "%s" cannot have a default`, p.name))
	}
	p.defText = text
	p.hasDef = true
	p.redecodeDefault()
	return p
}

// Indicator binds a flag which Parse sets to report whether the parameter
// was explicitly supplied. A parameter with an indicator is optional even
// without a default, since the caller can inspect the flag. Panics when
// flag is nil or already assigned to another parameter.
func (p *Spec) Indicator(flag *bool) *Spec {
	if flag == nil {
		panic(fmt.Errorf(`indicator for parameter "%s" is nil`, p.name))
	}
	p.reg.claimTarget(flag, p.name)
	p.indicator = flag
	return p
}

// Range bounds the decoded value of a numeric parameter, both ends
// inclusive. Panics when min exceeds max, for incremental parameters, and
// when the destination is not an integer or float.
func (p *Spec) Range(min, max int64) *Spec {
	if p.kind == specIncremental {
		panic(fmt.Errorf(`incremental parameter "%s" cannot have validators`, p.name))
	}
	if min > max {
		panic(fmt.Errorf(`range %d..%d for parameter "%s" is empty`, min, max, p.name))
	}
	if !p.numericTarget() {
		panic(fmt.Errorf(`parameter "%s" cannot have a range because its target of type %v is not numeric`, p.name, reflect.TypeOf(p.target)))
	}
	p.validators = append(p.validators, &rangeValidator{min: min, max: max})
	return p
}

// Length bounds the length of a text parameter's value, counted in runes,
// both ends inclusive. Panics on an empty or negative range, for
// incremental parameters, and when the destination does not take text.
func (p *Spec) Length(min, max int) *Spec {
	if p.kind == specIncremental {
		panic(fmt.Errorf(`incremental parameter "%s" cannot have validators`, p.name))
	}
	if min < 0 || min > max {
		panic(fmt.Errorf(`length %d..%d for parameter "%s" is empty`, min, max, p.name))
	}
	if !p.textTarget() {
		panic(fmt.Errorf(`parameter "%s" cannot have a length limit because its target of type %v does not take text`, p.name, reflect.TypeOf(p.target)))
	}
	p.validators = append(p.validators, &lengthValidator{min: min, max: max})
	return p
}

// Regex requires the value of a text parameter to match a regular
// expression, compiled with regexp.Compile. A failed match reports message,
// or a generated one when message is empty. Panics for incremental
// parameters, non-text destinations and invalid patterns.
func (p *Spec) Regex(pattern, message string) *Spec {
	if p.kind == specIncremental {
		panic(fmt.Errorf(`incremental parameter "%s" cannot have validators`, p.name))
	}
	if !p.textTarget() {
		panic(fmt.Errorf(`parameter "%s" cannot have a pattern because its target of type %v does not take text`, p.name, reflect.TypeOf(p.target)))
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Errorf(`compilation of pattern "%s" for parameter "%s" failed: %v`, pattern, p.name, err))
	}
	p.validators = append(p.validators, &regexValidator{re: re, message: message})
	return p
}

// Capture binds a group of the most recently chained Regex: when the
// pattern matches, the group's text is written to dest. Group 0 is the
// whole match. Panics when no Regex precedes, the group does not exist in
// the pattern or is already captured, or dest is nil or already assigned.
func (p *Spec) Capture(group int, dest *string) *Spec {
	var last *regexValidator
	if n := len(p.validators); n > 0 {
		last, _ = p.validators[n-1].(*regexValidator)
	}
	if last == nil {
		panic(fmt.Errorf(`capture for parameter "%s" needs a preceding Regex`, p.name))
	}
	if group < 0 || group > last.re.NumSubexp() {
		panic(fmt.Errorf(`pattern "%s" for parameter "%s" has no group %d`, last.re, p.name, group))
	}
	if dest == nil {
		panic(fmt.Errorf(`capture target for parameter "%s" is nil`, p.name))
	}
	if _, ok := last.captures[group]; ok {
		panic(fmt.Errorf(`group %d of parameter "%s" is already captured`, group, p.name))
	}
	p.reg.claimTarget(dest, p.name)
	if last.captures == nil {
		last.captures = make(map[int]*string)
	}
	last.captures[group] = dest
	return p
}

// Radix sets the radix used to decode the parameter's values when they
// carry no 0x, 0o or 0b prefix. Panics unless base is 2, 8, 10 or 16 and
// the destination is an integer.
func (p *Spec) Radix(base int) *Spec {
	switch base {
	case 2, 8, 10, 16:
	default:
		panic(fmt.Errorf(`radix %d for parameter "%s" is not one of 2, 8, 10, 16`, base, p.name))
	}
	if !p.integerTarget() {
		panic(fmt.Errorf(`parameter "%s" cannot have a radix because its target of type %v is not an integer`, p.name, reflect.TypeOf(p.target)))
	}
	p.radix = base
	p.redecodeDefault()
	return p
}

// Enum makes the parameter enumerated over e: values are decoded by
// unambiguous prefix of the enum's names, and the destination receives the
// canonical name (*string) or its position (*int). Panics for incremental
// parameters, for destinations other than *string and *int, and when
// validators or a radix were already chained.
func (p *Spec) Enum(e *Enum) *Spec {
	if e == nil {
		panic(fmt.Errorf(`enum for parameter "%s" is nil`, p.name))
	}
	if p.kind == specIncremental {
		panic(fmt.Errorf(`incremental parameter "%s" cannot be enumerated`, p.name))
	}
	switch p.target.(type) {
	case *string, *int:
	default:
		panic(fmt.Errorf(`parameter "%s" cannot be enumerated because its target of type %v is neither *string nor *int`, p.name, reflect.TypeOf(p.target)))
	}
	if len(p.validators) > 0 {
		panic(fmt.Errorf(`enumerated parameter "%s" cannot have validators`, p.name))
	}
	if p.radix != 0 {
		panic(fmt.Errorf(`enumerated parameter "%s" cannot have a radix`, p.name))
	}
	p.enum = e
	p.redecodeDefault()
	return p
}

// Hidden omits the parameter from generated usage text. It still parses
// normally.
func (p *Spec) Hidden() *Spec {
	p.hidden = true
	return p
}

// redecodeDefault keeps the decoded default in step with Radix and Enum
// settings chained after Default.
func (p *Spec) redecodeDefault() {
	if !p.hasDef {
		return
	}
	decoded, err := p.decode(p.defText)
	if err != nil {
		panic(fmt.Errorf(`default for parameter "%s" is invalid: %v`, p.name, err))
	}
	p.defValue = decoded
}

// helpers

// boolTarget reports whether the destination takes a boolean.
func (p *Spec) boolTarget() bool {
	return reflValue(p.target).Kind() == reflect.Bool
}

// takesValue reports whether the parameter consumes a value token.
func (p *Spec) takesValue() bool {
	return p.kind != specIncremental && !p.boolTarget()
}

// mandatory reports whether omitting the parameter fails the parse.
func (p *Spec) mandatory() bool {
	return p.takesValue() && !p.hasDef && p.indicator == nil
}

// display returns the name as shown in messages and usage text.
func (p *Spec) display() string {
	if p.kind == specPositional {
		return p.name
	}
	return "--" + p.name
}

// hasShort reports whether c is one of the parameter's short names.
func (p *Spec) hasShort(c rune) bool {
	for _, s := range p.shorts {
		if s == c {
			return true
		}
	}
	return false
}

// increment advances an incremental parameter's counter.
func (p *Spec) increment() {
	counter := p.target.(*int)
	*counter++
}

func (p *Spec) numericTarget() bool {
	if p.enum != nil {
		return false
	}
	if _, ok := p.target.(*time.Duration); ok {
		return false
	}
	switch reflValue(p.target).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (p *Spec) integerTarget() bool {
	if p.enum != nil {
		return false
	}
	if _, ok := p.target.(*time.Duration); ok {
		return false
	}
	switch reflValue(p.target).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func (p *Spec) textTarget() bool {
	return p.enum == nil && reflValue(p.target).Kind() == reflect.String
}
