package argv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// decode converts raw text to the exact value the destination will hold.
// Nothing is written here: the caller stores the result only after every
// validator accepted it.
func (p *Spec) decode(raw string) (interface{}, error) {
	if p.enum != nil {
		name, index, err := p.enum.decode(raw)
		if err != nil {
			return nil, err
		}
		if reflValue(p.target).Kind() == reflect.Int {
			return int64(index), nil
		}
		return name, nil
	}
	if _, ok := p.target.(*time.Duration); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf(`"%s" is not a valid duration`, raw)
		}
		return d, nil
	}
	v := reflValue(p.target)
	switch v.Kind() {
	case reflect.String:
		return raw, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf(`"%s" is not a valid boolean`, raw)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		digits, base := splitRadix(raw, p.radix)
		i, err := strconv.ParseInt(digits, base, v.Type().Bits())
		if err != nil {
			return nil, numError(err, raw, base, v.Type())
		}
		return i, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		digits, base := splitRadix(raw, p.radix)
		u, err := strconv.ParseUint(digits, base, v.Type().Bits())
		if err != nil {
			return nil, numError(err, raw, base, v.Type())
		}
		return u, nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return nil, numError(err, raw, 0, v.Type())
		}
		return f, nil
	}
	// registration rejects every other kind
	panic(fmt.Errorf(`target for parameter "%s" has unsupported type %v`, p.name, v.Type()))
}

// store writes a decoded value to the destination slot.
func (p *Spec) store(decoded interface{}) {
	v := reflValue(p.target)
	switch x := decoded.(type) {
	case string:
		v.SetString(x)
	case bool:
		v.SetBool(x)
	case int64:
		v.SetInt(x)
	case uint64:
		v.SetUint(x)
	case float64:
		v.SetFloat(x)
	case time.Duration:
		v.SetInt(int64(x))
	}
}

// assign runs the decode and validation pipeline for one raw value and
// writes the destination on success.
func (p *Spec) assign(raw string) *ParseError {
	decoded, err := p.decode(raw)
	if err != nil {
		pe := coercionError(p.display(), err)
		pe.Value = raw
		return pe
	}
	for _, val := range p.validators {
		if err := val.check(decoded); err != nil {
			pe := parseErr(ValidationFailed, p.display(), "%v", err)
			pe.Value = raw
			return pe
		}
	}
	p.store(decoded)
	return nil
}

// coercionError classifies a decode failure: enumerated-value ambiguity
// keeps its own kind, everything else is a coercion failure.
func coercionError(name string, err error) *ParseError {
	if amb, ok := err.(*ambiguityError); ok {
		pe := parseErr(AmbiguousAbbreviation, name, "%v", err)
		pe.Candidates = amb.competing
		return pe
	}
	return parseErr(TypeCoercionFailed, name, "%v", err)
}

// splitRadix separates an optional sign and radix prefix from the digits.
// An explicit 0x, 0o or 0b prefix overrides the parameter's radix; a bare
// leading zero does not imply octal.
func splitRadix(raw string, radix int) (digits string, base int) {
	base = radix
	if base == 0 {
		base = 10
	}
	sign := ""
	s := raw
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return sign + s[2:], 16
		case 'o', 'O':
			return sign + s[2:], 8
		case 'b', 'B':
			return sign + s[2:], 2
		}
	}
	return sign + s, base
}

// numError turns strconv failures into user-facing messages, keeping the
// range/syntax distinction.
func numError(err error, raw string, base int, typ reflect.Type) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return fmt.Errorf(`value "%s" does not fit in %v`, raw, typ)
	}
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Errorf(`"%s" is not a valid number`, raw)
	}
	if base != 10 {
		return fmt.Errorf(`"%s" is not a valid integer in base %d`, raw, base)
	}
	return fmt.Errorf(`"%s" is not a valid integer`, raw)
}

// reflValue returns the value pointed to by target.
func reflValue(target interface{}) reflect.Value {
	return reflect.Indirect(reflect.ValueOf(target))
}
