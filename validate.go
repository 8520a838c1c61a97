package argv

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// validator checks one decoded value. Validators run in the order they
// were chained and the first failure aborts the parse.
type validator interface {
	check(decoded interface{}) error
	// describe returns a short usage annotation, or "".
	describe() string
}

// rangeValidator bounds numeric values, both ends inclusive.
type rangeValidator struct {
	min, max int64
}

func (r *rangeValidator) check(decoded interface{}) error {
	switch v := decoded.(type) {
	case int64:
		if v < r.min || v > r.max {
			return fmt.Errorf("value %d out of range %d..%d", v, r.min, r.max)
		}
	case uint64:
		if (r.min > 0 && v < uint64(r.min)) || r.max < 0 || v > uint64(r.max) {
			return fmt.Errorf("value %d out of range %d..%d", v, r.min, r.max)
		}
	case float64:
		if v < float64(r.min) || v > float64(r.max) {
			return fmt.Errorf("value %v out of range %d..%d", v, r.min, r.max)
		}
	}
	return nil
}

func (r *rangeValidator) describe() string {
	return fmt.Sprintf("range %d..%d", r.min, r.max)
}

// lengthValidator bounds the length of text values, counted in runes.
type lengthValidator struct {
	min, max int
}

func (l *lengthValidator) check(decoded interface{}) error {
	s, ok := decoded.(string)
	if !ok {
		return nil
	}
	n := utf8.RuneCountInString(s)
	if n < l.min || n > l.max {
		return fmt.Errorf(`value "%s" has length %d, expected %d..%d`, s, n, l.min, l.max)
	}
	return nil
}

func (l *lengthValidator) describe() string {
	return fmt.Sprintf("length %d..%d", l.min, l.max)
}

// regexValidator matches text values against a compiled pattern and, on a
// match, writes bound capture groups to their slots.
type regexValidator struct {
	re       *regexp.Regexp
	message  string
	captures map[int]*string
}

func (r *regexValidator) check(decoded interface{}) error {
	s, ok := decoded.(string)
	if !ok {
		return nil
	}
	m := r.re.FindStringSubmatch(s)
	if m == nil {
		if len(r.message) > 0 {
			return errors.New(r.message)
		}
		return fmt.Errorf(`value "%s" does not match %s`, s, r.re)
	}
	for group, dest := range r.captures {
		*dest = m[group]
	}
	return nil
}

func (r *regexValidator) describe() string {
	return ""
}
