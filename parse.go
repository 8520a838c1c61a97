package argv

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/google/shlex"
)

// parseState is the transient state of one Parse invocation. It is created
// fresh per call and discarded at the end, so the registry itself is never
// mutated by parsing.
type parseState struct {
	reg      *Registry
	cfg      Config
	tokens   deque.Deque // token, consumed front to back
	pending  deque.Deque // positional candidate strings
	supplied map[*Spec]bool
}

// Parse consumes an argument vector, excluding the program name, and
// populates the registered destinations. The result is nil on success and
// the first failure, a *ParseError, otherwise. After a failed parse the
// destinations are undefined and must not be acted upon.
func (r *Registry) Parse(args []string, cfg Config) error {
	r.checkPositionalOrder()

	st := &parseState{reg: r, cfg: cfg, supplied: make(map[*Spec]bool)}
	for pair := r.specs.Oldest(); pair != nil; pair = pair.Next() {
		if p := pair.Value.(*Spec); p.indicator != nil {
			*p.indicator = false
		}
	}

	sc := newScanner(args)
	for t := sc.next(); t.kind != tokenEnd; t = sc.next() {
		st.tokens.PushBack(t)
	}

	if err := st.dispatch(); err != nil {
		return err
	}
	if err := st.assignPositionals(); err != nil {
		return err
	}
	if err := st.verify(); err != nil {
		return err
	}
	for _, g := range r.groups {
		if err := g.check(st.supplied); err != nil {
			return err
		}
	}
	return nil
}

// ParseString splits command like a shell would (quotes and escapes, no
// expansion) and parses the resulting vector.
func (r *Registry) ParseString(command string, cfg Config) error {
	args, err := shlex.Split(command)
	if err != nil {
		return fmt.Errorf("cannot split command: %v", err)
	}
	return r.Parse(args, cfg)
}

// dispatch resolves named tokens immediately and buffers positional
// candidates for the assignment pass, whose need is only known once the
// stream ends. The terminator needs no action here since the scanner
// already classifies everything after it as positional.
func (st *parseState) dispatch() *ParseError {
	for st.tokens.Len() > 0 {
		v, _ := st.tokens.PopFront()
		t := v.(token)
		switch t.kind {
		case tokenLong:
			if err := st.longOption(t); err != nil {
				return err
			}
		case tokenShort:
			if err := st.shortBundle(t); err != nil {
				return err
			}
		case tokenPositional:
			st.pending.PushBack(t.text)
		}
	}
	return nil
}

// longOption dispatches one --name or --name=value token.
func (st *parseState) longOption(t token) *ParseError {
	p, err := st.lookup(t.name)
	if err != nil {
		return err
	}
	if p.kind == specIncremental {
		if t.hasValue {
			pe := parseErr(TypeCoercionFailed, p.display(), "does not take a value")
			pe.Value = t.value
			return pe
		}
		p.increment()
		st.record(p)
		return nil
	}
	if st.supplied[p] {
		return duplicateErr(p)
	}
	var raw string
	switch {
	case t.hasValue:
		raw = t.value
	case p.boolTarget():
		raw = "true"
	default:
		detached, derr := st.nextDetached(p)
		if derr != nil {
			return derr
		}
		raw = detached
	}
	if err := p.assign(raw); err != nil {
		return err
	}
	st.record(p)
	return nil
}

// shortBundle walks a -abc token character by character. Boolean and
// incremental characters consume nothing, so the walk continues after
// them; the first value-taking character consumes the rest of the bundle
// (one leading = stripped) or, as the last character, a detached value.
// -wi5 therefore decodes exactly as -w -i 5.
func (st *parseState) shortBundle(t token) *ParseError {
	chars := t.name
	for i := 0; i < len(chars); {
		c, w := utf8.DecodeRuneInString(chars[i:])
		i += w
		rest := chars[i:]

		p := st.reg.shortSpec(c)
		if p == nil {
			return parseErr(UnknownOption, "-"+string(c), "unknown option")
		}

		if p.kind == specIncremental {
			if strings.HasPrefix(rest, "=") {
				pe := parseErr(TypeCoercionFailed, p.display(), "does not take a value")
				pe.Value = rest[1:]
				return pe
			}
			p.increment()
			st.record(p)
			continue
		}

		if p.boolTarget() {
			if st.supplied[p] {
				return duplicateErr(p)
			}
			if strings.HasPrefix(rest, "=") {
				if err := p.assign(rest[1:]); err != nil {
					return err
				}
				st.record(p)
				return nil
			}
			if err := p.assign("true"); err != nil {
				return err
			}
			st.record(p)
			continue
		}

		if st.supplied[p] {
			return duplicateErr(p)
		}
		raw := rest
		if strings.HasPrefix(raw, "=") {
			raw = raw[1:]
		} else if raw == "" {
			detached, derr := st.nextDetached(p)
			if derr != nil {
				return derr
			}
			raw = detached
		}
		if err := p.assign(raw); err != nil {
			return err
		}
		st.record(p)
		return nil
	}
	return nil
}

// assignPositionals dispatches the buffered positional candidates against
// the positional parameters in registration order.
func (st *parseState) assignPositionals() *ParseError {
	for _, p := range st.reg.positionals {
		if st.pending.Len() == 0 {
			if p.mandatory() {
				return parseErr(MissingMandatoryArgument, p.name, "mandatory argument not set")
			}
			continue
		}
		v, _ := st.pending.PopFront()
		if err := p.assign(v.(string)); err != nil {
			return err
		}
		st.record(p)
	}
	if st.pending.Len() == 0 {
		return nil
	}
	if !st.cfg.AllowTrailingPositional {
		v, _ := st.pending.Front()
		pe := parseErr(UnexpectedTrailingPositional, fmt.Sprintf(`"%s"`, v.(string)), "unexpected trailing argument")
		pe.Value = v.(string)
		return pe
	}
	for st.pending.Len() > 0 {
		v, _ := st.pending.PopFront()
		if st.cfg.Trailing != nil {
			*st.cfg.Trailing = append(*st.cfg.Trailing, v.(string))
		}
	}
	return nil
}

// verify applies the defaults of omitted parameters and reports mandatory
// named parameters that were never supplied. Destinations of omitted
// parameters without a default are left untouched.
func (st *parseState) verify() *ParseError {
	for pair := st.reg.specs.Oldest(); pair != nil; pair = pair.Next() {
		p := pair.Value.(*Spec)
		if st.supplied[p] {
			continue
		}
		if p.hasDef {
			p.store(p.defValue)
			continue
		}
		if p.mandatory() {
			return parseErr(MissingMandatoryArgument, p.display(), "mandatory argument not set")
		}
	}
	return nil
}

// lookup resolves a long option fragment to its parameter.
func (st *parseState) lookup(fragment string) (*Spec, *ParseError) {
	if len(fragment) == 0 {
		return nil, parseErr(UnknownOption, "--", "option name missing")
	}
	name, ok, competing := resolve(fragment, st.reg.longNames())
	if !ok {
		if len(competing) > 1 {
			pe := parseErr(AmbiguousAbbreviation, "--"+fragment, "ambiguous abbreviation (matches %s)", listLong(competing))
			pe.Candidates = competing
			return nil, pe
		}
		return nil, parseErr(UnknownOption, "--"+fragment, "unknown option")
	}
	return st.reg.names[name], nil
}

// nextDetached claims the next token as the value of p when the token is a
// positional candidate. Option-shaped tokens and the terminator are never
// consumed as values: --size --verbose reports a missing value rather than
// treating --verbose as one.
func (st *parseState) nextDetached(p *Spec) (string, *ParseError) {
	if v, ok := st.tokens.Front(); ok {
		if t := v.(token); t.kind == tokenPositional {
			st.tokens.PopFront()
			return t.text, nil
		}
	}
	return "", parseErr(MissingMandatoryArgument, p.display(), "value required")
}

// record marks a parameter as supplied in this parse.
func (st *parseState) record(p *Spec) {
	st.supplied[p] = true
	if p.indicator != nil {
		*p.indicator = true
	}
}

func duplicateErr(p *Spec) *ParseError {
	return parseErr(DuplicateNamedArgument, p.display(), "specified more than once")
}

// listLong renders candidate names in their long option form.
func listLong(names []string) string {
	long := make([]string, len(names))
	for i, n := range names {
		long[i] = "--" + n
	}
	return strings.Join(long, ", ")
}
