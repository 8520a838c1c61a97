package argv

import "strings"

// tokenKind classifies the lexical units of an argument vector.
type tokenKind int

const (
	tokenEnd tokenKind = iota
	// tokenLong is --name, optionally with an inline value --name=value.
	tokenLong
	// tokenShort is -chars: one or more short names, possibly with a glued
	// value. The characters after the dash are delivered verbatim because
	// telling -t5 from -wi5 needs the registered specifications.
	tokenShort
	// tokenPositional is any other argument, and every argument after the
	// terminator.
	tokenPositional
	// tokenTerminator is the first bare --.
	tokenTerminator
)

// token is one immutable lexical unit. The scanner produces each token
// exactly once and the orchestrator consumes it exactly once.
type token struct {
	kind     tokenKind
	name     string // long name fragment, or the bundle characters
	value    string // inline value of a long option
	hasValue bool   // distinguishes --name= from --name
	text     string // the argument string as given
}

// scanner turns an argument vector into tokens. It knows nothing about
// registered specifications and never reclassifies: positional candidates
// may be reclaimed downstream as detached option values.
type scanner struct {
	args           []string
	pos            int
	positionalOnly bool
}

func newScanner(args []string) *scanner {
	s := &scanner{}
	s.reset(args)
	return s
}

// reset restarts the scanner on an argument vector.
func (s *scanner) reset(args []string) {
	s.args = args
	s.pos = 0
	s.positionalOnly = false
}

// next returns the next token. After the input is exhausted it keeps
// returning a token of kind tokenEnd.
func (s *scanner) next() token {
	if s.pos >= len(s.args) {
		return token{kind: tokenEnd}
	}
	arg := s.args[s.pos]
	s.pos++

	if s.positionalOnly {
		return token{kind: tokenPositional, text: arg}
	}
	switch {
	case arg == "--":
		s.positionalOnly = true
		return token{kind: tokenTerminator, text: arg}
	case strings.HasPrefix(arg, "--"):
		name, value, ok := strings.Cut(arg[2:], "=")
		return token{kind: tokenLong, name: name, value: value, hasValue: ok, text: arg}
	case len(arg) > 1 && arg[0] == '-':
		return token{kind: tokenShort, name: arg[1:], text: arg}
	}
	// includes a lone "-", the conventional stand-in for a standard stream
	return token{kind: tokenPositional, text: arg}
}
