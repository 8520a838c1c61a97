package argv

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// WriteUsage writes the usage text generated from the registry to w: the
// preamble set with Doc (or a generated synopsis), then one block per
// parameter in registration order, hidden parameters excepted. The output
// depends only on the registry, never on parse state, so repeated calls
// produce identical text.
func (r *Registry) WriteUsage(w io.Writer, command string) {
	r.writePreamble(w, command)

	for pair := r.specs.Oldest(); pair != nil; pair = pair.Next() {
		p := pair.Value.(*Spec)
		if p.hidden {
			continue
		}
		name := specNames(p)
		info := specInfo(p)
		next := -1
		if len(name) > 8 {
			fmt.Fprintf(w, "  %s\n", name)
			next = 0
		} else if len(p.doc) > 0 {
			fmt.Fprintf(w, "  %-8s %s\n", name, p.doc[0])
			next = 1
		} else {
			fmt.Fprintf(w, "  %-8s %s\n", name, info)
		}
		if next >= 0 {
			for _, s := range p.doc[next:] {
				fmt.Fprintf(w, "  %-8s %s\n", "", s)
			}
			fmt.Fprintf(w, "  %-8s %s\n", "", info)
		}
	}
}

// PrintUsage writes the usage text to standard error.
func (r *Registry) PrintUsage(command string) {
	r.WriteUsage(os.Stderr, command)
}

// writePreamble writes the caller's Doc lines when set, resolving a
// formatting verb in the first line against the command name, and a
// generated synopsis otherwise.
func (r *Registry) writePreamble(w io.Writer, command string) {
	if len(r.doc) > 0 {
		for i, line := range r.doc {
			if i == 0 && len(command) > 0 {
				fmt.Fprintf(w, line, command)
			} else {
				fmt.Fprintln(w, line)
			}
		}
		return
	}

	none := r.specs.Oldest() == nil
	switch {
	case len(command) == 0 && none:
		fmt.Fprintln(w, "the command takes no parameter")
	case len(command) == 0:
		fmt.Fprintln(w, "the command takes these parameters:")
	case none:
		fmt.Fprintf(w, "Usage: %s\n", command)
	default:
		fmt.Fprintln(w, r.synopsis(command))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Parameters:")
	}
}

// synopsis builds the one-line summary of the command form.
func (r *Registry) synopsis(command string) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(command)
	if r.hasOptions() {
		b.WriteString(" [option...]")
	}
	for _, p := range r.positionals {
		if p.hidden {
			continue
		}
		if p.mandatory() {
			b.WriteString(" " + p.name)
		} else {
			b.WriteString(" [" + p.name + "]")
		}
	}
	return b.String()
}

// hasOptions reports whether any named parameter would show in the usage.
func (r *Registry) hasOptions() bool {
	for pair := r.specs.Oldest(); pair != nil; pair = pair.Next() {
		p := pair.Value.(*Spec)
		if p.kind != specPositional && !p.hidden {
			return true
		}
	}
	return false
}

// specNames renders the name column: the bare name for positional
// parameters, the long form with short names otherwise.
func specNames(p *Spec) string {
	if p.kind == specPositional {
		return p.name
	}
	s := "--" + p.name
	for _, c := range p.shorts {
		s += ", -" + string(c)
	}
	return s
}

// specInfo renders the trailing information line: type, mandatory or
// optional status, default, radix and validator annotations.
func specInfo(p *Spec) string {
	var b strings.Builder
	b.WriteString("type: ")
	b.WriteString(typeName(p))
	switch {
	case p.kind == specIncremental:
		b.WriteString(", optional")
	case p.boolTarget():
		b.WriteString(", optional (default: false)")
	case p.hasDef:
		fmt.Fprintf(&b, ", optional (default: %s)", defaultDisplay(p))
	case p.indicator != nil:
		b.WriteString(", optional")
	default:
		b.WriteString(", mandatory")
	}
	if p.radix != 0 && p.radix != 10 {
		fmt.Fprintf(&b, ", radix %d", p.radix)
	}
	for _, v := range p.validators {
		if d := v.describe(); len(d) > 0 {
			b.WriteString(", ")
			b.WriteString(d)
		}
	}
	return b.String()
}

// typeName names the destination type as shown in usage text.
func typeName(p *Spec) string {
	if p.kind == specIncremental {
		return "count"
	}
	if p.enum != nil {
		return "one of " + strings.Join(p.enum.names, ", ")
	}
	if _, ok := p.target.(*time.Duration); ok {
		return "duration"
	}
	return reflValue(p.target).Type().String()
}

// defaultDisplay shows the default in canonical form: enumerated defaults
// given as abbreviations display their full name.
func defaultDisplay(p *Spec) string {
	if p.enum != nil {
		switch v := p.defValue.(type) {
		case string:
			return v
		case int64:
			return p.enum.names[v]
		}
	}
	return p.defText
}
