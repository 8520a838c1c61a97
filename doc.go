/*

Package argv processes command line arguments declaratively. A program
registers the parameters it expects, each bound to a destination variable,
and a single Parse call turns the raw argument vector into validated, typed
program state or into one structured error.

A first example shows a program taking an input file, an optional output
file and a verbosity flag:

    package main

    import (
    	"fmt"
    	"os"

    	"github.com/rlettner/argv"
    )

    func main() {
    	r := argv.NewRegistry()
    	var input, output string
    	var verbose bool
    	r.Positional("input", &input).Doc("file to read")
    	r.Positional("output", &output).Default("-").Doc("file to write")
    	r.Named("verbose", &verbose).Short('v').Doc("report progress")
    	if err := r.Parse(os.Args[1:], argv.Config{}); err != nil {
    		fmt.Fprintln(os.Stderr, err)
    		r.PrintUsage(os.Args[0])
    		os.Exit(1)
    	}
    	// input, output and verbose are ready for use
    }

Command line surface

The engine accepts the customary Unix option shapes, all equivalent where
they overlap:

  --name value    --name=value
  -n value        -n=value        -nvalue

Short names combine into bundles: given boolean w and integer i, the token
-wi5 decodes exactly as -w -i 5. A value-taking short name consumes the rest
of its bundle, so the value may be glued (-i5), attached (-i=5) or detached
(-i 5). The first bare -- terminates option processing: every later token is
positional, whatever its shape, which is how file names beginning with a
dash are passed. A lone - is an ordinary positional token, by convention
standing for a standard stream.

Long option names may be abbreviated to any unambiguous prefix. With
parameters windows and winged registered, --windo selects windows while
--win fails, reporting both candidates. Matching is case-sensitive and an
exact name always wins over prefixes of longer names.

Detached values must look positional: in --size --verbose the token
--verbose is not taken as the value of --size, the parse fails instead.
Values resembling options, including negative numbers, are passed with the
attached form (--size=-5) or after the terminator.

Registering parameters

Registry.Positional declares a parameter assigned by position, in
registration order. Registry.Named declares a parameter supplied by name.
Registry.Incremental declares a counter advanced once per occurrence, the
usual spelling of -vvv. Each registration returns a *Spec whose chainable
methods add short names, documentation, a default, an indicator, validators,
a radix or an enumeration:

    var size uint32
    r.Named("size", &size).Short('s').Radix(16).Range(1, 1<<20).
    	Doc("window size in bytes")

Destinations are pointers owned by the caller: string, bool (named
parameters only), the signed and unsigned integer types, float32, float64
and time.Duration. Integer values honor an explicit 0x, 0o or 0b prefix,
with the parameter's radix applying otherwise; a bare leading zero is
decimal, not octal.

A parameter with a Default is optional and receives the default when
omitted. A parameter with an Indicator is also optional: the flag reports
whether it was supplied, and on omission the destination is left exactly as
the caller initialized it. A value-taking parameter with neither is
mandatory. Booleans and incrementals are never mandatory.

Enumerations are declared once and shared:

    colour := argv.NewEnum("black", "white", "red")
    var c string
    r.Named("colour", &c).Enum(colour).Default("black")

Enumerated values are decoded by unambiguous prefix like option names, so
--colour bl yields "black" in c. An int destination receives the name's
position instead.

Validators run after decoding, in the order chained, and the first failure
aborts the parse. Range bounds numbers inclusively, Length bounds text in
runes, Regex matches text against a pattern and can extract submatches:

    var hostport, host, port string
    r.Named("addr", &hostport).
    	Regex(`^([^:]+):(\d+)$`, "addr must be host:port").
    	Capture(1, &host).Capture(2, &port)

Groups

Registry.Group constrains which parameters may appear together. Members are
canonical names and must carry indicators. MutuallyExclusive admits at most
one member, AllOrNone all or none of them, ExactlyOne precisely one,
AtLeastOne one or more, and FirstOrNone a leading run of the member list in
its declared order. Groups are checked once, after all tokens are consumed.

Errors and panics

Definition errors are bugs in the program: registration methods panic
immediately, at build time of the registry. Errors in user input never
panic; Parse returns a *ParseError carrying a classification (FailureKind),
the offending name and value, and competing candidates for ambiguity
reports. The first failure aborts the parse, and after a failure the
destinations are undefined and must not be acted upon.

Usage text

WriteUsage generates a plain-text summary of the registered parameters from
their metadata alone: names, documentation, type, mandatory or optional
status, defaults, radix and validator annotations. Parameters registered
with Hidden are omitted. The output never depends on parse state, so the
text is identical before, after and between parses.

Concurrency

A Registry is built once and is read-only from the first Parse on. Parsing
keeps all transient state per call, so concurrent Parse calls on one
registry are safe provided each call writes to disjoint destinations,
which in practice means at most one Parse per registry at a time unless
destinations are arranged per call.

*/
package argv
