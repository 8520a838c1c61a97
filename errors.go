package argv

import "fmt"

// FailureKind discriminates the ways a parse can fail.
type FailureKind int

const (
	// UnknownOption reports an option name or abbreviation matching no
	// registered parameter.
	UnknownOption FailureKind = iota

	// AmbiguousAbbreviation reports a fragment which is a prefix of two or
	// more long option names, or of two or more enumerated value names.
	AmbiguousAbbreviation

	// MissingMandatoryArgument reports a mandatory parameter which never
	// received a value, or an option supplied without its value.
	MissingMandatoryArgument

	// DuplicateNamedArgument reports a non-incremental named parameter
	// supplied more than once.
	DuplicateNamedArgument

	// TypeCoercionFailed reports a value which cannot be converted to the
	// type of its destination.
	TypeCoercionFailed

	// ValidationFailed reports a decoded value rejected by a validator.
	ValidationFailed

	// GroupConstraintViolated reports a group whose membership policy is
	// not satisfied by the parameters actually supplied.
	GroupConstraintViolated

	// UnexpectedTrailingPositional reports positional arguments in excess
	// of the registered positional parameters.
	UnexpectedTrailingPositional
)

var failureNames = map[FailureKind]string{
	UnknownOption:                "unknown option",
	AmbiguousAbbreviation:        "ambiguous abbreviation",
	MissingMandatoryArgument:     "missing mandatory argument",
	DuplicateNamedArgument:       "duplicate named argument",
	TypeCoercionFailed:           "type coercion failed",
	ValidationFailed:             "validation failed",
	GroupConstraintViolated:      "group constraint violated",
	UnexpectedTrailingPositional: "unexpected trailing positional",
}

func (k FailureKind) String() string {
	if s, ok := failureNames[k]; ok {
		return s
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// ParseError is the single structured failure produced by a parse. The
// first error encountered aborts the parse, so at most one ParseError is
// ever reported per call. After a failed parse the destination slots are
// undefined and must not be acted upon.
type ParseError struct {
	// Kind classifies the failure.
	Kind FailureKind

	// Name is the parameter, option or group name as it appears in the
	// message: "--size" for long options, "-s" for shorts, the bare name
	// for positional parameters, `group "x"` for groups.
	Name string

	// Value is the offending raw text, when the failure concerns one.
	Value string

	// Candidates lists competing names: the full names matching an
	// ambiguous abbreviation, or the members involved in a group
	// violation.
	Candidates []string

	message string
}

func (e *ParseError) Error() string {
	return e.message
}

// parseErr builds a ParseError with the message convention used throughout
// the package.
func parseErr(kind FailureKind, name string, format string, a ...interface{}) *ParseError {
	return &ParseError{
		Kind:    kind,
		Name:    name,
		message: fmt.Sprintf("Parse error on %s: %s", name, fmt.Sprintf(format, a...)),
	}
}
