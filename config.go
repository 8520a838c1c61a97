package argv

// Config controls the behavior of one Parse call.
type Config struct {
	// AllowTrailingPositional accepts positional tokens in excess of the
	// registered positional parameters instead of failing the parse.
	AllowTrailingPositional bool

	// Trailing receives the excess positional tokens in order when
	// AllowTrailingPositional is set and Trailing is not nil. Excess
	// tokens are discarded otherwise.
	Trailing *[]string
}
