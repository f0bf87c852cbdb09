package utilcss

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by a Resolver when the token matched the
// registered prefix but no value could be derived from the remainder
// (unknown scale suffix, disallowed modifier, and so on). It signals a
// clean miss rather than malformed input.
var ErrNoMatch = errors.New("no matching value")

// UnknownUtilityError reports a base token that no registered resolver
// could handle, either because no prefix matched or because the
// selected resolver returned ErrNoMatch.
type UnknownUtilityError struct {
	Token string
}

func (e *UnknownUtilityError) Error() string {
	return fmt.Sprintf("unknown utility %q", e.Token)
}

// InvalidVariantError reports a variant combination rejected during
// selector assembly: a unique variant type appearing twice, or two
// variants demanding distinct wrapping at-rules.
type InvalidVariantError struct {
	Class  string
	Reason string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid variant combination in %q: %s", e.Class, e.Reason)
}

// MalformedValueError reports bracket or parenthesis value syntax the
// selected resolver could not parse: unterminated "[...]", an empty
// arbitrary value, or a "(...)" reference that is not a custom
// property.
type MalformedValueError struct {
	Token  string
	Detail string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value in %q: %s", e.Token, e.Detail)
}
