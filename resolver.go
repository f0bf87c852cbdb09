package utilcss

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Resolver turns a utility token into CSS declarations.
//
// Implementations must be pure: the same token always yields the same
// properties and no shared state is touched, so a resolver can be
// registered once and used from any number of concurrent sessions.
//
// A return of ErrNoMatch means the token matched the registered prefix
// but carries no resolvable value; a *MalformedValueError means the
// value syntax itself is broken. Any other error is treated as
// malformed input too. Once the registry has selected a resolver its
// verdict is final: the engine never falls back to a shorter-prefix
// resolver.
type Resolver interface {
	Resolve(token string) ([]Property, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(token string) ([]Property, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(token string) ([]Property, error) { return f(token) }

// Modifier selects how a trailing "/..." segment of a token is
// interpreted by a Utility.
type Modifier int

const (
	// ModifierNone rejects tokens with a slash segment unless the
	// slash is part of a scale key.
	ModifierNone Modifier = iota
	// ModifierOpacity strips a trailing /NN (0-100) and mixes the
	// resolved color with transparent.
	ModifierOpacity
	// ModifierFraction keeps the slash in the suffix so fraction keys
	// like "1/2" resolve through the scale table.
	ModifierFraction
)

// Utility is the generic resolver behind a registered prefix: a static
// suffix table plus the shared handling for arbitrary values, custom
// property references and trailing modifiers. The per-category lookup
// tables stay data; this type is the one algorithm consulting them.
type Utility struct {
	Prefix     string
	Properties []string              // CSS property names the resolved value feeds
	Scale      map[string]string     // literal suffix -> concrete value
	Keywords   map[string][]Property // irregular suffixes with their own declarations
	Modifier   Modifier
	Arbitrary  bool // accept [value] suffixes
	CustomProp bool // accept (--name) suffixes
}

// Resolve implements Resolver.
func (u *Utility) Resolve(token string) ([]Property, error) {
	suffix, ok := strings.CutPrefix(token, u.Prefix)
	if !ok {
		return nil, ErrNoMatch
	}

	if props, ok := u.Keywords[suffix]; ok {
		out := make([]Property, len(props))
		copy(out, props)
		return out, nil
	}

	opacity := -1
	if u.Modifier == ModifierOpacity {
		if i := strings.LastIndexByte(suffix, '/'); i >= 0 && !strings.ContainsAny(suffix[i:], "])") {
			pct, err := strconv.Atoi(suffix[i+1:])
			if err != nil || pct < 0 || pct > 100 {
				return nil, ErrNoMatch
			}
			opacity = pct
			suffix = suffix[:i]
		}
	}

	value, err := u.resolveValue(token, suffix)
	if err != nil {
		return nil, err
	}
	if opacity >= 0 {
		value = fmt.Sprintf("color-mix(in srgb, %s %d%%, transparent)", value, opacity)
	}

	props := make([]Property, len(u.Properties))
	for i, name := range u.Properties {
		props[i] = Property{Name: name, Value: value}
	}
	return props, nil
}

func (u *Utility) resolveValue(token, suffix string) (string, error) {
	switch {
	case u.Arbitrary && strings.HasPrefix(suffix, "["):
		if !strings.HasSuffix(suffix, "]") {
			return "", &MalformedValueError{Token: token, Detail: "unterminated arbitrary value"}
		}
		inner := suffix[1 : len(suffix)-1]
		if inner == "" {
			return "", &MalformedValueError{Token: token, Detail: "empty arbitrary value"}
		}
		// Underscores stand in for spaces inside bracket values.
		value := strings.ReplaceAll(inner, "_", " ")
		if !validValue(value) {
			return "", &MalformedValueError{Token: token, Detail: "unparsable arbitrary value"}
		}
		return value, nil

	case u.CustomProp && strings.HasPrefix(suffix, "("):
		if !strings.HasSuffix(suffix, ")") {
			return "", &MalformedValueError{Token: token, Detail: "unterminated custom property reference"}
		}
		name := suffix[1 : len(suffix)-1]
		if !strings.HasPrefix(name, "--") || len(name) == 2 {
			return "", &MalformedValueError{Token: token, Detail: "custom property reference must name a --property"}
		}
		return "var(" + name + ")", nil

	default:
		value, ok := u.Scale[suffix]
		if !ok {
			return "", ErrNoMatch
		}
		return value, nil
	}
}

// Static returns a resolver that emits fixed declarations when the
// token is exactly name, e.g. "flex" -> display: flex.
func Static(name string, props ...Property) Resolver {
	return ResolverFunc(func(token string) ([]Property, error) {
		if token != name {
			return nil, ErrNoMatch
		}
		out := make([]Property, len(props))
		copy(out, props)
		return out, nil
	})
}

// validValue lexes s as a CSS component value sequence and reports
// whether it is structurally sound. Braces and semicolons cannot occur
// inside a declaration value and fail validation, as does any lexer
// error short of clean EOF.
func validValue(s string) bool {
	lexer := css.NewLexer(parse.NewInputString(s))
	depth := 0
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return errors.Is(lexer.Err(), io.EOF) && depth == 0
		case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken:
			return false
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth < 0 {
				return false
			}
		case css.BadStringToken, css.BadURLToken:
			return false
		}
	}
}
