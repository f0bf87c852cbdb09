package utilcss

// Property is a single CSS declaration produced by a resolver.
type Property struct {
	Name      string
	Value     string
	Important bool
}

// Rule is the combined output for one class: the selector, the optional
// wrapping at-rule, the resolved declarations, and the bookkeeping used
// for output ordering and error reporting.
//
// A Rule is always produced by the combination step, even when the
// variant combination is invalid, so the failure can be reported per
// class instead of silently dropped. Only valid rules reach the
// stylesheet.
type Rule struct {
	Class       string     // original class string, e.g. "dark:hover:bg-blue-500"
	Selector    string     // ".dark .dark\\:hover\\:bg-blue-500:hover"
	AtRule      string     // "@media (min-width: 640px)" or "" for bare rules
	Properties  []Property // ordered as resolved
	Specificity int
	Valid       bool
	Errors      []error
}

// Config configures an Engine. The zero value selects the default
// registry, theme, breakpoints and variants.
type Config struct {
	// Registry resolves utility tokens. Defaults to
	// DefaultRegistry(Theme).
	Registry *Registry

	// Theme supplies the scale tables behind the default registry.
	// Ignored when Registry is set. Defaults to DefaultTheme().
	Theme *Theme

	// Breakpoints maps responsive variant names to min-width values.
	// Defaults to DefaultBreakpoints().
	Breakpoints Breakpoints

	// DarkSelector is the ancestor selector emitted for the dark:
	// variant. Defaults to ".dark".
	DarkSelector string

	// Variants registers additional variant prefixes on top of the
	// built-in set. A variant with a name already taken replaces the
	// built-in definition.
	Variants []Variant

	// BaseWeight is the specificity assigned to a rule before any
	// variant weights are added. Defaults to 10.
	BaseWeight int
}
