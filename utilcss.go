// Package utilcss turns utility class tokens into CSS rules.
//
// utilcss resolves short class strings such as "dark:hover:bg-blue-500/50"
// through a fixed pipeline: variant prefixes are split off the front of
// the class, the remaining utility token is dispatched to a resolver via
// a longest-prefix trie, the variants are combined into a selector and
// optional wrapping at-rule, and the resulting rules are aggregated into
// a deterministic stylesheet.
//
// # Generation
//
// Build an engine once and reuse it for any number of batches:
//
//	engine := utilcss.New(utilcss.Config{})
//	result := engine.Generate([]string{"p-4", "dark:bg-blue-500", "sm:flex"})
//	fmt.Print(result.CSS)
//
// Generate never aborts a batch: each class either contributes a rule or
// is reported in result.Classes with a typed error (UnknownUtilityError,
// InvalidVariantError, MalformedValueError).
//
// An Engine is immutable after New returns and may be shared across
// goroutines; every Generate call owns its own stylesheet.
//
// # Custom utilities and variants
//
// The default registry covers a representative utility set backed by
// theme scale tables. Callers can register their own prefixes:
//
//	reg := utilcss.DefaultRegistry(utilcss.DefaultTheme())
//	reg.Register("glow-", &utilcss.Utility{
//		Prefix:     "glow-",
//		Properties: []string{"box-shadow"},
//		Scale:      map[string]string{"sm": "0 0 4px currentColor"},
//	})
//	engine := utilcss.New(utilcss.Config{Registry: reg})
//
// # CLI Tool
//
// utilcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/utilcss/cmd/utilcss@latest
package utilcss
