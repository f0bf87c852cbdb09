package utilcss

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBasicPipeline(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{
		"p-4",
		"dark:bg-blue-500",
		"hover:text-red-500",
		"sm:flex",
	})

	require.Len(t, result.Classes, 4)
	for class, cr := range result.Classes {
		require.NoError(t, cr.Err, "class %q", class)
		require.Len(t, cr.Selectors, 1, "class %q", class)
	}

	assert.Equal(t, []string{`.p-4`}, result.Classes["p-4"].Selectors)
	assert.Equal(t, []string{`.dark .dark\:bg-blue-500`}, result.Classes["dark:bg-blue-500"].Selectors)
	assert.Equal(t, []string{`.hover\:text-red-500:hover`}, result.Classes["hover:text-red-500"].Selectors)
	assert.Equal(t, []string{`.sm\:flex`}, result.Classes["sm:flex"].Selectors)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "generate_basic", []byte(result.CSS))
}

func TestGenerateErrorIsolation(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{"p-4", "not-a-real-class", "flex"})

	require.NoError(t, result.Classes["p-4"].Err)
	require.NoError(t, result.Classes["flex"].Err)

	var unknown *UnknownUtilityError
	require.ErrorAs(t, result.Classes["not-a-real-class"].Err, &unknown)
	require.Equal(t, "not-a-real-class", unknown.Token)

	// The failing class contributes nothing; the siblings still emit.
	require.Contains(t, result.CSS, ".p-4 {")
	require.Contains(t, result.CSS, ".flex {")
	require.NotContains(t, result.CSS, "not-a-real-class")
}

func TestGenerateErrorKinds(t *testing.T) {
	engine := New(Config{})

	tests := []struct {
		name   string
		class  string
		target any
	}{
		{"no prefix match", "zzz-unheard-of", new(*UnknownUtilityError)},
		{"resolver miss is terminal", "p-999", new(*UnknownUtilityError)},
		{"unknown variant stays in token", "foo:p-4", new(*UnknownUtilityError)},
		{"malformed arbitrary value", "bg-[red", new(*MalformedValueError)},
		{"duplicate responsive variant", "sm:md:flex", new(*InvalidVariantError)},
		{"conflicting at-rules", "@sm:lg:flex", new(*InvalidVariantError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Generate([]string{tt.class})
			cr := result.Classes[tt.class]
			require.Error(t, cr.Err)
			switch target := tt.target.(type) {
			case **UnknownUtilityError:
				require.ErrorAs(t, cr.Err, target)
			case **MalformedValueError:
				require.ErrorAs(t, cr.Err, target)
			case **InvalidVariantError:
				require.ErrorAs(t, cr.Err, target)
			}
			require.Empty(t, result.CSS)
		})
	}
}

func TestGenerateSkipsEmptyAndDuplicateClasses(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{"p-4", "", "p-4", "p-4"})

	require.Len(t, result.Classes, 1)
	require.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n", result.CSS)
}

func TestGenerateIdempotent(t *testing.T) {
	engine := New(Config{})
	classes := []string{"dark:hover:bg-blue-500/50", "sm:w-1/2", "p-4!", "truncate"}

	first := engine.Generate(classes)
	second := engine.Generate(classes)
	require.Equal(t, first.CSS, second.CSS)

	// Input permutation also serializes identically.
	third := engine.Generate([]string{"truncate", "p-4!", "sm:w-1/2", "dark:hover:bg-blue-500/50"})
	require.Equal(t, first.CSS, third.CSS)
}

func TestGenerateImportantSuffix(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{"p-4!", "hover:truncate!"})

	require.NoError(t, result.Classes["p-4!"].Err)
	require.Contains(t, result.CSS, "padding: 1rem !important;")

	// Every declaration of a multi-property utility gets the flag.
	require.Contains(t, result.CSS, "overflow: hidden !important;")
	require.Contains(t, result.CSS, "text-overflow: ellipsis !important;")
	require.Contains(t, result.CSS, "white-space: nowrap !important;")
}

func TestGenerateMarkerClassesEmitNothing(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{"group", "peer", "group-hover:underline"})

	require.NoError(t, result.Classes["group"].Err)
	require.Empty(t, result.Classes["group"].Selectors)
	require.NoError(t, result.Classes["peer"].Err)
	require.Empty(t, result.Classes["peer"].Selectors)

	// Only the consumer of the marker emits CSS.
	require.Equal(t,
		".group:hover .group-hover\\:underline {\n  text-decoration-line: underline;\n}\n",
		result.CSS)
}

func TestGenerateOpacityAndFractions(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{"bg-red-500/50", "w-1/2", "h-screen"})

	require.Contains(t, result.CSS, "background-color: color-mix(in srgb, #ef4444 50%, transparent);")
	require.Contains(t, result.CSS, "width: 50%;")
	require.Contains(t, result.CSS, "height: 100vh;")
}

func TestGenerateMaximalMunchDispatch(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{"border-t-2", "border-t", "border-red-500", "border", "text-lg", "text-center"})

	for class, cr := range result.Classes {
		require.NoError(t, cr.Err, "class %q", class)
	}
	require.Contains(t, result.CSS, "border-top-width: 2px;")
	require.Contains(t, result.CSS, "border-top-width: 1px;")
	require.Contains(t, result.CSS, "border-color: #ef4444;")
	require.Contains(t, result.CSS, "border-width: 1px;")
	require.Contains(t, result.CSS, "font-size: 1.125rem;")
	require.Contains(t, result.CSS, "text-align: center;")
}

func TestGenerateCustomConfig(t *testing.T) {
	engine := New(Config{
		Breakpoints:  Breakpoints{"wide": "90rem"},
		DarkSelector: `[data-theme="dark"]`,
	})
	result := engine.Generate([]string{"wide:flex", "dark:flex", "sm:flex"})

	require.NoError(t, result.Classes["wide:flex"].Err)
	require.Contains(t, result.CSS, "@media (min-width: 90rem) {")
	require.Contains(t, result.CSS, `[data-theme="dark"] .dark\:flex`)

	// The default scale is replaced, not extended.
	var unknown *UnknownUtilityError
	require.ErrorAs(t, result.Classes["sm:flex"].Err, &unknown)
	require.Equal(t, "sm:flex", unknown.Token)
}

func TestGenerateCustomRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("elevate-", &Utility{
		Prefix:     "elevate-",
		Properties: []string{"box-shadow"},
		Scale:      map[string]string{"1": "0 1px 2px rgb(0 0 0 / 0.2)"},
	})
	engine := New(Config{Registry: reg})

	result := engine.Generate([]string{"hover:elevate-1", "p-4"})
	require.NoError(t, result.Classes["hover:elevate-1"].Err)
	require.Contains(t, result.CSS, "box-shadow: 0 1px 2px rgb(0 0 0 / 0.2);")

	// Built-ins are gone once a custom registry takes over.
	require.Error(t, result.Classes["p-4"].Err)
}

func TestResultErrsSorted(t *testing.T) {
	engine := New(Config{})
	result := engine.Generate([]string{"zz-bad", "aa-bad", "p-4", "mm-bad"})

	failed := result.Errs()
	require.Len(t, failed, 3)
	require.Equal(t, "aa-bad", failed[0].Class)
	require.Equal(t, "mm-bad", failed[1].Class)
	require.Equal(t, "zz-bad", failed[2].Class)
}
