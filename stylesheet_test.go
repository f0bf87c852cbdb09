package utilcss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRule(selector, atRule string, specificity int, props ...Property) Rule {
	return Rule{
		Selector:    selector,
		AtRule:      atRule,
		Properties:  props,
		Specificity: specificity,
		Valid:       true,
	}
}

func TestStylesheetMergeLastWriteWins(t *testing.T) {
	s := NewStylesheet(nil)
	s.Add(validRule(".btn", "", 10,
		Property{Name: "color", Value: "red"},
		Property{Name: "padding", Value: "1rem"},
	))
	s.Add(validRule(".btn", "", 10,
		Property{Name: "color", Value: "blue"},
		Property{Name: "margin", Value: "2rem"},
	))

	require.Equal(t, 1, s.Len())
	require.Equal(t, ".btn {\n  color: blue;\n  padding: 1rem;\n  margin: 2rem;\n}\n", s.Serialize())
}

func TestStylesheetDistinctAtRulesDistinctEntries(t *testing.T) {
	s := NewStylesheet(nil)
	s.Add(validRule(".a", "", 10, Property{Name: "color", Value: "red"}))
	s.Add(validRule(".a", "@media (min-width: 640px)", 15, Property{Name: "color", Value: "blue"}))

	require.Equal(t, 2, s.Len())
}

func TestStylesheetSkipsInvalidAndEmpty(t *testing.T) {
	s := NewStylesheet(nil)

	rule := validRule(".a", "", 10, Property{Name: "color", Value: "red"})
	rule.Valid = false
	s.Add(rule)
	s.Add(validRule(".group", "", 10)) // no declarations

	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Serialize())
}

func TestStylesheetOutputOrdering(t *testing.T) {
	s := NewStylesheet(nil)

	// Inserted deliberately out of output order.
	s.Add(validRule(".x", "@supports (display: grid)", 10, Property{Name: "display", Value: "grid"}))
	s.Add(validRule(".x", "@media (min-width: 1024px)", 15, Property{Name: "width", Value: "3rem"}))
	s.Add(validRule(".x", "@media (min-width: 640px)", 15, Property{Name: "width", Value: "1rem"}))
	s.Add(validRule(".x:hover", "", 20, Property{Name: "color", Value: "blue"}))
	s.Add(validRule(".x", "", 10, Property{Name: "color", Value: "red"}))

	want := ".x {\n" +
		"  color: red;\n" +
		"}\n" +
		"\n" +
		".x:hover {\n" +
		"  color: blue;\n" +
		"}\n" +
		"\n" +
		"@media (min-width: 640px) {\n" +
		"  .x {\n" +
		"    width: 1rem;\n" +
		"  }\n" +
		"}\n" +
		"\n" +
		"@media (min-width: 1024px) {\n" +
		"  .x {\n" +
		"    width: 3rem;\n" +
		"  }\n" +
		"}\n" +
		"\n" +
		"@supports (display: grid) {\n" +
		"  .x {\n" +
		"    display: grid;\n" +
		"  }\n" +
		"}\n"
	require.Equal(t, want, s.Serialize())
}

func TestStylesheetEqualSpecificityOrdersBySelector(t *testing.T) {
	s := NewStylesheet(nil)
	s.Add(validRule(".b", "", 10, Property{Name: "color", Value: "blue"}))
	s.Add(validRule(".a", "", 10, Property{Name: "color", Value: "red"}))

	require.Equal(t,
		".a {\n  color: red;\n}\n\n.b {\n  color: blue;\n}\n",
		s.Serialize())
}

func TestStylesheetImportantSuffix(t *testing.T) {
	s := NewStylesheet(nil)
	s.Add(validRule(".p-4", "", 10, Property{Name: "padding", Value: "1rem", Important: true}))

	require.Equal(t, ".p-4 {\n  padding: 1rem !important;\n}\n", s.Serialize())
}

func TestStylesheetPermutationInvariance(t *testing.T) {
	rules := []Rule{
		validRule(".a", "", 10, Property{Name: "color", Value: "red"}),
		validRule(".b:hover", "", 20, Property{Name: "color", Value: "blue"}),
		validRule(".c", "@media (min-width: 640px)", 15, Property{Name: "display", Value: "flex"}),
		validRule(".d", "@media (min-width: 768px)", 15, Property{Name: "display", Value: "grid"}),
	}
	permutations := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{2, 0, 3, 1},
		{1, 3, 0, 2},
	}

	var outputs []string
	for _, perm := range permutations {
		s := NewStylesheet(nil)
		for _, i := range perm {
			s.Add(rules[i])
		}
		outputs = append(outputs, s.Serialize())
	}
	for i := 1; i < len(outputs); i++ {
		require.Equal(t, outputs[0], outputs[i])
	}
}

func TestStylesheetCustomBreakpointOrdering(t *testing.T) {
	bp := Breakpoints{"tablet": "48rem", "desktop": "1080px"}
	s := NewStylesheet(bp)

	// 48rem is 768 comparable pixels, so tablet sorts before desktop.
	s.Add(validRule(".x", "@media (min-width: 1080px)", 15, Property{Name: "width", Value: "2rem"}))
	s.Add(validRule(".x", "@media (min-width: 48rem)", 15, Property{Name: "width", Value: "1rem"}))

	css := s.Serialize()
	tablet := strings.Index(css, "48rem")
	desktop := strings.Index(css, "1080px")
	require.NotEqual(t, -1, tablet)
	require.NotEqual(t, -1, desktop)
	require.Less(t, tablet, desktop)
}
