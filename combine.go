package utilcss

import (
	"strings"
)

// combine assembles the candidate rule for one parsed class from its
// canonical-order variant list and resolved declarations. It always
// returns a rule, even when the combination is invalid, so the caller
// can report the failure for exactly this class.
func combine(class string, tags []Variant, props []Property, baseWeight int) Rule {
	rule := Rule{
		Class:       class,
		Properties:  props,
		Specificity: baseWeight,
		Valid:       true,
	}

	var ancestors strings.Builder
	var suffixes strings.Builder
	seen := make(map[VariantKind]string, len(tags))

	for _, tag := range tags {
		rule.Specificity += tag.Weight

		if prev, dup := seen[tag.Kind]; dup && tag.Unique {
			rule.Valid = false
			rule.Errors = append(rule.Errors, &InvalidVariantError{
				Class:  class,
				Reason: "duplicate " + tag.Kind.String() + " variant (" + prev + ", " + tag.Name + ")",
			})
			continue
		}
		seen[tag.Kind] = tag.Name

		if tag.AtRule != "" {
			if rule.AtRule != "" && rule.AtRule != tag.AtRule {
				rule.Valid = false
				rule.Errors = append(rule.Errors, &InvalidVariantError{
					Class:  class,
					Reason: "conflicting at-rules " + rule.AtRule + " and " + tag.AtRule,
				})
				continue
			}
			rule.AtRule = tag.AtRule
		}

		if tag.Ancestor {
			ancestors.WriteString(tag.Selector)
		} else {
			suffixes.WriteString(tag.Selector)
		}
	}

	rule.Selector = ancestors.String() + "." + escapeClass(class) + suffixes.String()
	return rule
}

// escapeClass escapes a raw class string for use as a CSS class
// selector. Everything outside [A-Za-z0-9_-] is backslash-escaped so
// variant colons, bracket values and fraction slashes survive in the
// selector, mirroring the class attribute they were written in.
func escapeClass(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 4)
	for _, r := range class {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r > 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
