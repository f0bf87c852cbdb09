package utilcss

import (
	"sort"
	"strings"
)

// Stylesheet accumulates the valid rules of one generation pass keyed
// by (selector, at-rule) and serializes them to deterministic CSS
// text. A Stylesheet lives for exactly one Generate call and must not
// be shared between sessions.
type Stylesheet struct {
	entries     map[ruleKey]*sheetEntry
	breakpoints Breakpoints
}

type ruleKey struct {
	selector string
	atRule   string
}

type sheetEntry struct {
	key         ruleKey
	props       []Property
	index       map[string]int // property name -> position in props
	specificity int
}

// NewStylesheet returns an empty stylesheet using the given breakpoint
// registry for output ordering.
func NewStylesheet(bp Breakpoints) *Stylesheet {
	if bp == nil {
		bp = DefaultBreakpoints()
	}
	return &Stylesheet{
		entries:     make(map[ruleKey]*sheetEntry),
		breakpoints: bp,
	}
}

// Add merges a rule into the sheet. Inserting under an existing
// (selector, at-rule) key overwrites same-named properties in place —
// last write wins per property — and appends new ones in arrival
// order, so untouched declarations keep their original position.
// Invalid rules are ignored; rejecting them is the caller's job.
func (s *Stylesheet) Add(rule Rule) {
	if !rule.Valid || len(rule.Properties) == 0 {
		return
	}
	key := ruleKey{selector: rule.Selector, atRule: rule.AtRule}
	entry, ok := s.entries[key]
	if !ok {
		entry = &sheetEntry{key: key, index: make(map[string]int, len(rule.Properties))}
		s.entries[key] = entry
	}
	if rule.Specificity > entry.specificity {
		entry.specificity = rule.Specificity
	}
	for _, p := range rule.Properties {
		if at, exists := entry.index[p.Name]; exists {
			entry.props[at] = p
			continue
		}
		entry.index[p.Name] = len(entry.props)
		entry.props = append(entry.props, p)
	}
}

// Len reports the number of distinct (selector, at-rule) entries.
func (s *Stylesheet) Len() int {
	return len(s.entries)
}

// Serialize renders the sheet as CSS text. Bare rules come first, then
// one group per at-rule: registered breakpoints ascending by min-width,
// then any remaining at-rules in lexical order. Within a group rules
// are ordered by specificity, then selector, so any permutation of the
// same input class set serializes identically.
func (s *Stylesheet) Serialize() string {
	groups := make(map[string][]*sheetEntry)
	for _, entry := range s.entries {
		groups[entry.key.atRule] = append(groups[entry.key.atRule], entry)
	}

	atRules := make([]string, 0, len(groups))
	for atRule := range groups {
		atRules = append(atRules, atRule)
	}
	sort.Slice(atRules, func(i, j int) bool {
		return s.atRuleLess(atRules[i], atRules[j])
	})

	var b strings.Builder
	for _, atRule := range atRules {
		entries := groups[atRule]
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].specificity != entries[j].specificity {
				return entries[i].specificity < entries[j].specificity
			}
			return entries[i].key.selector < entries[j].key.selector
		})

		indent := ""
		if atRule != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(atRule)
			b.WriteString(" {\n")
			indent = "  "
		}
		for i, entry := range entries {
			if i > 0 || (atRule == "" && b.Len() > 0) {
				b.WriteString("\n")
			}
			writeEntry(&b, entry, indent)
		}
		if atRule != "" {
			b.WriteString("}\n")
		}
	}
	return b.String()
}

func writeEntry(b *strings.Builder, entry *sheetEntry, indent string) {
	b.WriteString(indent)
	b.WriteString(entry.key.selector)
	b.WriteString(" {\n")
	for _, p := range entry.props {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		if p.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

// atRuleLess orders at-rule groups: none first, then breakpoint media
// queries by ascending width, then everything else lexically.
func (s *Stylesheet) atRuleLess(a, b string) bool {
	ra, wa := s.atRuleRank(a)
	rb, wb := s.atRuleRank(b)
	if ra != rb {
		return ra < rb
	}
	if ra == 1 && wa != wb {
		return wa < wb
	}
	return a < b
}

// atRuleRank classifies an at-rule for group ordering: 0 = bare rules,
// 1 = a registered breakpoint (with its width), 2 = anything else.
func (s *Stylesheet) atRuleRank(atRule string) (int, float64) {
	if atRule == "" {
		return 0, 0
	}
	for _, width := range s.breakpoints {
		if atRule == "@media (min-width: "+width+")" {
			if w, ok := widthValue(width); ok {
				return 1, w
			}
		}
	}
	return 2, 0
}
