package utilcss

import (
	"sort"
	"strings"
)

// VariantKind classifies a variant prefix. The declaration order below
// is the canonical priority used for selector nesting: variants are
// always applied dark > group > peer > state > pseudo-element >
// container > layer > responsive, regardless of the order they were
// written in the class string.
type VariantKind int

const (
	KindDarkMode VariantKind = iota
	KindGroup
	KindPeer
	KindState
	KindPseudoElement
	KindContainer
	KindLayer
	KindResponsive
	KindCustom
)

func (k VariantKind) String() string {
	switch k {
	case KindDarkMode:
		return "dark-mode"
	case KindGroup:
		return "group"
	case KindPeer:
		return "peer"
	case KindState:
		return "state"
	case KindPseudoElement:
		return "pseudo-element"
	case KindContainer:
		return "container"
	case KindLayer:
		return "layer"
	case KindResponsive:
		return "responsive"
	}
	return "custom"
}

// Variant is one registered variant prefix definition: the selector
// fragment or at-rule it contributes, its specificity weight, and
// whether it may appear more than once per class.
type Variant struct {
	Name     string      // prefix without the trailing colon, e.g. "hover"
	Kind     VariantKind
	Selector string      // ":hover", "::before", or an ancestor fragment like ".dark "
	AtRule   string      // wrapping at-rule prelude, e.g. "@media (min-width: 640px)"
	Weight   int         // specificity contribution, always >= 1
	Ancestor bool        // Selector is prepended before the base selector
	Unique   bool        // at most one variant of this kind per class
}

// variantSet indexes registered variants by prefix name. It is built
// once per engine and read-only afterwards.
type variantSet struct {
	byName map[string]Variant
}

func newVariantSet(bp Breakpoints, darkSelector string, extra []Variant) *variantSet {
	s := &variantSet{byName: make(map[string]Variant, 64)}
	for _, v := range builtinVariants(darkSelector) {
		s.byName[v.Name] = v
	}
	for name, width := range bp {
		s.byName[name] = Variant{
			Name:   name,
			Kind:   KindResponsive,
			AtRule: "@media (min-width: " + width + ")",
			Weight: 5,
			Unique: true,
		}
	}
	for _, v := range extra {
		if v.Weight < 1 {
			v.Weight = 1
		}
		s.byName[v.Name] = v
	}
	return s
}

// Split strips recognized variant prefixes off the head of class and
// returns them in canonical order together with the base token. An
// unrecognized segment before a colon is not a variant: it stays part
// of the base token for resolution to accept or reject.
func (s *variantSet) Split(class string) ([]Variant, string) {
	var tags []Variant
	rest := class
	for {
		i := strings.IndexByte(rest, ':')
		if i < 0 {
			break
		}
		v, ok := s.byName[rest[:i]]
		if !ok {
			break
		}
		tags = append(tags, v)
		rest = rest[i+1:]
	}
	// Stable sort keeps input order among repeated tags of one kind.
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Kind < tags[j].Kind })
	return tags, rest
}

// builtinVariants returns the fixed variant definitions that do not
// depend on the breakpoint registry.
func builtinVariants(darkSelector string) []Variant {
	if darkSelector == "" {
		darkSelector = ".dark"
	}
	vs := []Variant{
		{Name: "dark", Kind: KindDarkMode, Selector: darkSelector + " ", Weight: 25, Ancestor: true, Unique: true},
	}

	groupStates := map[string]string{
		"group-hover":        ":hover",
		"group-focus":        ":focus",
		"group-active":       ":active",
		"group-focus-within": ":focus-within",
	}
	for name, state := range groupStates {
		vs = append(vs, Variant{Name: name, Kind: KindGroup, Selector: ".group" + state + " ", Weight: 20, Ancestor: true})
	}

	peerStates := map[string]string{
		"peer-hover":    ":hover",
		"peer-focus":    ":focus",
		"peer-checked":  ":checked",
		"peer-disabled": ":disabled",
	}
	for name, state := range peerStates {
		vs = append(vs, Variant{Name: name, Kind: KindPeer, Selector: ".peer" + state + " ~ ", Weight: 20, Ancestor: true})
	}

	states := map[string]string{
		"hover":         ":hover",
		"focus":         ":focus",
		"focus-within":  ":focus-within",
		"focus-visible": ":focus-visible",
		"active":        ":active",
		"visited":       ":visited",
		"disabled":      ":disabled",
		"checked":       ":checked",
		"required":      ":required",
		"first":         ":first-child",
		"last":          ":last-child",
		"odd":           ":nth-child(odd)",
		"even":          ":nth-child(even)",
	}
	for name, sel := range states {
		vs = append(vs, Variant{Name: name, Kind: KindState, Selector: sel, Weight: 10})
	}

	pseudoElements := map[string]string{
		"before":      "::before",
		"after":       "::after",
		"placeholder": "::placeholder",
		"selection":   "::selection",
		"marker":      "::marker",
		"backdrop":    "::backdrop",
	}
	for name, sel := range pseudoElements {
		vs = append(vs, Variant{Name: name, Kind: KindPseudoElement, Selector: sel, Weight: 10})
	}

	// Container query variants mirror the responsive names with an @
	// prefix, against the container width scale.
	containers := map[string]string{
		"@sm":  "24rem",
		"@md":  "28rem",
		"@lg":  "32rem",
		"@xl":  "36rem",
		"@2xl": "42rem",
	}
	for name, width := range containers {
		vs = append(vs, Variant{Name: name, Kind: KindContainer, AtRule: "@container (min-width: " + width + ")", Weight: 5, Unique: true})
	}

	for _, layer := range []string{"base", "components", "utilities"} {
		vs = append(vs, Variant{Name: "layer-" + layer, Kind: KindLayer, AtRule: "@layer " + layer, Weight: 5, Unique: true})
	}

	return vs
}
