package utilcss

import (
	"errors"
	"sort"
	"strings"
)

// Engine runs the class resolution pipeline: split variants, resolve
// the base token through the registry, combine into a rule, aggregate
// into a stylesheet. An Engine is immutable once New returns and may
// be shared across concurrent generation sessions; every Generate call
// owns its own Stylesheet.
type Engine struct {
	registry    *Registry
	variants    *variantSet
	breakpoints Breakpoints
	baseWeight  int
}

// New builds an engine from config, filling unset fields with the
// defaults documented on Config.
func New(config Config) *Engine {
	bp := config.Breakpoints
	if bp == nil {
		bp = DefaultBreakpoints()
	}
	reg := config.Registry
	if reg == nil {
		reg = DefaultRegistry(config.Theme)
	}
	base := config.BaseWeight
	if base <= 0 {
		base = 10
	}
	return &Engine{
		registry:    reg,
		variants:    newVariantSet(bp, config.DarkSelector, config.Variants),
		breakpoints: bp,
		baseWeight:  base,
	}
}

// ClassResult records the outcome for a single input class: either the
// selectors it produced or the error that rejected it.
type ClassResult struct {
	Class     string
	Selectors []string
	Err       error
}

// Result is the output of one generation pass.
type Result struct {
	// CSS is the serialized stylesheet for every class that resolved.
	CSS string
	// Classes maps each distinct input class to its outcome. A class
	// that fails never disappears silently; it is recorded here with a
	// typed error.
	Classes map[string]ClassResult
}

// Errs returns the failed class results sorted by class string.
func (r *Result) Errs() []ClassResult {
	var failed []ClassResult
	for _, cr := range r.Classes {
		if cr.Err != nil {
			failed = append(failed, cr)
		}
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i].Class < failed[j].Class })
	return failed
}

// Generate runs one batch of classes through the pipeline and returns
// the serialized CSS plus the per-class result map. A failure in one
// class never aborts its siblings; the batch always completes.
func (e *Engine) Generate(classes []string) *Result {
	sheet := NewStylesheet(e.breakpoints)
	result := &Result{Classes: make(map[string]ClassResult, len(classes))}

	for _, class := range classes {
		if class == "" {
			continue
		}
		if _, done := result.Classes[class]; done {
			continue
		}
		result.Classes[class] = e.generateClass(class, sheet)
	}

	result.CSS = sheet.Serialize()
	return result
}

// generateClass runs the strictly linear pipeline for one class. There
// are no retries and no backtracking: a miss from the resolver the trie
// selected is terminal, never re-dispatched to a shorter prefix.
func (e *Engine) generateClass(class string, sheet *Stylesheet) ClassResult {
	tags, token := e.variants.Split(class)

	// A trailing "!" marks every declaration of the class important.
	important := false
	if strings.HasSuffix(token, "!") {
		important = true
		token = token[:len(token)-1]
	}

	resolver, _, ok := e.registry.Resolve(token)
	if !ok {
		return ClassResult{Class: class, Err: &UnknownUtilityError{Token: token}}
	}
	props, err := resolver.Resolve(token)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			err = &UnknownUtilityError{Token: token}
		}
		return ClassResult{Class: class, Err: err}
	}
	if important {
		for i := range props {
			props[i].Important = true
		}
	}

	rule := combine(class, tags, props, e.baseWeight)
	if !rule.Valid {
		return ClassResult{Class: class, Err: rule.Errors[0]}
	}
	sheet.Add(rule)
	if len(rule.Properties) == 0 {
		// Marker classes like "group" resolve but emit no rule.
		return ClassResult{Class: class}
	}
	return ClassResult{Class: class, Selectors: []string{rule.Selector}}
}
