package utilcss

// DefaultRegistry builds the built-in utility registry against the
// given theme. The returned registry is read-only as far as the engine
// is concerned; callers may keep registering prefixes until the first
// Generate call shares it across sessions.
func DefaultRegistry(theme *Theme) *Registry {
	if theme == nil {
		theme = DefaultTheme()
	}
	reg := NewRegistry()

	sizing := merge(theme.Spacing, theme.Fractions)

	// Spacing.
	spacingUtilities := map[string][]string{
		"p-":  {"padding"},
		"px-": {"padding-left", "padding-right"},
		"py-": {"padding-top", "padding-bottom"},
		"pt-": {"padding-top"},
		"pr-": {"padding-right"},
		"pb-": {"padding-bottom"},
		"pl-": {"padding-left"},
		"m-":  {"margin"},
		"mx-": {"margin-left", "margin-right"},
		"my-": {"margin-top", "margin-bottom"},
		"mt-": {"margin-top"},
		"mr-": {"margin-right"},
		"mb-": {"margin-bottom"},
		"ml-": {"margin-left"},
		"gap-":   {"gap"},
		"gap-x-": {"column-gap"},
		"gap-y-": {"row-gap"},
		"inset-":  {"inset"},
		"top-":    {"top"},
		"right-":  {"right"},
		"bottom-": {"bottom"},
		"left-":   {"left"},
	}
	for prefix, props := range spacingUtilities {
		reg.Register(prefix, &Utility{
			Prefix:     prefix,
			Properties: props,
			Scale:      theme.Spacing,
			Arbitrary:  true,
			CustomProp: true,
		})
	}

	// Sizing accepts fractions on top of the spacing scale.
	sizingUtilities := map[string][]string{
		"w-":     {"width"},
		"h-":     {"height"},
		"min-w-": {"min-width"},
		"min-h-": {"min-height"},
		"max-w-": {"max-width"},
		"max-h-": {"max-height"},
	}
	for prefix, props := range sizingUtilities {
		scale := merge(sizing, map[string]string{"screen": screenValue(prefix)})
		reg.Register(prefix, &Utility{
			Prefix:     prefix,
			Properties: props,
			Scale:      scale,
			Modifier:   ModifierFraction,
			Arbitrary:  true,
			CustomProp: true,
		})
	}

	// Color-bearing utilities take the opacity modifier.
	reg.Register("bg-", &Utility{
		Prefix:     "bg-",
		Properties: []string{"background-color"},
		Scale:      theme.Colors,
		Modifier:   ModifierOpacity,
		Arbitrary:  true,
		CustomProp: true,
	})
	reg.Register("text-", &Utility{
		Prefix:     "text-",
		Properties: []string{"color"},
		Scale:      theme.Colors,
		Keywords:   textKeywords(theme),
		Modifier:   ModifierOpacity,
		Arbitrary:  true,
		CustomProp: true,
	})

	// Borders: the bare width forms and the color forms share the
	// border- prefix family; side variants register longer prefixes so
	// longest-match dispatch picks them over plain border-.
	borderSides := map[string]string{
		"border-":   "border",
		"border-t-": "border-top",
		"border-r-": "border-right",
		"border-b-": "border-bottom",
		"border-l-": "border-left",
	}
	widths := map[string]string{"0": "0px", "2": "2px", "4": "4px", "8": "8px"}
	for prefix, property := range borderSides {
		u := &Utility{
			Prefix:     prefix,
			Properties: []string{property + "-width"},
			Scale:      widths,
			Arbitrary:  true,
		}
		if prefix == "border-" {
			// The shorthand prefix carries the color table plus the
			// bare side forms. Registering "border-t" as its own trie
			// prefix would shadow tokens like "border-teal-500", so
			// the single-letter sides resolve as keywords instead.
			kw := colorKeywords("border-color", theme.Colors)
			kw["t"] = []Property{{Name: "border-top-width", Value: "1px"}}
			kw["r"] = []Property{{Name: "border-right-width", Value: "1px"}}
			kw["b"] = []Property{{Name: "border-bottom-width", Value: "1px"}}
			kw["l"] = []Property{{Name: "border-left-width", Value: "1px"}}
			u.Keywords = kw
		}
		reg.Register(prefix, u)
	}
	reg.Register("border", Static("border", Property{Name: "border-width", Value: "1px"}))

	reg.Register("rounded", Static("rounded", Property{Name: "border-radius", Value: "0.25rem"}))
	reg.Register("rounded-", &Utility{
		Prefix:     "rounded-",
		Properties: []string{"border-radius"},
		Scale:      theme.Radii,
		Arbitrary:  true,
	})

	reg.Register("shadow", Static("shadow", Property{Name: "box-shadow", Value: "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"}))
	reg.Register("shadow-", &Utility{
		Prefix:     "shadow-",
		Properties: []string{"box-shadow"},
		Scale:      theme.Shadows,
		Arbitrary:  true,
	})

	reg.Register("opacity-", &Utility{
		Prefix:     "opacity-",
		Properties: []string{"opacity"},
		Scale:      opacityScale(),
		Arbitrary:  true,
	})

	reg.Register("z-", &Utility{
		Prefix:     "z-",
		Properties: []string{"z-index"},
		Scale: map[string]string{
			"0": "0", "10": "10", "20": "20", "30": "30", "40": "40", "50": "50", "auto": "auto",
		},
		Arbitrary: true,
	})

	reg.Register("font-", &Utility{
		Prefix:     "font-",
		Properties: []string{"font-weight"},
		Scale: map[string]string{
			"thin": "100", "light": "300", "normal": "400", "medium": "500",
			"semibold": "600", "bold": "700", "extrabold": "800", "black": "900",
		},
		Keywords: map[string][]Property{
			"sans":  {{Name: "font-family", Value: "ui-sans-serif, system-ui, sans-serif"}},
			"serif": {{Name: "font-family", Value: "ui-serif, Georgia, serif"}},
			"mono":  {{Name: "font-family", Value: "ui-monospace, SFMono-Regular, monospace"}},
		},
	})

	reg.Register("leading-", &Utility{
		Prefix:     "leading-",
		Properties: []string{"line-height"},
		Scale: map[string]string{
			"none": "1", "tight": "1.25", "snug": "1.375",
			"normal": "1.5", "relaxed": "1.625", "loose": "2",
		},
		Arbitrary: true,
	})
	reg.Register("tracking-", &Utility{
		Prefix:     "tracking-",
		Properties: []string{"letter-spacing"},
		Scale: map[string]string{
			"tighter": "-0.05em", "tight": "-0.025em", "normal": "0em",
			"wide": "0.025em", "wider": "0.05em", "widest": "0.1em",
		},
		Arbitrary: true,
	})
	reg.Register("duration-", &Utility{
		Prefix:     "duration-",
		Properties: []string{"transition-duration"},
		Scale: map[string]string{
			"75": "75ms", "100": "100ms", "150": "150ms", "200": "200ms",
			"300": "300ms", "500": "500ms", "700": "700ms", "1000": "1000ms",
		},
		Arbitrary: true,
	})

	// Single-keyword utilities.
	statics := map[string][]Property{
		"block":        {{Name: "display", Value: "block"}},
		"inline":       {{Name: "display", Value: "inline"}},
		"inline-block": {{Name: "display", Value: "inline-block"}},
		"flex":         {{Name: "display", Value: "flex"}},
		"inline-flex":  {{Name: "display", Value: "inline-flex"}},
		"grid":         {{Name: "display", Value: "grid"}},
		"hidden":       {{Name: "display", Value: "none"}},

		"flex-row":  {{Name: "flex-direction", Value: "row"}},
		"flex-col":  {{Name: "flex-direction", Value: "column"}},
		"flex-wrap": {{Name: "flex-wrap", Value: "wrap"}},
		"grow":      {{Name: "flex-grow", Value: "1"}},
		"shrink":    {{Name: "flex-shrink", Value: "1"}},

		"items-start":     {{Name: "align-items", Value: "flex-start"}},
		"items-center":    {{Name: "align-items", Value: "center"}},
		"items-end":       {{Name: "align-items", Value: "flex-end"}},
		"items-stretch":   {{Name: "align-items", Value: "stretch"}},
		"justify-start":   {{Name: "justify-content", Value: "flex-start"}},
		"justify-center":  {{Name: "justify-content", Value: "center"}},
		"justify-end":     {{Name: "justify-content", Value: "flex-end"}},
		"justify-between": {{Name: "justify-content", Value: "space-between"}},
		"justify-around":  {{Name: "justify-content", Value: "space-around"}},

		"relative": {{Name: "position", Value: "relative"}},
		"absolute": {{Name: "position", Value: "absolute"}},
		"fixed":    {{Name: "position", Value: "fixed"}},
		"sticky":   {{Name: "position", Value: "sticky"}},

		"underline":    {{Name: "text-decoration-line", Value: "underline"}},
		"line-through": {{Name: "text-decoration-line", Value: "line-through"}},
		"no-underline": {{Name: "text-decoration-line", Value: "none"}},
		"italic":       {{Name: "font-style", Value: "italic"}},
		"not-italic":   {{Name: "font-style", Value: "normal"}},
		"truncate": {
			{Name: "overflow", Value: "hidden"},
			{Name: "text-overflow", Value: "ellipsis"},
			{Name: "white-space", Value: "nowrap"},
		},

		"text-left":   {{Name: "text-align", Value: "left"}},
		"text-center": {{Name: "text-align", Value: "center"}},
		"text-right":  {{Name: "text-align", Value: "right"}},

		"container": {{Name: "width", Value: "100%"}},
		"group":     nil, // marker classes produce no declarations
		"peer":      nil,
	}
	for name, props := range statics {
		reg.Register(name, Static(name, props...))
	}

	// Font sizes live under text- as keyword entries; register them on
	// the already-registered text- utility table instead of a second
	// prefix so longest-match dispatch stays unambiguous.
	return reg
}

func textKeywords(theme *Theme) map[string][]Property {
	kw := make(map[string][]Property, len(theme.FontSizes))
	for suffix, props := range theme.FontSizes {
		kw[suffix] = props
	}
	return kw
}

func colorKeywords(property string, colors map[string]string) map[string][]Property {
	kw := make(map[string][]Property, len(colors))
	for suffix, value := range colors {
		kw[suffix] = []Property{{Name: property, Value: value}}
	}
	return kw
}

func opacityScale() map[string]string {
	return map[string]string{
		"0": "0", "5": "0.05", "10": "0.1", "20": "0.2", "25": "0.25",
		"30": "0.3", "40": "0.4", "50": "0.5", "60": "0.6", "70": "0.7",
		"75": "0.75", "80": "0.8", "90": "0.9", "95": "0.95", "100": "1",
	}
}

func screenValue(prefix string) string {
	if prefix == "h-" || prefix == "min-h-" || prefix == "max-h-" {
		return "100vh"
	}
	return "100vw"
}

func merge(tables ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}
