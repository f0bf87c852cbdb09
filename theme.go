package utilcss

import (
	"strconv"
	"strings"
)

// Breakpoints maps responsive variant names to min-width values
// ("sm" -> "640px"). The registry is supplied before generation and is
// consulted twice: once when building the responsive variants and once
// when ordering media groups in the serialized output.
type Breakpoints map[string]string

// DefaultBreakpoints returns the standard five-step scale.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		"sm":  "640px",
		"md":  "768px",
		"lg":  "1024px",
		"xl":  "1280px",
		"2xl": "1536px",
	}
}

// widthValue converts a min-width string to a comparable pixel count
// for output ordering. rem values are scaled by the 16px root default.
func widthValue(width string) (float64, bool) {
	switch {
	case strings.HasSuffix(width, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(width, "px"), 64)
		return v, err == nil
	case strings.HasSuffix(width, "rem"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(width, "rem"), 64)
		return v * 16, err == nil
	}
	return 0, false
}

// Theme carries the scale tables consulted by the default registry.
// The tables are plain data; the generic Utility resolver is the only
// algorithm reading them.
type Theme struct {
	Spacing   map[string]string // "4" -> "1rem"
	Fractions map[string]string // "1/2" -> "50%"
	Colors    map[string]string // "blue-500" -> "#3b82f6"
	FontSizes map[string][]Property
	Radii     map[string]string
	Shadows   map[string]string
}

// DefaultTheme returns the built-in scale tables.
func DefaultTheme() *Theme {
	return &Theme{
		Spacing:   defaultSpacing(),
		Fractions: defaultFractions(),
		Colors:    defaultColors(),
		FontSizes: defaultFontSizes(),
		Radii:     defaultRadii(),
		Shadows:   defaultShadows(),
	}
}

func defaultSpacing() map[string]string {
	return map[string]string{
		"0":   "0px",
		"0.5": "0.125rem",
		"1":   "0.25rem",
		"1.5": "0.375rem",
		"2":   "0.5rem",
		"2.5": "0.625rem",
		"3":   "0.75rem",
		"3.5": "0.875rem",
		"4":   "1rem",
		"5":   "1.25rem",
		"6":   "1.5rem",
		"7":   "1.75rem",
		"8":   "2rem",
		"9":   "2.25rem",
		"10":  "2.5rem",
		"11":  "2.75rem",
		"12":  "3rem",
		"14":  "3.5rem",
		"16":  "4rem",
		"20":  "5rem",
		"24":  "6rem",
		"28":  "7rem",
		"32":  "8rem",
		"36":  "9rem",
		"40":  "10rem",
		"48":  "12rem",
		"56":  "14rem",
		"64":  "16rem",
		"72":  "18rem",
		"80":  "20rem",
		"96":  "24rem",
		"px":  "1px",
		"auto": "auto",
	}
}

func defaultFractions() map[string]string {
	return map[string]string{
		"1/2":  "50%",
		"1/3":  "33.333333%",
		"2/3":  "66.666667%",
		"1/4":  "25%",
		"2/4":  "50%",
		"3/4":  "75%",
		"1/5":  "20%",
		"2/5":  "40%",
		"3/5":  "60%",
		"4/5":  "80%",
		"1/6":  "16.666667%",
		"5/6":  "83.333333%",
		"full": "100%",
		"min":  "min-content",
		"max":  "max-content",
		"fit":  "fit-content",
	}
}

func defaultColors() map[string]string {
	colors := map[string]string{
		"inherit":     "inherit",
		"current":     "currentColor",
		"transparent": "transparent",
		"black":       "#000000",
		"white":       "#ffffff",
	}
	shades := map[string][]string{
		// 50, 100, ..., 900 per hue.
		"slate": {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
		"gray":  {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
		"red":   {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
		"amber": {"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f"},
		"green": {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
		"blue":  {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
		"violet": {"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95"},
	}
	steps := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
	for hue, values := range shades {
		for i, step := range steps {
			colors[hue+"-"+step] = values[i]
		}
	}
	return colors
}

func defaultFontSizes() map[string][]Property {
	return map[string][]Property{
		"xs":   {{Name: "font-size", Value: "0.75rem"}, {Name: "line-height", Value: "1rem"}},
		"sm":   {{Name: "font-size", Value: "0.875rem"}, {Name: "line-height", Value: "1.25rem"}},
		"base": {{Name: "font-size", Value: "1rem"}, {Name: "line-height", Value: "1.5rem"}},
		"lg":   {{Name: "font-size", Value: "1.125rem"}, {Name: "line-height", Value: "1.75rem"}},
		"xl":   {{Name: "font-size", Value: "1.25rem"}, {Name: "line-height", Value: "1.75rem"}},
		"2xl":  {{Name: "font-size", Value: "1.5rem"}, {Name: "line-height", Value: "2rem"}},
		"3xl":  {{Name: "font-size", Value: "1.875rem"}, {Name: "line-height", Value: "2.25rem"}},
		"4xl":  {{Name: "font-size", Value: "2.25rem"}, {Name: "line-height", Value: "2.5rem"}},
	}
}

func defaultRadii() map[string]string {
	return map[string]string{
		"none": "0px",
		"sm":   "0.125rem",
		"md":   "0.375rem",
		"lg":   "0.5rem",
		"xl":   "0.75rem",
		"2xl":  "1rem",
		"3xl":  "1.5rem",
		"full": "9999px",
	}
}

func defaultShadows() map[string]string {
	return map[string]string{
		"sm":    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		"md":    "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		"lg":    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		"xl":    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		"2xl":   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
		"inner": "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
		"none":  "0 0 #0000",
	}
}
