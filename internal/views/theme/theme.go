package theme

import "strings"

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// PageTheme contains resolved styling primitives for the catalog page.
type PageTheme struct {
	Key             string
	BodyClass       string
	ShellClass      string
	SurfaceClass    string
	BorderClass     string
	AccentTextClass string
	MutedTextClass  string
}

const (
	// DefaultKey defines the fallback theme when none is requested.
	DefaultKey = "pantry"
)

var catalogue = map[string]PageTheme{
	"pantry": {
		Key:             "pantry",
		BodyClass:       "min-h-screen bg-stone-50 text-stone-900",
		ShellClass:      "catalog-shell light",
		SurfaceClass:    "catalog-surface",
		BorderClass:     "catalog-border",
		AccentTextClass: "catalog-accent",
		MutedTextClass:  "catalog-muted",
	},
	"larder": {
		Key:             "larder",
		BodyClass:       "min-h-screen bg-slate-950 text-slate-100",
		ShellClass:      "catalog-shell dark",
		SurfaceClass:    "catalog-surface",
		BorderClass:     "catalog-border",
		AccentTextClass: "catalog-accent",
		MutedTextClass:  "catalog-muted",
	},
}

var options = []Option{
	{Value: "pantry", Label: "Pantry (Light)"},
	{Value: "larder", Label: "Larder (Dark)"},
}

// Resolve returns the registered theme configuration for the provided key.
func Resolve(key string) PageTheme {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if value, ok := catalogue[normalized]; ok {
		return value
	}
	return catalogue[DefaultKey]
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	return options
}
