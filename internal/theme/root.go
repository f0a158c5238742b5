package theme

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/tomatick/internal/models"
)

// Custom property names understood by the UI.
const (
	PropPrimaryColor = "--primary-color"
	PropBgColor1     = "--bg-color-1"
	PropBgColor2     = "--bg-color-2"
	PropBgColor3     = "--bg-color-3"
)

// maxResolveDepth bounds var() indirection so a cycle cannot loop forever.
const maxResolveDepth = 8

// Root is the process-wide style root: a set of custom properties that styles
// read at render time. Last writer wins.
type Root struct {
	mu    sync.RWMutex
	props map[string]string
}

// NewRoot creates a root seeded with the palette and an accent pointing at the
// first palette color.
func NewRoot(colors models.ColorsConfig) *Root {
	r := &Root{props: make(map[string]string)}
	r.SetPalette(colors)
	r.props[PropPrimaryColor] = "var(" + PropBgColor1 + ")"
	return r
}

// SetPalette replaces the --bg-color-N variables. Empty values are ignored.
func (r *Root) SetPalette(colors models.ColorsConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, value := range map[string]string{
		PropBgColor1: colors.BgColor1,
		PropBgColor2: colors.BgColor2,
		PropBgColor3: colors.BgColor3,
	} {
		if value != "" {
			r.props[name] = value
		}
	}
}

// SetProperty sets a custom property.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.props[name] = value
}

// Property returns the raw value of a custom property.
func (r *Root) Property(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.props[name]
}

// Resolve follows var(--name[, fallback]) references until a literal value is
// reached. It returns "" when the chain cannot be resolved.
func (r *Root) Resolve(value string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked(value, 0)
}

func (r *Root) resolveLocked(value string, depth int) string {
	value = strings.TrimSpace(value)
	if depth > maxResolveDepth {
		return ""
	}
	name, fallback, ok := parseVar(value)
	if !ok {
		return value
	}
	if next, found := r.props[name]; found {
		if resolved := r.resolveLocked(next, depth+1); resolved != "" {
			return resolved
		}
	}
	if fallback != "" {
		return r.resolveLocked(fallback, depth+1)
	}
	return ""
}

// Color resolves value into a terminal color.
func (r *Root) Color(value string) lipgloss.TerminalColor {
	resolved := r.Resolve(value)
	if resolved == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(resolved)
}

// Accent returns the current --primary-color.
func (r *Root) Accent() lipgloss.TerminalColor {
	return r.Color("var(" + PropPrimaryColor + ")")
}

// parseVar splits "var(--name, fallback)" into its parts.
func parseVar(value string) (name, fallback string, ok bool) {
	if !strings.HasPrefix(value, "var(") || !strings.HasSuffix(value, ")") {
		return "", "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "var("), ")")
	name, fallback, _ = strings.Cut(inner, ",")
	name = strings.TrimSpace(name)
	if !strings.HasPrefix(name, "--") {
		return "", "", false
	}
	return name, strings.TrimSpace(fallback), true
}
