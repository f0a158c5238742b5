package theme

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/tomatick/internal/models"
)

func TestPresentationTableIsTotal(t *testing.T) {
	for _, mode := range models.AllModes() {
		p, err := Lookup(mode)
		require.NoError(t, err, mode)
		assert.Equal(t, mode, p.Mode)
		assert.NotEmpty(t, p.Color)
		assert.NotEmpty(t, p.Icon)
	}
}

func TestPresentationValues(t *testing.T) {
	assert.Equal(t, Presentation{Mode: models.ModePomodoro, Color: "var(--bg-color-1)", Icon: "/favicon-red.svg"}, For(models.ModePomodoro))
	assert.Equal(t, Presentation{Mode: models.ModeShortBreak, Color: "var(--bg-color-2)", Icon: "/favicon-green.svg"}, For(models.ModeShortBreak))
	assert.Equal(t, Presentation{Mode: models.ModeLongBreak, Color: "var(--bg-color-3)", Icon: "/favicon-blue.svg"}, For(models.ModeLongBreak))
}

func TestLookupUnknownMode(t *testing.T) {
	_, err := Lookup("lunch")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMode))
	assert.Panics(t, func() { For("lunch") })
}

func TestTableOrder(t *testing.T) {
	table := Table()
	require.Len(t, table, 3)
	assert.Equal(t, models.ModePomodoro, table[0].Mode)
	assert.Equal(t, models.ModeShortBreak, table[1].Mode)
	assert.Equal(t, models.ModeLongBreak, table[2].Mode)
}

func TestRootResolve(t *testing.T) {
	root := NewRoot(models.NewSettings().Appearance.Colors)

	assert.Equal(t, "#ba4949", root.Resolve("var(--bg-color-1)"))
	assert.Equal(t, "#397097", root.Resolve("var(--bg-color-3)"))
	assert.Equal(t, "#ba4949", root.Resolve("var(--primary-color)"), "accent chains through --bg-color-1")
	assert.Equal(t, "#123456", root.Resolve("#123456"), "literals pass through")
	assert.Equal(t, "", root.Resolve("var(--missing)"))
	assert.Equal(t, "#000000", root.Resolve("var(--missing, #000000)"))
	assert.Equal(t, "#38858a", root.Resolve("var(--missing, var(--bg-color-2))"))
}

func TestRootResolveCycle(t *testing.T) {
	root := NewRoot(models.ColorsConfig{})
	root.SetProperty("--a", "var(--b)")
	root.SetProperty("--b", "var(--a)")

	assert.Equal(t, "", root.Resolve("var(--a)"))
	assert.Equal(t, lipgloss.NoColor{}, root.Color("var(--a)"))
}

func TestRootSetPaletteIgnoresEmpty(t *testing.T) {
	root := NewRoot(models.NewSettings().Appearance.Colors)
	root.SetPalette(models.ColorsConfig{BgColor2: "#00ff00"})

	assert.Equal(t, "#ba4949", root.Property(PropBgColor1))
	assert.Equal(t, "#00ff00", root.Property(PropBgColor2))
}

func TestRootSinkWritesPrimaryColor(t *testing.T) {
	root := NewRoot(models.NewSettings().Appearance.Colors)
	sink := RootSink{Root: root}

	sink.SetAccent("var(--bg-color-2)")
	sink.SetIcon("/favicon-green.svg")

	assert.Equal(t, "var(--bg-color-2)", root.Property(PropPrimaryColor))
	assert.Equal(t, lipgloss.Color("#38858a"), root.Accent())
}

type fakeTarget struct {
	paths []string
	err   error
}

func (f *fakeTarget) SetIcon(path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

func TestIconSinkSkipsWithoutTarget(t *testing.T) {
	target := &fakeTarget{}
	available := false
	sink := IconSink{Resolve: func() (IconTarget, bool) { return target, available }}

	sink.SetIcon("/favicon-red.svg")
	assert.Empty(t, target.paths)

	available = true
	sink.SetIcon("/favicon-blue.svg")
	assert.Equal(t, []string{"/favicon-blue.svg"}, target.paths)

	assert.NotPanics(t, func() { IconSink{}.SetIcon("/favicon-red.svg") })
}

func TestIconSinkReportsErrors(t *testing.T) {
	target := &fakeTarget{err: errors.New("boom")}
	var failed []string
	sink := IconSink{
		Resolve: func() (IconTarget, bool) { return target, true },
		OnError: func(path string, err error) { failed = append(failed, path) },
	}

	sink.SetIcon("/favicon-green.svg")
	assert.Equal(t, []string{"/favicon-green.svg"}, failed)
}

type recordingSink struct {
	calls []string
}

func (r *recordingSink) SetAccent(color string) { r.calls = append(r.calls, "accent:"+color) }
func (r *recordingSink) SetIcon(path string)    { r.calls = append(r.calls, "icon:"+path) }

func TestSinksFanOutInOrder(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	sinks := Sinks{a, nil, b}

	sinks.SetAccent("var(--bg-color-3)")
	sinks.SetIcon("/favicon-blue.svg")

	want := []string{"accent:var(--bg-color-3)", "icon:/favicon-blue.svg"}
	assert.Equal(t, want, a.calls)
	assert.Equal(t, want, b.calls)
}
