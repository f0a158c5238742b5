package theme

// Sink receives the global side effects of a mode change.
type Sink interface {
	SetAccent(color string)
	SetIcon(path string)
}

// Sinks fans writes out to several sinks in order.
type Sinks []Sink

func (s Sinks) SetAccent(color string) {
	for _, sink := range s {
		if sink != nil {
			sink.SetAccent(color)
		}
	}
}

func (s Sinks) SetIcon(path string) {
	for _, sink := range s {
		if sink != nil {
			sink.SetIcon(path)
		}
	}
}

// RootSink writes the accent color into a Root's --primary-color.
type RootSink struct {
	Root *Root
}

func (s RootSink) SetAccent(color string) {
	if s.Root != nil {
		s.Root.SetProperty(PropPrimaryColor, color)
	}
}

// SetIcon is a no-op; a style root has no icon.
func (s RootSink) SetIcon(string) {}

// IconTarget is something that can display an application icon.
type IconTarget interface {
	SetIcon(path string) error
}

// IconSink forwards icon writes to the target returned by Resolve. When Resolve
// reports no target the write is skipped silently.
type IconSink struct {
	Resolve func() (IconTarget, bool)
	OnError func(path string, err error)
}

// SetAccent is a no-op; icon targets carry no accent.
func (s IconSink) SetAccent(string) {}

func (s IconSink) SetIcon(path string) {
	if s.Resolve == nil {
		return
	}
	target, ok := s.Resolve()
	if !ok || target == nil {
		return
	}
	if err := target.SetIcon(path); err != nil && s.OnError != nil {
		s.OnError(path, err)
	}
}
