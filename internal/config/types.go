package config

import (
	"time"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/session"
)

// DefaultDebounce is how long a text control waits after the last
// keystroke before propagating.
const DefaultDebounce = 300 * time.Millisecond

// Config represents the canvasgen configuration document.
type Config struct {
	Editor Editor `yaml:"editor"`
	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
}

// Editor tunes the interactive editor.
type Editor struct {
	StartComponent string        `yaml:"start_component" validate:"required,component_kind"`
	Debounce       time.Duration `yaml:"debounce" validate:"gte=0s,lte=5s"`
	CopyAck        time.Duration `yaml:"copy_ack" validate:"gte=100ms,lte=1m"`
}

// Output tunes generated markup.
type Output struct {
	Sanitize bool `yaml:"sanitize"`
}

// Log selects log level and destination.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Editor: Editor{
			StartComponent: canvas.Buttons.String(),
			Debounce:       DefaultDebounce,
			CopyAck:        session.DefaultAckDuration,
		},
		Log: Log{Level: "info"},
	}
}

// StartKind resolves Editor.StartComponent. Validated configs always
// resolve.
func (c *Config) StartKind() canvas.Kind {
	k, err := canvas.ParseKind(c.Editor.StartComponent)
	if err != nil {
		return canvas.Buttons
	}
	return k
}
