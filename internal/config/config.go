// Package config provides configuration types and defaults for the picoedit
// command.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"

	"github.com/iw2rmb/picoedit/document"
	"github.com/iw2rmb/picoedit/editor"
)

// ErrInvalidConfig is returned for configuration values that fail validation.
var ErrInvalidConfig = errors.Base("invalid config")

// EnvPrefix prefixes environment overrides, e.g. PICOEDIT_EDITOR_GUTTER.
const EnvPrefix = "PICOEDIT"

// Config holds all configuration options for picoedit.
type Config struct {
	Editor EditorConfig `mapstructure:"editor"`
	Style  editor.Style `mapstructure:"style"`
	// Tokens maps token kind names of the active engine to colors.
	Tokens map[string]string `mapstructure:"tokens"`
	Log    LogConfig         `mapstructure:"log"`
}

// EditorConfig holds editor behavior options.
type EditorConfig struct {
	LineCount      bool   `mapstructure:"line_count"`
	Gutter         bool   `mapstructure:"gutter"`
	AnimatedCursor bool   `mapstructure:"animated_cursor"`
	FollowCaret    bool   `mapstructure:"follow_caret"`
	ReadOnly       bool   `mapstructure:"readonly"`
	Easing         string `mapstructure:"easing"` // "linear" (default) or "smooth"
	WheelLines     int    `mapstructure:"wheel_lines"`
	FrameRate      int    `mapstructure:"frame_rate"` // frames per second
}

// LogConfig holds logging options. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			LineCount:   true,
			Gutter:      true,
			FollowCaret: true,
			Easing:      "linear",
			WheelLines:  3,
			FrameRate:   60,
		},
		Style:  editor.DefaultStyle(),
		Tokens: map[string]string{},
	}
}

// New returns a viper instance with defaults and environment overrides set.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("editor.line_count", d.Editor.LineCount)
	v.SetDefault("editor.gutter", d.Editor.Gutter)
	v.SetDefault("editor.animated_cursor", d.Editor.AnimatedCursor)
	v.SetDefault("editor.follow_caret", d.Editor.FollowCaret)
	v.SetDefault("editor.readonly", d.Editor.ReadOnly)
	v.SetDefault("editor.easing", d.Editor.Easing)
	v.SetDefault("editor.wheel_lines", d.Editor.WheelLines)
	v.SetDefault("editor.frame_rate", d.Editor.FrameRate)
	v.SetDefault("style.text", d.Style.Text)
	v.SetDefault("style.bg", d.Style.Background)
	v.SetDefault("style.selection_text", d.Style.SelectionText)
	v.SetDefault("style.selection_bg", d.Style.SelectionBackground)
	v.SetDefault("style.line_count_text", d.Style.LineCountText)
	v.SetDefault("style.line_count_bg", d.Style.LineCountBackground)
	v.SetDefault("style.gutter_bg", d.Style.GutterBackground)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the YAML file at path (if any) into v and returns the validated
// configuration.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Errorf("reading config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every option and fails on the first invalid one.
func (c Config) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return errors.Errorf("style: %w", err)
	}
	if _, err := parseEasing(c.Editor.Easing); err != nil {
		return err
	}
	if c.Editor.WheelLines < 0 {
		return errors.Errorf("%w: editor.wheel_lines must not be negative", ErrInvalidConfig)
	}
	if c.Editor.FrameRate <= 0 {
		return errors.Errorf("%w: editor.frame_rate must be positive", ErrInvalidConfig)
	}
	return nil
}

func parseEasing(s string) (editor.Easing, error) {
	switch strings.ToLower(s) {
	case "", "linear":
		return editor.EasingLinear, nil
	case "smooth":
		return editor.EasingSmooth, nil
	default:
		return 0, errors.Errorf("%w: editor.easing %q must be linear or smooth", ErrInvalidConfig, s)
	}
}

// EditorOptions applies the configuration on top of base. Token colors are
// resolved against the kind names of e.
func (c Config) EditorOptions(base editor.Options, e document.Engine) (editor.Options, error) {
	easing, err := parseEasing(c.Editor.Easing)
	if err != nil {
		return editor.Options{}, err
	}
	o := base
	o.EnableLineCount = c.Editor.LineCount
	o.EnableGutter = c.Editor.Gutter
	o.AnimatedCursor = c.Editor.AnimatedCursor
	o.FollowCaret = c.Editor.FollowCaret
	o.CaretEasing = easing
	o.Theme.Style = c.Style

	if len(c.Tokens) > 0 {
		if e == nil {
			e = document.Plaintext
		}
		o.Theme.TokenColors = make(map[int]string, len(c.Tokens))
		for name, color := range c.Tokens {
			kind, ok := kindByName(e, name)
			if !ok {
				return editor.Options{}, errors.Errorf("%w: unknown token kind %q", ErrInvalidConfig, name)
			}
			o.Theme.TokenColors[kind] = color
		}
	}
	if err := o.Validate(); err != nil {
		return editor.Options{}, errors.Errorf("editor options: %w", err)
	}
	return o, nil
}

// kindByName matches case-insensitively since viper lowercases map keys.
func kindByName(e document.Engine, name string) (int, bool) {
	for kind, n := range e.Types() {
		if strings.EqualFold(n, name) {
			return kind, true
		}
	}
	return 0, false
}
