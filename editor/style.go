package editor

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidStyle is returned when a style or theme has a missing or
// malformed color.
var ErrInvalidStyle = errors.Base("invalid style")

// Style holds the seven editor colors as hex strings.
type Style struct {
	Text                string `mapstructure:"text"`
	Background          string `mapstructure:"bg"`
	SelectionText       string `mapstructure:"selection_text"`
	SelectionBackground string `mapstructure:"selection_bg"`
	LineCountText       string `mapstructure:"line_count_text"`
	LineCountBackground string `mapstructure:"line_count_bg"`
	GutterBackground    string `mapstructure:"gutter_bg"`
}

func DefaultStyle() Style {
	return Style{
		Text:                "#000000",
		Background:          "#ffffff",
		SelectionText:       "#ffffff",
		SelectionBackground: "#0055ff",
		LineCountText:       "#808080",
		LineCountBackground: "#e0e0e0",
		GutterBackground:    "#e9e9e9",
	}
}

// Validate reports the first empty or non-hex color.
func (s Style) Validate() error {
	fields := []struct {
		key, value string
	}{
		{"text", s.Text},
		{"bg", s.Background},
		{"selection_text", s.SelectionText},
		{"selection_bg", s.SelectionBackground},
		{"line_count_text", s.LineCountText},
		{"line_count_bg", s.LineCountBackground},
		{"gutter_bg", s.GutterBackground},
	}
	for _, f := range fields {
		if err := validateColor(f.key, f.value); err != nil {
			return err
		}
	}
	return nil
}

func validateColor(key, value string) error {
	if value == "" {
		return errors.Errorf("%w: %s is required", ErrInvalidStyle, key)
	}
	if _, err := colorful.Hex(value); err != nil {
		return errors.Errorf("%w: %s: %q is not a hex color", ErrInvalidStyle, key, value)
	}
	return nil
}

// Theme is a Style plus optional colors for token kinds. Kinds without an
// entry render with Style.Text.
type Theme struct {
	Style
	TokenColors map[int]string
}

func DefaultTheme() Theme {
	return Theme{Style: DefaultStyle()}
}

func (t Theme) Validate() error {
	if err := t.Style.Validate(); err != nil {
		return err
	}
	for kind, c := range t.TokenColors {
		if err := validateColor("token kind "+strconv.Itoa(kind), c); err != nil {
			return err
		}
	}
	return nil
}

// TokenColor returns the color for kind, falling back to Style.Text.
func (t Theme) TokenColor(kind int) string {
	if c, ok := t.TokenColors[kind]; ok {
		return c
	}
	return t.Text
}
