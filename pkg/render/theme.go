// Package render draws the circuit scene with Gio.
package render

import "image/color"

// Theme represents a color scheme for the canvas
type Theme int

const (
	// ThemeLight is the default light canvas
	ThemeLight Theme = iota
	// ThemeDark is a dark canvas for the dark UI palette
	ThemeDark
)

// Colors defines the color scheme for rendering scene elements
type Colors struct {
	// Stage and grid
	Background color.NRGBA
	GridFill   color.NRGBA
	GridLine   color.NRGBA
	Origin     color.NRGBA

	// Symbols
	Selection   color.NRGBA
	Locked      color.NRGBA
	Placeholder color.NRGBA

	// Overlay text
	Hint color.NRGBA
}

// ColorsFor returns the color scheme for the given theme
func ColorsFor(theme Theme) *Colors {
	switch theme {
	case ThemeDark:
		return darkColors()
	default:
		return lightColors()
	}
}

func lightColors() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		GridFill:   color.NRGBA{R: 0xf9, G: 0xf9, B: 0xf9, A: 255},
		GridLine:   color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 255},
		Origin:     color.NRGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 255},

		Selection:   color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255},
		Locked:      color.NRGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 255},
		Placeholder: color.NRGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 255},

		Hint: color.NRGBA{R: 0x4b, G: 0x55, B: 0x63, A: 255},
	}
}

func darkColors() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		GridFill:   color.NRGBA{R: 38, G: 38, B: 40, A: 255},
		GridLine:   color.NRGBA{R: 60, G: 60, B: 64, A: 255},
		Origin:     color.NRGBA{R: 90, G: 100, B: 115, A: 255},

		Selection:   color.NRGBA{R: 0x5d, G: 0xad, B: 0xe2, A: 255},
		Locked:      color.NRGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 255},
		Placeholder: color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 255},

		Hint: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
}
