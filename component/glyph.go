package component

// GlyphComponent is the visible character of an entity on screen
type GlyphComponent struct {
	Rune rune
	Hue  GlyphHue
}

// GlyphHue selects the render color class
type GlyphHue int

const (
	HueGreen GlyphHue = iota
	HueBlue
	HueYellow
	HueRed
)
