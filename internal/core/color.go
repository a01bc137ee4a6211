package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDim
)

// hueWheel lists saturated colors in hue order, starting at red.
var hueWheel = [...]Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBlue,
	ColorBrightMagenta,
	ColorMagenta,
}

// HueColor maps a hue in [0,1) to the closest palette color.
func HueColor(hue float64) Color {
	hue -= float64(int(hue))
	if hue < 0 {
		hue++
	}
	i := int(hue*float64(len(hueWheel)) + 0.5)
	return hueWheel[i%len(hueWheel)]
}
