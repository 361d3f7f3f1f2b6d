package core

// Color represents a foreground color for a screen cell.
// The terminal host maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the runner's images and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)

// ParseColor maps a palette name (as used in asset manifests) to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "bright_red":
		return ColorBrightRed
	case "bright_white":
		return ColorBrightWhite
	case "orange":
		return ColorOrange
	case "brown":
		return ColorBrown
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}
