package core

// Color is a palette entry. Front ends map it to ANSI codes or RGBA values.
type Color uint8

// Palette used by the runner. Obstacles pick from ObstacleColors.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorBlue
	ColorGray
)

// ObstacleColors is the table obstacles draw their color from.
var ObstacleColors = [...]Color{ColorRed, ColorBlue, ColorGreen}

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
