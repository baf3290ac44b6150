package core

// Color is the foreground colour of a screen cell. The renderer maps each
// value to an ANSI 256-colour style.
type Color uint8

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
)

// sparkPalette is indexed by a particle's colour index.
var sparkPalette = []Color{
	ColorBrightYellow,
	ColorOrange,
	ColorBrightRed,
	ColorBrightWhite,
}

// SparkColor returns the colour for particle palette index i, wrapping
// indices past the end of the palette.
func SparkColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return sparkPalette[i%len(sparkPalette)]
}
