package core

// Color is the foreground color of a screen cell.
// The platform maps these onto ANSI colors.
type Color uint8

// Palette used by the game.
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
	ColorGray
)
