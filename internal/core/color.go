package core

// Color is the foreground colour of a terminal cell. Window platforms draw
// sprites and ignore it.
type Color uint8

// Palette used by the terminal glyphs.
const (
	ColorDefault Color = iota
	ColorRed
	ColorMagenta
	ColorGray
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)

// ansiCodes holds the ANSI 256-colour index of each palette entry.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorMagenta:      "5",
	ColorGray:         "245",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
}

// ANSI returns the ANSI 256-colour index of c, or "" for the terminal
// default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
