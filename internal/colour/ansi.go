package colour

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

var ansiPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// ColourPreviewWithText returns a swatch with text centred over it.
// The text colour is picked by ContrastingText.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return background(c) + foreground(ContrastingText(c)) + displayText + ansiReset
}

// StripANSI removes colour escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// VisibleWidth is the number of runes s occupies on screen, ignoring escape sequences.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

func background(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func foreground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
