package render

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// Banner renders text as a multi-line figlet block. An unknown font falls
// back to go-figure's standard font; empty text yields an empty banner.
func Banner(text, font string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	lines, ok := figletLines(text, font)
	if !ok {
		// An empty font name selects go-figure's built-in standard font.
		lines, ok = figletLines(text, "")
		if !ok {
			return ""
		}
	}

	// Strip trailing all-blank rows so the banner block height reflects the
	// visible art.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

// figletLines renders one figlet block. go-figure panics when the named font
// asset does not exist (its strict flag only covers unknown characters), so
// the panic is converted into a fallback signal here.
func figletLines(text, font string) (lines []string, ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			ok = false
		}
	}()

	lines = figure.NewFigure(text, font, false).Slicify()
	return lines, ok
}
