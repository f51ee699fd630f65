package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
)

// Version and Commit are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// regexpMarkup matches markup functions like ITEM{Northern Lights} or
// ROOM{Grow Room 1}.
var regexpMarkup = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.#()-]+)}`)

// ApplyMarkup formats a message with the active renderer's markup system.
// Without a renderer (tests, headless tools) the markup functions are
// stripped and the operands kept as plain text.
func ApplyMarkup(msg string, a ...any) string {
	if Current != nil {
		return Current.FormatText(msg, a...)
	}
	return StripMarkup(fmt.Sprintf(msg, a...))
}

// StripMarkup removes markup functions from a string, keeping the operands.
func StripMarkup(s string) string {
	matches := regexpMarkup.FindAllStringSubmatch(s, -1)
	for _, match := range matches {
		s = strings.Replace(s, match[0], match[2], -1)
	}
	return s
}

// MarkupPattern returns the compiled markup matcher for renderers that
// implement FormatText themselves.
func MarkupPattern() *regexp.Regexp {
	return regexpMarkup
}

// StyledSubtle returns text in the subtle style via the current renderer,
// falling back to a plain gray style.
func StyledSubtle(text string) string {
	if Current != nil {
		return Current.StyleText(text, StyleSubtle)
	}
	return color.Style{color.FgGray}.Sprint(text)
}
