// Package ebiten provides an Ebiten-based 2D graphical renderer for Chimera.
package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// markupRegex matches FUNCTION{content} markup in messages and labels.
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// parseMarkup parses a message with markup (ITEM{}, ROOM{}, STRAIN{}, ACTION{},
// GT{}, ...) and returns colored segments.
func (e *EbitenRenderer) parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	matches := markupRegex.FindAllStringSubmatchIndex(msg, -1)

	for _, match := range matches {
		if match[0] > lastIndex {
			plainText := msg[lastIndex:match[0]]
			if plainText != "" {
				segments = append(segments, textSegment{text: plainText, color: colorText})
			}
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "ITEM":
			segColor = colorItem
		case "ROOM":
			segColor = colorRoom
		case "STRAIN":
			segColor = colorStrain
		case "ACTION":
			segColor = colorAction
		case "DENIED":
			segColor = colorDenied
		case "SUBTLE":
			segColor = colorSubtle
		case "HIGHLIGHT":
			segColor = colorHighlight
		case "GT":
			// GT{} is for translations - look up the translation
			content = dynamicGet(content)
			segColor = colorText
		default:
			segColor = colorText
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		plainText := msg[lastIndex:]
		if plainText != "" {
			segments = append(segments, textSegment{text: plainText, color: colorText})
		}
	}

	// If no markup found, return the whole message as a single segment
	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}

	return segments
}

// drawColoredChar draws an icon character centered in a tile (uses mono font)
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y int, col color.Color) {
	face := e.getMonoFontFace()

	w, h := text.Measure(char, face, 0)
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+offsetX, float64(y)+offsetY)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, char, face, op)
}

// drawColoredText draws text with a specific color using the sans UI face.
// Translates the string using gettext before drawing; non-keys pass through.
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws text with a specific color and font face.
// Uses the face's size for baseline offset so different font sizes position correctly.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	translated := gotext.Get(str)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)+face.Size)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, translated, face, op)
}

// drawColoredTextSegments draws markup segments left to right at UI size.
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int) {
	e.drawColoredTextSegmentsWithFace(screen, segments, x, y, e.getSansFontFace())
}

// drawColoredTextSegmentsWithFace draws segments with a specific face and an
// optional alpha for message fade-out.
func (e *EbitenRenderer) drawColoredTextSegmentsWithFace(screen *ebiten.Image, segments []textSegment, x, y int, face *text.GoTextFace) {
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y)+face.Size)
		op.ColorScale.ScaleWithColor(seg.color)

		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getSansFontFace(), 0)
	return w
}

// getMarkupWidth returns the rendered width of a marked-up string at UI size.
func (e *EbitenRenderer) getMarkupWidth(s string) float64 {
	var w float64
	for _, seg := range e.parseMarkup(s) {
		sw, _ := text.Measure(seg.text, e.getSansFontFace(), 0)
		w += sw
	}
	return w
}
