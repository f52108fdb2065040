package report

import (
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/Sumatoshi-tech/tally/pkg/alg/stats"
)

// Width limits.
const (
	DefaultWidth = 80
	MinWidth     = 60
	MaxWidth     = 120
)

// Box drawing characters.
const (
	boxHorizontal       = "─"
	boxHeavyHorizontal  = "━"
	boxHeavyVertical    = "┃"
	boxHeavyTopLeft     = "┏"
	boxHeavyTopRight    = "┓"
	boxHeavyBottomLeft  = "┗"
	boxHeavyBottomRight = "┛"
)

// Bar characters.
const (
	barFilled = "█"
	barEmpty  = "░"
)

// Header layout: two borders, padding on each side, and a minimum gap
// between title and right text.
const (
	headerPadding     = 1
	headerBorders     = 2
	headerMinGap      = 1
	headerDecorations = headerBorders + 2*headerPadding + headerMinGap
)

// Config holds terminal rendering configuration.
type Config struct {
	Width   int
	NoColor bool
}

// NewConfig returns a Config for the current terminal. A width of zero
// detects it from COLUMNS; NO_COLOR disables colour.
func NewConfig(width int, noColor bool) Config {
	if width <= 0 {
		width = DetectWidth()
	}

	return Config{
		Width:   stats.Clamp(width, MinWidth, MaxWidth),
		NoColor: noColor || os.Getenv("NO_COLOR") != "",
	}
}

// DetectWidth returns the terminal width from COLUMNS, or DefaultWidth.
func DetectWidth() int {
	width, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}

// paint applies attrs to text unless colour is disabled.
func (c Config) paint(text string, attrs ...color.Attribute) string {
	painter := color.New(attrs...)
	if c.NoColor {
		painter.DisableColor()
	} else {
		painter.EnableColor()
	}

	return painter.Sprint(text)
}

// drawHeader draws a heavy-bordered header with title left and rightText
// right-aligned.
func drawHeader(title, rightText string, width int) string {
	width = max(width, len(title)+len(rightText)+headerDecorations)
	inner := width - headerBorders
	gap := max(inner-2*headerPadding-len(title)-len(rightText), headerMinGap)
	pad := strings.Repeat(" ", headerPadding)

	var sb strings.Builder

	sb.WriteString(boxHeavyTopLeft + strings.Repeat(boxHeavyHorizontal, inner) + boxHeavyTopRight + "\n")
	sb.WriteString(boxHeavyVertical + pad + title + strings.Repeat(" ", gap) + rightText + pad + boxHeavyVertical + "\n")
	sb.WriteString(boxHeavyBottomLeft + strings.Repeat(boxHeavyHorizontal, inner) + boxHeavyBottomRight)

	return sb.String()
}

func drawSeparator(width int) string {
	if width <= 0 {
		return ""
	}

	return strings.Repeat(boxHorizontal, width)
}

// drawBar draws a bar of width cells filled in proportion to fraction,
// which is clamped to [0, 1].
func drawBar(fraction float64, width int) string {
	filled := int(stats.Clamp(fraction, 0, 1) * float64(width))

	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled)
}
