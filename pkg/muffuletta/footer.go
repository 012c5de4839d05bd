package muffuletta

import (
	"github.com/dpavese/muffuletta/pkg/muffuletta/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// FooterHelpItem pairs a button glyph with a short description of what it
// does, rendered along the bottom edge of a widget.
type FooterHelpItem struct {
	ButtonName string // Button label shown inside the pill (e.g. "A", "L1")
	HelpText   string // Description shown next to the pill
}

const (
	footerHeight      = int32(56)
	footerPillPadding = int32(12)
	footerItemGap     = int32(28)
)

// renderFooter draws help items right to left along the window bottom, each
// as a rounded pill containing the button name followed by its help text.
func renderFooter(renderer *sdl.Renderer, items []FooterHelpItem, bottomPadding int32) {
	if len(items) == 0 {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	if font == nil {
		return
	}

	y := window.GetHeight() - footerHeight - bottomPadding
	x := window.GetWidth() - footerItemGap

	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		textW, textH := internal.MeasureText(font, item.HelpText)
		pillW, pillH := internal.MeasureText(font, item.ButtonName)
		pillRect := sdl.Rect{
			W: pillW + footerPillPadding*2,
			H: pillH + footerPillPadding,
		}

		x -= textW
		internal.RenderText(renderer, font, item.HelpText, x, y+(footerHeight-textH)/2, theme.HintColor)

		x -= pillRect.W + footerPillPadding
		pillRect.X = x
		pillRect.Y = y + (footerHeight-pillRect.H)/2
		internal.DrawRoundedRect(renderer, &pillRect, pillRect.H/2, theme.AccentColor)
		internal.RenderText(renderer, font, item.ButtonName,
			pillRect.X+footerPillPadding, pillRect.Y+footerPillPadding/2, theme.HighlightedTextColor)

		x -= footerItemGap
	}
}
