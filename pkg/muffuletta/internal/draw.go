package internal

import (
	"math"
	"strings"

	"github.com/dpavese/muffuletta/pkg/muffuletta/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// DrawRoundedRect fills a rectangle with rounded corners by drawing one
// horizontal span per row, insetting the rows that fall inside the corner
// radius.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	radius = Min32(radius, Min32(rect.W/2, rect.H/2))

	r, g, b, a, _ := renderer.GetDrawColor()
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	for row := int32(0); row < rect.H; row++ {
		inset := int32(0)
		if row < radius {
			dy := float64(radius - row)
			inset = radius - int32(math.Round(math.Sqrt(float64(radius)*float64(radius)-dy*dy)))
		} else if row >= rect.H-radius {
			dy := float64(row - (rect.H - radius - 1))
			inset = radius - int32(math.Round(math.Sqrt(float64(radius)*float64(radius)-dy*dy)))
		}
		renderer.DrawLine(rect.X+inset, rect.Y+row, rect.X+rect.W-inset-1, rect.Y+row)
	}

	renderer.SetDrawColor(r, g, b, a)
}

// RenderText draws text at the given position and returns the rendered width.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) int32 {
	if text == "" || font == nil {
		return 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W
}

// WrapText breaks text into lines no wider than maxWidth, splitting on word
// boundaries. Explicit newlines are preserved.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if w, _ := MeasureText(font, candidate); w > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// RenderMultilineText word-wraps text into the given area and draws it with
// the requested alignment. Returns the total rendered height.
func RenderMultilineText(renderer *sdl.Renderer, font *ttf.Font, text string, area sdl.Rect, color sdl.Color, align constants.TextAlign) int32 {
	if font == nil || text == "" {
		return 0
	}

	lineHeight := int32(font.Height())
	lineSpacing := lineHeight / 5

	y := area.Y
	for _, line := range WrapText(font, text, area.W) {
		if line != "" {
			w, _ := MeasureText(font, line)
			x := area.X
			switch align {
			case constants.TextAlignCenter:
				x += (area.W - w) / 2
			case constants.TextAlignRight:
				x += area.W - w
			}
			RenderText(renderer, font, line, x, y, color)
		}
		y += lineHeight + lineSpacing
	}
	return y - area.Y - lineSpacing
}

// MeasureText returns the rendered width and height of text in the font.
func MeasureText(font *ttf.Font, text string) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}
