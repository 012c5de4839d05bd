package internal

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed embedded_icons/check.svg
var checkIconSVG []byte

//go:embed embedded_icons/lock.svg
var lockIconSVG []byte

// CheckIconSVG returns the built-in visited-step icon.
func CheckIconSVG() []byte {
	return checkIconSVG
}

// LockIconSVG returns the built-in disabled-step icon.
func LockIconSVG() []byte {
	return lockIconSVG
}

// RasterizeSVG renders SVG data into an SDL texture of the given size.
// The caller owns the returned texture.
func RasterizeSVG(renderer *sdl.Renderer, data []byte, width, height int32) (*sdl.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := int(width), int(height)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		width, height,
		32, width*4,
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
