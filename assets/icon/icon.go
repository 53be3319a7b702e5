package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	accentBlue = color.RGBA{R: 0x38, G: 0x8B, B: 0xEF, A: 0xFF}
	cardLight  = color.RGBA{R: 0x9B, G: 0xC5, B: 0xF7, A: 0xFF}
	cardDim    = color.RGBA{R: 0x3C, G: 0x42, B: 0x50, A: 0xFF}
	darkBG     = color.RGBA{R: 0x12, G: 0x14, B: 0x1A, A: 0xFF}
	dotBright  = color.RGBA{R: 0xE4, G: 0xE6, B: 0xEA, A: 0xFF}
	dotDim     = color.RGBA{R: 0x5A, G: 0x62, B: 0x72, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Fill background
	fillRect(img, 0, 0, size, size, darkBG)

	// Neighbour pages peeking in from the sides
	drawPeekCards(img, s)

	// Current page front and center
	drawFrontCard(img, s)

	// Page indicator dots
	drawDots(img, s)

	return img
}

func drawPeekCards(img *image.RGBA, s float64) {
	cardY := s * 0.26
	cardH := s * 0.44
	cardW := s * 0.16
	r := s * 0.04

	fillRoundedRect(img, s*0.08, cardY, cardW, cardH, r, cardDim)
	fillRoundedRect(img, s*0.76, cardY, cardW, cardH, r, cardDim)
}

func drawFrontCard(img *image.RGBA, s float64) {
	cardX := s * 0.30
	cardY := s * 0.18
	cardW := s * 0.40
	cardH := s * 0.56
	fillRoundedRect(img, cardX, cardY, cardW, cardH, s*0.06, accentBlue)

	// Header band on the card
	fillRoundedRect(img, cardX+s*0.05, cardY+s*0.06, cardW-s*0.10, s*0.10, s*0.03, cardLight)
}

func drawDots(img *image.RGBA, s float64) {
	cy := s * 0.86
	fillCircle(img, s*0.38, cy, s*0.028, dotDim)
	fillCircle(img, s*0.50, cy, s*0.040, dotBright)
	fillCircle(img, s*0.62, cy, s*0.028, dotDim)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
