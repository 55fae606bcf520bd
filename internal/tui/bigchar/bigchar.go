// Package bigchar renders letters as large block art using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	faceOnce sync.Once
	face     font.Face
)

// loadFace parses the embedded Go Bold font. It covers Latin-1, so Ñ is
// drawn like any other letter.
func loadFace() font.Face {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(gobold.TTF)
		if err != nil {
			return
		}
		face, _ = opentype.NewFace(fnt, &opentype.FaceOptions{Size: 64, DPI: 72})
	})
	return face
}

// IsAvailable reports whether the font could be loaded.
func IsAvailable() bool {
	return loadFace() != nil
}

// RenderBlock draws the first rune of s into a grid of cols x rows terminal
// cells. Each cell holds two vertical pixels.
func RenderBlock(s string, cols, rows int) string {
	f := loadFace()
	if s == "" || f == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	r := []rune(s)[0]

	bounds, _, ok := f.GlyphBounds(r)
	if !ok {
		return ""
	}
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()

	// The canvas spans the font's full ascent and descent so every letter
	// sits on the same baseline and tiles line up.
	metrics := f.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	padding := 4
	srcWidth := max(glyphWidth+padding*2, 48)
	srcHeight := ascent + descent + padding*2

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P((srcWidth-glyphWidth)/2-bounds.Min.X.Floor(), padding+ascent),
	}
	d.DrawString(string(r))

	return toHalfBlocks(scaleDown(src, cols, rows*2), cols, rows)
}

// scaleDown shrinks a grayscale image by area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth, srcHeight := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		sy1, sy2 := int(float64(dy)*yRatio), min(int(float64(dy+1)*yRatio), srcHeight)
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sx2 := int(float64(dx)*xRatio), min(int(float64(dx+1)*xRatio), srcWidth)

			sum, count := 0, 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

const threshold = 60

func toHalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := img.GrayAt(col, row*2).Y > threshold
			bottom := img.GrayAt(col, row*2+1).Y > threshold
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// GetCached returns a cached rendering or renders a new one.
func GetCached(s string, cols, rows int) string {
	key := fmt.Sprintf("%s/%d/%d", s, cols, rows)

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if v, ok := cache[key]; ok {
		return v
	}
	v := RenderBlock(s, cols, rows)
	cache[key] = v
	return v
}
