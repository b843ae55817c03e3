// Package render draws the wheel as a raster image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

const (
	DefaultSize = 400

	rimMargin   = 20
	labelInset  = 30
	borderWidth = 3.0
)

var (
	ErrNothingToDraw = errors.New("no options to draw")

	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Wheel draws equal slices of set, rotated by rotation radians, on a
// transparent size×size canvas. Angles follow screen convention: y grows
// downwards, so positive rotation turns the wheel clockwise.
func Wheel(set domain.OptionSet, rotation float64, size int) (*image.RGBA, error) {
	n := len(set.Options)
	if n == 0 || len(set.Palette) == 0 {
		return nil, ErrNothingToDraw
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", size)
	}
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		rotation = 0
	}

	fills := make([]color.RGBA, len(set.Palette))
	for i, hex := range set.Palette {
		c, err := parseHex(hex)
		if err != nil {
			return nil, err
		}
		fills[i] = c
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := center - rimMargin
	if radius <= borderWidth {
		radius = center
	}
	slice := domain.SliceAngle(n)
	half := borderWidth / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			r := math.Hypot(dx, dy)
			if r > radius+half {
				continue
			}
			if r >= radius-half {
				img.SetRGBA(x, y, white)
				continue
			}

			local := math.Mod(math.Atan2(dy, dx)-rotation, 2*math.Pi)
			if local < 0 {
				local += 2 * math.Pi
			}
			i := min(int(local/slice), n-1)

			// Distance to the nearest slice edge, measured perpendicular to it.
			off := local - float64(i)*slice
			edge := math.Min(off, slice-off)
			if n > 1 && edge < math.Pi/2 && r*math.Sin(edge) < half {
				img.SetRGBA(x, y, white)
				continue
			}
			img.SetRGBA(x, y, fills[i%len(fills)])
		}
	}

	drawLabels(img, set, rotation, center, radius)
	return img, nil
}

// drawLabels writes each label so that it ends labelInset pixels inside the
// rim, on the slice's middle ray.
func drawLabels(img *image.RGBA, set domain.OptionSet, rotation, center, radius float64) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(white), Face: face}
	ascent := face.Metrics().Ascent.Ceil()
	slice := domain.SliceAngle(len(set.Options))

	for i, opt := range set.Options {
		w := float64(d.MeasureString(opt.Label).Ceil())
		mid := rotation + (float64(i)+0.5)*slice
		dist := math.Max(radius-labelInset-w/2, 0)
		x := center + dist*math.Cos(mid) - w/2
		y := center + dist*math.Sin(mid) + float64(ascent)/2
		d.Dot = fixed.Point26_6{X: fixed.I(int(math.Round(x))), Y: fixed.I(int(math.Round(y)))}
		d.DrawString(opt.Label)
	}
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
