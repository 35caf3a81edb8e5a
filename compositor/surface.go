package compositor

import (
	"image"
	"image/png"
	"io"
	"os"
)

// A Surface is a fixed-size drawing target. Pixels are stored as
// premultiplied RGBA floats in [0, 1] so repeated low-alpha draws do not
// accumulate 8-bit rounding errors.
type Surface struct {
	width  int
	height int
	pix    []float32
}

// Create a new transparent surface.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}
}

// Get the surface bounds. The surface origin is always (0, 0).
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Reset all pixels to transparent black.
func (s *Surface) Clear() {
	for i := range s.pix {
		s.pix[i] = 0
	}
}

// Blend img onto the surface with its top-left corner at the surface
// origin. The alpha argument scales the image alpha; parts of img
// outside the surface are clipped.
func (s *Surface) Draw(img *image.RGBA, alpha float32, mode BlendMode) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}

	srcBounds := img.Bounds()
	w := srcBounds.Dx()
	if w > s.width {
		w = s.width
	}
	h := srcBounds.Dy()
	if h > s.height {
		h = s.height
	}

	blend := mode.blendFn()
	scale := alpha / 255
	for y := 0; y < h; y++ {
		srcOffset := img.PixOffset(srcBounds.Min.X, srcBounds.Min.Y+y)
		dstOffset := y * s.width * 4
		for x := 0; x < w; x++ {
			src := img.Pix[srcOffset : srcOffset+4 : srcOffset+4]
			dst := s.pix[dstOffset : dstOffset+4 : dstOffset+4]

			sa := float32(src[3]) * scale
			da := dst[3]
			for c := 0; c < 3; c++ {
				dst[c] = blend(float32(src[c])*scale, sa, dst[c], da)
			}
			dst[3] = sa + da*(1-sa)

			srcOffset += 4
			dstOffset += 4
		}
	}
}

// Convert the surface contents to an 8-bit premultiplied image.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for i, v := range s.pix {
		img.Pix[i] = toByte(v)
	}
	return img
}

// Encode the surface contents as a PNG image.
func (s *Surface) Encode(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// Write the surface contents to a PNG file.
func (s *Surface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = s.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func toByte(v float32) uint8 {
	v = v*255 + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
