package compositor

import (
	"image"

	"github.com/achilleasa/afterglow/log"
)

// The Compositor redraws a list of images onto a surface so that each
// image contributes an equal share of the alpha.
type Compositor struct {
	logger log.Logger

	surface *Surface
	mode    BlendMode

	// The per-draw alpha used by the last redraw.
	alpha float32

	// Invoked before each image is drawn; used by tests.
	onDraw func(index int, img *image.RGBA, alpha float32)
}

// Create a compositor drawing onto surface with the given blend mode.
func New(surface *Surface, mode BlendMode) *Compositor {
	return &Compositor{
		logger:  log.New("compositor"),
		surface: surface,
		mode:    mode,
	}
}

// Clear the surface and draw every image in list order at the surface
// origin with alpha 1/len(images).
func (c *Compositor) Redraw(images []*image.RGBA) {
	c.surface.Clear()
	if len(images) == 0 {
		c.alpha = 0
		return
	}

	c.alpha = 1.0 / float32(len(images))
	for idx, img := range images {
		if c.onDraw != nil {
			c.onDraw(idx, img, c.alpha)
		}
		c.surface.Draw(img, c.alpha, c.mode)
	}
	c.logger.Debugf("redrew %d image(s) with alpha %.4f (%s)", len(images), c.alpha, c.mode)
}

// Get the per-draw alpha applied by the last redraw.
func (c *Compositor) Alpha() float32 {
	return c.alpha
}

// Get the surface the compositor draws onto.
func (c *Compositor) Surface() *Surface {
	return c.surface
}
