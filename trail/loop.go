// Package trail drives the progressive compositing loop. Each iteration
// renders a frame, decodes it, appends it to the accumulation list and
// redraws the whole list so successive frames leave a fading trail.
package trail

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/achilleasa/afterglow/decode"
	"github.com/achilleasa/afterglow/log"
)

// The name used for timing renderer calls.
const renderTimerName = "render"

// Renderer produces one encoded frame per call.
type Renderer interface {
	Render() ([]byte, error)
}

// Decoder starts decoding a frame buffer and returns a future for the result.
type Decoder interface {
	Decode(buf []byte) *decode.Future
}

// Compositor redraws the accumulated images.
type Compositor interface {
	Redraw(images []*image.RGBA)
}

type Options struct {
	// Number of frames to render.
	Iterations int

	// Optional hook invoked after each redraw with the 1-based iteration
	// number. Returning an error stops the loop.
	OnRedraw func(iteration int) error

	// Timer for renderer calls. Defaults to a timer logging through the
	// loop logger.
	Timer log.Timer
}

// Get the default loop options.
func DefaultOptions() Options {
	return Options{
		Iterations: 100,
	}
}

// Check options for errors.
func (opts Options) Validate() error {
	if opts.Iterations <= 0 {
		return ErrInvalidIterations
	}
	return nil
}

type Loop struct {
	logger log.Logger

	renderer   Renderer
	decoder    Decoder
	compositor Compositor
	options    Options
	timer      log.Timer

	// The accumulation list; grows by one image per completed iteration.
	images []*image.RGBA

	started bool
	stats   Stats
}

// Create a new loop.
func New(renderer Renderer, decoder Decoder, compositor Compositor, opts Options) (*Loop, error) {
	switch {
	case renderer == nil:
		return nil, ErrNoRenderer
	case decoder == nil:
		return nil, ErrNoDecoder
	case compositor == nil:
		return nil, ErrNoCompositor
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := log.New("trail")
	timer := opts.Timer
	if timer == nil {
		timer = log.NewTimer(logger)
	}

	return &Loop{
		logger:     logger,
		renderer:   renderer,
		decoder:    decoder,
		compositor: compositor,
		options:    opts,
		timer:      timer,
		images:     make([]*image.RGBA, 0, opts.Iterations),
	}, nil
}

// Run all iterations sequentially. The first renderer, decoder or hook
// error stops the loop; images from the iterations completed before the
// failure remain in the accumulation list. Run may only be called once.
func (l *Loop) Run(ctx context.Context) error {
	if l.started {
		return ErrAlreadyStarted
	}
	l.started = true

	start := time.Now()
	defer func() {
		l.stats.Total = time.Since(start)
	}()

	for iteration := 1; iteration <= l.options.Iterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("trail: iteration %d: %w", iteration, err)
		}

		if err := l.step(ctx, iteration); err != nil {
			l.logger.Errorf("iteration %d failed: %s", iteration, err)
			return fmt.Errorf("trail: iteration %d: %w", iteration, err)
		}
	}

	l.logger.Noticef("composited %d frames in %s", len(l.images), time.Since(start))
	return nil
}

func (l *Loop) step(ctx context.Context, iteration int) error {
	stat := IterationStat{Iteration: iteration}

	l.timer.Start(renderTimerName)
	buf, err := l.renderer.Render()
	stat.RenderTime = l.timer.Stop(renderTimerName)
	if err != nil {
		return err
	}

	decodeStart := time.Now()
	img, err := l.decoder.Decode(buf).Wait(ctx)
	stat.DecodeTime = time.Since(decodeStart)
	if err != nil {
		return err
	}

	l.images = append(l.images, img)

	compositeStart := time.Now()
	l.compositor.Redraw(l.images)
	stat.CompositeTime = time.Since(compositeStart)

	l.stats.Iterations = append(l.stats.Iterations, stat)
	l.logger.Debugf("iteration %d/%d: render %s, decode %s, composite %s", iteration, l.options.Iterations, stat.RenderTime, stat.DecodeTime, stat.CompositeTime)

	if l.options.OnRedraw != nil {
		return l.options.OnRedraw(iteration)
	}
	return nil
}

// Get the accumulation list in production order.
func (l *Loop) Images() []*image.RGBA {
	return l.images
}

// Get the per-iteration statistics.
func (l *Loop) Stats() Stats {
	return l.stats
}
