package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/achilleasa/afterglow/log"
	"github.com/achilleasa/afterglow/scene"
	"github.com/achilleasa/afterglow/tracer"
	"github.com/achilleasa/afterglow/tracer/cpu"
	"golang.org/x/sync/errgroup"
)

// The default renderer splits each frame into row blocks, traces them in
// parallel using a pool of cpu tracers and encodes the result.
type defaultRenderer struct {
	logger log.Logger

	sc        *scene.Scene
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer
	options   Options
	encode    encoderFn

	// The RGBA8 frame buffer shared by all tracers.
	frameBuffer []uint8

	// The block assignments for the last frame.
	blockAssignments []uint32

	frameCount int64
	seed       int64
	stats      FrameStats
}

// Create a new renderer for the given scene. The renderer attaches one cpu
// tracer per requested worker and uses the scheduler to split frames.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	numTracers := opts.NumTracers
	if numTracers <= 0 {
		numTracers = DefaultOptions().NumTracers
	}
	if opts.FrameH > 0 && uint32(numTracers) > opts.FrameH {
		numTracers = int(opts.FrameH)
	}

	tracers := make([]tracer.Tracer, numTracers)
	for idx := range tracers {
		tracers[idx] = cpu.NewTracer(fmt.Sprintf("cpu-%d", idx))
	}

	return newRenderer(sc, scheduler, opts, tracers)
}

func newRenderer(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options, tracers []tracer.Tracer) (*defaultRenderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if len(tracers) == 0 {
		return nil, ErrNoTracers
	}
	if scheduler == nil {
		scheduler = tracer.PerfectScheduler()
	}

	encode, _ := encoderFor(opts.Encoding)
	r := &defaultRenderer{
		logger:      log.New("renderer"),
		sc:          sc,
		scheduler:   scheduler,
		tracers:     tracers,
		options:     opts,
		encode:      encode,
		frameBuffer: make([]uint8, opts.FrameW*opts.FrameH*4),
		seed:        opts.Seed,
	}
	if r.seed == 0 {
		r.seed = time.Now().UnixNano()
	}

	sc.Camera.SetupProjection(float32(opts.FrameW) / float32(opts.FrameH))

	for _, tr := range tracers {
		if err := tr.Setup(sc, opts.FrameW, opts.FrameH, r.frameBuffer); err != nil {
			r.Close()
			return nil, fmt.Errorf("renderer: could not setup tracer %s: %w", tr.Id(), err)
		}
	}

	r.logger.Infof("attached %d tracer(s); frame %dx%d, %d spp, %d bounces", len(tracers), opts.FrameW, opts.FrameH, opts.SamplesPerPixel, opts.NumBounces)
	return r, nil
}

// Render a frame and return it as an encoded image.
func (r *defaultRenderer) Render() ([]byte, error) {
	start := time.Now()

	r.blockAssignments = r.scheduler.Schedule(r.tracers, r.options.FrameH)

	var group errgroup.Group
	var blockY uint32
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		if blockH == 0 {
			continue
		}

		tr := tr
		blockReq := tracer.BlockRequest{
			BlockY:          blockY,
			BlockH:          blockH,
			SamplesPerPixel: r.options.SamplesPerPixel,
			NumBounces:      r.options.NumBounces,
			Seed:            r.seed + r.frameCount*int64(len(r.tracers)) + int64(idx),
		}
		group.Go(func() error {
			if err := tr.Trace(blockReq); err != nil {
				return fmt.Errorf("renderer: tracer %s failed: %w", tr.Id(), err)
			}
			return nil
		})

		blockY += blockH
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	r.frameCount++

	// Copy the frame buffer so the returned frame never aliases it.
	img := image.NewNRGBA(image.Rect(0, 0, int(r.options.FrameW), int(r.options.FrameH)))
	copy(img.Pix, r.frameBuffer)

	var buf bytes.Buffer
	if err := r.encode(&buf, img); err != nil {
		return nil, fmt.Errorf("renderer: could not encode frame: %w", err)
	}

	r.updateStats(time.Since(start), buf.Len())
	return buf.Bytes(), nil
}

func (r *defaultRenderer) updateStats(renderTime time.Duration, frameSize int) {
	r.stats.Tracers = r.stats.Tracers[:0]
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       blockH,
			FramePercent: 100.0 * float32(blockH) / float32(r.options.FrameH),
		}
		if blockH != 0 {
			stat.RenderTime = tr.Stats().RenderTime
		}
		r.stats.Tracers = append(r.stats.Tracers, stat)
	}
	r.stats.RenderTime = renderTime
	r.stats.FrameSize = frameSize
}

// Get render statistics for the last frame.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
}
