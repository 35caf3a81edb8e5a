package tracer

import (
	"time"

	"github.com/achilleasa/afterglow/scene"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// Max number of ray bounces before a path is terminated.
	NumBounces uint32

	// A random seed value for the tracer's random number generator.
	Seed int64
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracer's relative computation speed. It is used by the
	// schedulers for the first frame split.
	Speed() uint32

	// Attach the tracer to a scene and the frame buffer it writes to. The
	// frame buffer stores frameW * frameH RGBA8 pixels.
	Setup(sc *scene.Scene, frameW, frameH uint32, frameBuffer []uint8) error

	// Trace a block of rows into the frame buffer. Tracers only ever
	// write to the rows of the requested block, so blocks may be traced
	// concurrently by different tracers.
	Trace(BlockRequest) error

	// Retrieve last block statistics.
	Stats() *Stats

	// Shutdown and cleanup tracer.
	Close()
}
