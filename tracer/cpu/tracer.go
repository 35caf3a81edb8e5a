package cpu

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/achilleasa/afterglow/log"
	"github.com/achilleasa/afterglow/scene"
	"github.com/achilleasa/afterglow/tracer"
	"github.com/achilleasa/afterglow/types"
)

// Rays starting closer than this to a surface are ignored to avoid
// self-intersections caused by floating point error.
const minHitDistance float32 = 0.0001

var (
	skyTop    = types.XYZ(0.5, 0.7, 1.0)
	skyBottom = types.XYZ(1.0, 1.0, 1.0)
)

// A path tracer running on the CPU.
type cpuTracer struct {
	logger log.Logger

	sync.Mutex

	// The tracer id.
	id string

	// The attached scene and frame buffer.
	sceneData   *scene.Scene
	frameW      uint32
	frameH      uint32
	frameBuffer []uint8

	// Statistics for last rendered block.
	stats *tracer.Stats
}

// Create a new cpu tracer.
func NewTracer(id string) tracer.Tracer {
	return &cpuTracer{
		logger: log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:     id,
		stats:  &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// All cpu tracers are equally fast.
func (tr *cpuTracer) Speed() uint32 {
	return 1
}

// Attach the tracer to a scene and frame buffer.
func (tr *cpuTracer) Setup(sc *scene.Scene, frameW, frameH uint32, frameBuffer []uint8) error {
	if sc == nil || sc.Camera == nil {
		return ErrNoSceneData
	}
	if uint32(len(frameBuffer)) != frameW*frameH*4 {
		return ErrFrameBufferSize
	}

	tr.Lock()
	defer tr.Unlock()

	tr.sceneData = sc
	tr.frameW = frameW
	tr.frameH = frameH
	tr.frameBuffer = frameBuffer
	return nil
}

// Trace the rows of a block into the frame buffer.
func (tr *cpuTracer) Trace(blockReq tracer.BlockRequest) error {
	tr.Lock()
	defer tr.Unlock()

	if tr.sceneData == nil {
		return ErrNoSceneData
	}
	if blockReq.BlockY+blockReq.BlockH > tr.frameH {
		return ErrBlockOutOfBounds
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(blockReq.Seed))
	spp := blockReq.SamplesPerPixel
	if spp == 0 {
		spp = 1
	}
	invSpp := 1.0 / float32(spp)
	camera := tr.sceneData.Camera
	fw, fh := float32(tr.frameW), float32(tr.frameH)

	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		offset := y * tr.frameW * 4
		for x := uint32(0); x < tr.frameW; x++ {
			var pixel types.Vec3
			for sample := uint32(0); sample < spp; sample++ {
				s := (float32(x) + rng.Float32()) / fw
				t := (float32(y) + rng.Float32()) / fh
				pixel = pixel.Add(tr.radiance(camera.Ray(s, t, rng), blockReq.NumBounces, rng))
			}

			// Average and apply gamma 2 correction.
			pixel = pixel.Mul(invSpp).Sqrt()
			tr.frameBuffer[offset] = toByte(pixel[0])
			tr.frameBuffer[offset+1] = toByte(pixel[1])
			tr.frameBuffer[offset+2] = toByte(pixel[2])
			tr.frameBuffer[offset+3] = 255
			offset += 4
		}
	}

	tr.stats.BlockH = blockReq.BlockH
	tr.stats.RenderTime = time.Since(start)
	tr.logger.Debugf("traced rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.stats.RenderTime)
	return nil
}

// Follow a path through the scene and return the light it carries back to
// the eye. Paths that are still bouncing after numBounces contribute no light.
func (tr *cpuTracer) radiance(ray types.Ray, numBounces uint32, rng *rand.Rand) types.Vec3 {
	throughput := types.Vec3{1, 1, 1}
	for bounce := uint32(0); bounce < numBounces; bounce++ {
		hit, ok := tr.sceneData.Hit(ray, minHitDistance, math.MaxFloat32)
		if !ok {
			unitDir := ray.Dir.Normalize()
			t := 0.5 * (unitDir[1] + 1.0)
			return throughput.MulVec(types.Lerp(skyBottom, skyTop, t))
		}

		if hit.Material == nil {
			return types.Vec3{}
		}

		attenuation, scattered, ok := hit.Material.Scatter(ray, &hit, rng)
		if !ok {
			return types.Vec3{}
		}
		throughput = throughput.MulVec(attenuation)
		ray = scattered
	}

	return types.Vec3{}
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Detach from the scene and frame buffer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	tr.sceneData = nil
	tr.frameBuffer = nil
}

func toByte(c float32) uint8 {
	v := c * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
