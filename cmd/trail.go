package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/achilleasa/afterglow/compositor"
	"github.com/achilleasa/afterglow/decode"
	"github.com/achilleasa/afterglow/renderer"
	"github.com/achilleasa/afterglow/scene"
	"github.com/achilleasa/afterglow/tracer"
	"github.com/achilleasa/afterglow/trail"
	"github.com/urfave/cli"
)

// Settings shared by the commands that drive the trail loop.
type trailSettings struct {
	width, height int
	iterations    int
	blend         compositor.BlendMode
	out           string
	snapshotDir   string
}

func parseTrailSettings(ctx *cli.Context) (trailSettings, error) {
	blend, err := compositor.ParseBlendMode(ctx.String("blend"))
	if err != nil {
		return trailSettings{}, err
	}

	return trailSettings{
		width:       ctx.Int("width"),
		height:      ctx.Int("height"),
		iterations:  ctx.Int("iterations"),
		blend:       blend,
		out:         ctx.String("out"),
		snapshotDir: ctx.String("snapshot-dir"),
	}, nil
}

// Render frames with the cpu path tracer and composite them into a trail.
func RenderTrail(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := parseTrailSettings(ctx)
	if err != nil {
		return err
	}

	opts := renderer.DefaultOptions()
	opts.FrameW = uint32(settings.width)
	opts.FrameH = uint32(settings.height)
	opts.SamplesPerPixel = uint32(ctx.Int("spp"))
	opts.NumBounces = uint32(ctx.Int("bounces"))
	opts.Encoding = ctx.String("encoding")
	opts.Seed = ctx.Int64("seed")
	if tracers := ctx.Int("tracers"); tracers > 0 {
		opts.NumTracers = tracers
	}

	sc := scene.Default()
	logger.Infof("scene statistics\n%s", sc.Stats())

	r, err := renderer.NewDefault(sc, tracer.PerfectScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	return runTrail(context.Background(), r, settings)
}

// Run the trail loop against r and write the composited surface to the
// configured output file.
func runTrail(ctx context.Context, r trail.Renderer, settings trailSettings) error {
	if settings.snapshotDir != "" {
		if err := os.MkdirAll(settings.snapshotDir, os.ModePerm); err != nil {
			return err
		}
	}

	surface := compositor.NewSurface(settings.width, settings.height)
	comp := compositor.New(surface, settings.blend)

	opts := trail.DefaultOptions()
	opts.Iterations = settings.iterations
	if settings.snapshotDir != "" {
		opts.OnRedraw = func(iteration int) error {
			return surface.WritePNG(filepath.Join(settings.snapshotDir, fmt.Sprintf("trail-%03d.png", iteration)))
		}
	}

	loop, err := trail.New(r, decode.New(), comp, opts)
	if err != nil {
		return err
	}

	logger.Noticef("compositing %d frames on a %dx%d surface (%s)", settings.iterations, settings.width, settings.height, settings.blend)
	runErr := loop.Run(ctx)

	// Whatever got composited before a failure is still worth keeping.
	if len(loop.Images()) > 0 {
		if err = surface.WritePNG(settings.out); err != nil {
			return err
		}
		logger.Noticef("wrote %d composited frames to %s", len(loop.Images()), settings.out)
	}

	displayTrailStats(loop.Stats())
	return runErr
}
