package cmd

import (
	"os"

	"github.com/achilleasa/afterglow/renderer"
	"github.com/achilleasa/afterglow/scene"
	"github.com/achilleasa/afterglow/tracer"
	"github.com/urfave/cli"
)

// Render a single still frame of the demo scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.DefaultOptions()
	opts.FrameW = uint32(ctx.Int("width"))
	opts.FrameH = uint32(ctx.Int("height"))
	opts.SamplesPerPixel = uint32(ctx.Int("spp"))
	opts.NumBounces = uint32(ctx.Int("bounces"))
	opts.Encoding = ctx.String("encoding")
	opts.Seed = ctx.Int64("seed")
	if tracers := ctx.Int("tracers"); tracers > 0 {
		opts.NumTracers = tracers
	}

	sc := scene.Default()
	logger.Infof("scene statistics\n%s", sc.Stats())

	r, err := renderer.NewDefault(sc, tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef("rendering %dx%d frame with %d spp", opts.FrameW, opts.FrameH, opts.SamplesPerPixel)
	frame, err := r.Render()
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	if err = os.WriteFile(imgFile, frame, 0644); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)

	displayFrameStats(r.Stats())
	return nil
}
