package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/afterglow/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	surfaceFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 400,
			Usage: "surface width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 225,
			Usage: "surface height",
		},
		cli.StringFlag{
			Name:  "blend",
			Value: "lighten",
			Usage: "blend mode for compositing frames (lighten, darken, source-over)",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: "trail.png",
			Usage: "image filename for the composited surface",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "if set, write the surface to this folder after every redraw",
		},
	}

	tracerFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "bounces",
			Value: 50,
			Usage: "max number of bounces per path",
		},
		cli.IntFlag{
			Name:  "tracers",
			Usage: "number of cpu tracers; 0 selects one per cpu",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed; 0 selects a time-based seed",
		},
		cli.StringFlag{
			Name:  "encoding",
			Value: "png",
			Usage: "frame buffer encoding (png, bmp, tiff)",
		},
	}

	app := cli.NewApp()
	app.Name = "afterglow"
	app.Usage = "composite path traced frames into a fading trail"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "trail",
			Usage: "render frames and composite them into a trail",
			Description: `
Render a sequence of frames of the demo scene using the cpu path tracer.
Every frame is decoded and appended to an accumulation list; after each
frame the surface is cleared and the whole list is redrawn with an alpha
of 1/N using the selected blend mode.`,
			Flags: append(append([]cli.Flag{
				cli.IntFlag{
					Name:  "iterations, n",
					Value: 100,
					Usage: "number of frames to render",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 1,
					Usage: "samples per pixel",
				},
			}, surfaceFlags...), tracerFlags...),
			Action: cmd.RenderTrail,
		},
		{
			Name:        "frame",
			Usage:       "render single frame",
			Description: `Render a single frame of the demo scene.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 225,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, tracerFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "composite",
			Usage: "composite stored frames into a trail",
			Description: `
Replay previously rendered frames through the trail compositor. Frames may
be local files or http(s) URLs and are composited in the order given.`,
			ArgsUsage: "frame1.png frame2.png ...",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "manifest, m",
					Usage: "file listing one frame location per line",
				},
			}, surfaceFlags...),
			Action: cmd.CompositeFrames,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
