package cmd

import (
	"context"
	"errors"

	"github.com/achilleasa/afterglow/asset"
	"github.com/achilleasa/afterglow/renderer"
	"github.com/urfave/cli"
)

// Composite previously rendered frames, given as local files or http(s)
// URLs, into a trail.
func CompositeFrames(ctx *cli.Context) error {
	setupLogging(ctx)

	frames, err := frameList(ctx)
	if err != nil {
		return err
	}

	settings, err := parseTrailSettings(ctx)
	if err != nil {
		return err
	}
	settings.iterations = len(frames)

	r, err := renderer.NewPlayback(frames)
	if err != nil {
		return err
	}
	defer r.Close()

	return runTrail(context.Background(), r, settings)
}

// Collect frame locations from the command arguments followed by the
// entries of the optional manifest file.
func frameList(ctx *cli.Context) ([]string, error) {
	frames := append([]string{}, ctx.Args()...)

	if manifest := ctx.String("manifest"); manifest != "" {
		entries, err := asset.ReadManifest(manifest)
		if err != nil {
			return nil, err
		}
		frames = append(frames, entries...)
	}

	if len(frames) == 0 {
		return nil, errors.New("missing frame file arguments")
	}
	return frames, nil
}
