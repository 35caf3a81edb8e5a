package renderer

import (
	"time"

	"github.com/achilleasa/afterglow/asset"
	"github.com/achilleasa/afterglow/log"
)

// A renderer that replays previously stored frames. Each Render call
// fetches the next frame from a local path or http/https URL and returns
// its raw contents.
type playbackRenderer struct {
	logger log.Logger

	frames []string
	next   int
	stats  FrameStats
}

// Create a renderer that plays back the given frame locations in order.
func NewPlayback(frames []string) (Renderer, error) {
	if len(frames) == 0 {
		return nil, ErrNoPlaybackFrames
	}

	return &playbackRenderer{
		logger: log.New("playback"),
		frames: frames,
	}, nil
}

func (r *playbackRenderer) Render() ([]byte, error) {
	if r.next >= len(r.frames) {
		return nil, ErrPlaybackExhausted
	}

	start := time.Now()
	location := r.frames[r.next]
	data, err := asset.ReadAll(location)
	if err != nil {
		return nil, err
	}
	r.next++

	r.stats = FrameStats{
		Tracers: []TracerStat{{
			Id:           location,
			FramePercent: 100,
			RenderTime:   time.Since(start),
		}},
		RenderTime: time.Since(start),
		FrameSize:  len(data),
	}
	r.logger.Debugf("loaded frame %d/%d from %s (%d bytes)", r.next, len(r.frames), location, len(data))
	return data, nil
}

func (r *playbackRenderer) Stats() FrameStats {
	return r.stats
}

func (r *playbackRenderer) Close() {
	r.next = len(r.frames)
}
