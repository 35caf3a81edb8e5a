package renderer

type Renderer interface {
	// Render the next frame and return it as an encoded image buffer.
	Render() ([]byte, error)

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics for the last frame.
	Stats() FrameStats
}
