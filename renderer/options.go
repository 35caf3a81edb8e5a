package renderer

import "runtime"

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Max number of bounces per path.
	NumBounces uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Number of cpu tracers that split each frame. Values <= 0 select
	// one tracer per cpu.
	NumTracers int

	// Frame buffer encoding (png, bmp or tiff).
	Encoding string

	// Seed for the tracers' random number generators. A zero value
	// selects a time-based seed.
	Seed int64
}

// Get the options used by the trail demo: a 400x225 frame traced with a
// single sample per pixel and up to 50 bounces.
func DefaultOptions() Options {
	return Options{
		FrameW:          400,
		FrameH:          225,
		NumBounces:      50,
		SamplesPerPixel: 1,
		NumTracers:      runtime.NumCPU(),
		Encoding:        PNG,
	}
}

// Check options for errors.
func (opts Options) Validate() error {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return ErrInvalidFrameSize
	}

	if _, err := encoderFor(opts.Encoding); err != nil {
		return err
	}

	return nil
}
