package cpu

import (
	"bytes"
	"testing"

	"github.com/achilleasa/afterglow/scene"
	"github.com/achilleasa/afterglow/tracer"
)

func emptyScene(aspect float32) *scene.Scene {
	cam := scene.NewCamera(90)
	cam.SetupProjection(aspect)
	return &scene.Scene{Camera: cam}
}

func TestSetupErrors(t *testing.T) {
	tr := NewTracer("cpu-0")
	defer tr.Close()

	if err := tr.Setup(nil, 4, 4, make([]uint8, 64)); err != ErrNoSceneData {
		t.Fatalf("expected error %v; got %v", ErrNoSceneData, err)
	}
	if err := tr.Setup(emptyScene(1), 4, 4, make([]uint8, 10)); err != ErrFrameBufferSize {
		t.Fatalf("expected error %v; got %v", ErrFrameBufferSize, err)
	}
	if err := tr.Trace(tracer.BlockRequest{BlockH: 1}); err != ErrNoSceneData {
		t.Fatalf("expected error %v; got %v", ErrNoSceneData, err)
	}
}

func TestTraceBlockOutOfBounds(t *testing.T) {
	tr := NewTracer("cpu-0")
	defer tr.Close()

	if err := tr.Setup(emptyScene(1), 4, 4, make([]uint8, 64)); err != nil {
		t.Fatal(err)
	}
	err := tr.Trace(tracer.BlockRequest{BlockY: 3, BlockH: 2, NumBounces: 1})
	if err != ErrBlockOutOfBounds {
		t.Fatalf("expected error %v; got %v", ErrBlockOutOfBounds, err)
	}
}

func TestTraceSky(t *testing.T) {
	var frameW, frameH uint32 = 8, 4
	fb := make([]uint8, frameW*frameH*4)
	for i := range fb {
		fb[i] = 7
	}

	tr := NewTracer("cpu-0")
	defer tr.Close()
	if err := tr.Setup(emptyScene(2), frameW, frameH, fb); err != nil {
		t.Fatal(err)
	}

	// Trace the two middle rows only
	err := tr.Trace(tracer.BlockRequest{BlockY: 1, BlockH: 2, SamplesPerPixel: 2, NumBounces: 1, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}

	for y := uint32(0); y < frameH; y++ {
		for x := uint32(0); x < frameW; x++ {
			px := fb[(y*frameW+x)*4 : (y*frameW+x)*4+4]
			if y == 0 || y == 3 {
				if !bytes.Equal(px, []uint8{7, 7, 7, 7}) {
					t.Fatalf("expected pixel (%d, %d) outside the block to be untouched; got %v", x, y, px)
				}
				continue
			}

			// The sky gradient is always fully blue with red in [sqrt(0.5), 1]
			if px[2] < 254 || px[3] != 255 {
				t.Fatalf("expected pixel (%d, %d) to be opaque sky blue; got %v", x, y, px)
			}
			if px[0] < 180 {
				t.Fatalf("expected pixel (%d, %d) red channel >= 180; got %d", x, y, px[0])
			}
		}
	}

	if stats := tr.Stats(); stats.BlockH != 2 {
		t.Fatalf("expected stats block height to be 2; got %d", stats.BlockH)
	}
}

func TestTraceWithoutBouncesIsBlack(t *testing.T) {
	fb := make([]uint8, 2*2*4)
	tr := NewTracer("cpu-0")
	defer tr.Close()
	if err := tr.Setup(emptyScene(1), 2, 2, fb); err != nil {
		t.Fatal(err)
	}
	if err := tr.Trace(tracer.BlockRequest{BlockH: 2, NumBounces: 0}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(fb); i += 4 {
		if !bytes.Equal(fb[i:i+4], []uint8{0, 0, 0, 255}) {
			t.Fatalf("expected opaque black pixel; got %v", fb[i:i+4])
		}
	}
}

func TestTraceIsDeterministicForSeed(t *testing.T) {
	sc := scene.Default()
	sc.Camera.SetupProjection(16.0 / 9.0)

	render := func(seed int64) []uint8 {
		fb := make([]uint8, 16*9*4)
		tr := NewTracer("cpu-0")
		defer tr.Close()
		if err := tr.Setup(sc, 16, 9, fb); err != nil {
			t.Fatal(err)
		}
		if err := tr.Trace(tracer.BlockRequest{BlockH: 9, SamplesPerPixel: 1, NumBounces: 8, Seed: seed}); err != nil {
			t.Fatal(err)
		}
		return fb
	}

	if !bytes.Equal(render(3), render(3)) {
		t.Fatal("expected identical frames for the same seed")
	}
}

func TestToByte(t *testing.T) {
	type spec struct {
		in  float32
		exp uint8
	}
	specs := []spec{{-1, 0}, {0, 0}, {0.5, 127}, {1, 255}, {2, 255}}
	for index, s := range specs {
		if got := toByte(s.in); got != s.exp {
			t.Fatalf("[spec %d] expected %d; got %d", index, s.exp, got)
		}
	}
}
