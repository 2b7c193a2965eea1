package render

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"hexwipe/internal/core"
	"hexwipe/internal/effect"

	"golang.org/x/sync/errgroup"
)

// ErrSizeMismatch is returned when a destination buffer does not match the
// requested frame size.
var ErrSizeMismatch = errors.New("render: buffer size mismatch")

// defaultBandRows is the number of rows handed to a worker at a time.
const defaultBandRows = 16

// Renderer evaluates an effect over whole frames. Rows are split into bands
// and shaded concurrently; every sample is independent so the result does not
// depend on the worker count.
type Renderer struct {
	effect   *effect.Effect
	workers  int
	bandRows int
}

// NewRenderer binds e to a pool of workers. Non-positive counts use every CPU.
func NewRenderer(e *effect.Effect, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{effect: e, workers: workers, bandRows: defaultBandRows}
}

// Effect returns the effect being rendered.
func (r *Renderer) Effect() *effect.Effect { return r.effect }

// SetEffect swaps the effect used by subsequent renders.
func (r *Renderer) SetEffect(e *effect.Effect) { r.effect = e }

// Workers returns the worker limit.
func (r *Renderer) Workers() int { return r.workers }

// Render shades every pixel of dst. A zero Aspect in st is replaced with the
// frame's own aspect ratio; nothing else in st is altered.
func (r *Renderer) Render(ctx context.Context, dst *Frame, first, second effect.Sampler, st effect.State) error {
	if err := effect.CheckImages(first, second); err != nil {
		return err
	}
	if len(dst.Pix) != 4*dst.W*dst.H {
		return fmt.Errorf("%w: frame %dx%d has %d channels", ErrSizeMismatch, dst.W, dst.H, len(dst.Pix))
	}
	if st.Aspect == 0 {
		st.Aspect = dst.Size().Aspect()
	}
	e := r.effect
	return r.rows(ctx, dst.H, func(y int) {
		row := dst.Row(y)
		for x := 0; x < dst.W; x++ {
			c := e.Shade(dst.UV(x, y), st, first, second)
			p := row[4*x : 4*x+4 : 4*x+4]
			p[0] = float32(c.R)
			p[1] = float32(c.G)
			p[2] = float32(c.B)
			p[3] = float32(c.A)
		}
	})
}

// RenderMask writes pick(masks) for every pixel of a frame of the given size
// into dst, row-major with the top row first. Images are not read.
func (r *Renderer) RenderMask(ctx context.Context, dst []float32, size core.Size, st effect.State, pick func(effect.Masks) float64) error {
	if len(dst) != size.W*size.H {
		return fmt.Errorf("%w: mask %dx%d has %d values", ErrSizeMismatch, size.W, size.H, len(dst))
	}
	if st.Aspect == 0 {
		st.Aspect = size.Aspect()
	}
	geom := Frame{W: size.W, H: size.H}
	e := r.effect
	return r.rows(ctx, size.H, func(y int) {
		row := dst[y*size.W : (y+1)*size.W]
		for x := range row {
			row[x] = float32(pick(e.Evaluate(geom.UV(x, y), st).Masks))
		}
	})
}

// rows runs fn for every row in [0, h) on the worker pool. Bands not yet
// started when ctx is cancelled are skipped and ctx's error is returned.
func (r *Renderer) rows(ctx context.Context, h int, fn func(y int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	band := r.bandRows
	if band <= 0 {
		band = defaultBandRows
	}
	for y0 := 0; y0 < h; y0 += band {
		if gctx.Err() != nil {
			break
		}
		start, end := y0, min(y0+band, h)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for y := start; y < end; y++ {
				fn(y)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
