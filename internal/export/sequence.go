// Package export renders a transition to a numbered PNG sequence.
package export

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"hexwipe/internal/core"
	"hexwipe/internal/effect"
	"hexwipe/internal/render"
)

// Options control the exported sequence.
type Options struct {
	Frames int
	FPS    float64
	Dir    string
	Prefix string
}

// Validate reports options that cannot produce a sequence.
func (o Options) Validate() error {
	var errs []error
	if o.Frames < 1 {
		errs = append(errs, fmt.Errorf("frames %d must be at least 1", o.Frames))
	}
	if o.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %v must be positive", o.FPS))
	}
	if o.Dir == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	return errors.Join(errs...)
}

// StateAt returns the state of frame i. The transition runs from 0 on the
// first frame to 1 on the last; a single frame renders transition 0.
func StateAt(i int, o Options, aspect float64) effect.State {
	var t float64
	if o.Frames > 1 {
		t = float64(i) / float64(o.Frames-1)
	}
	return effect.State{
		Transition: t,
		Time:       float64(i) / o.FPS,
		Aspect:     aspect,
	}.Clamped()
}

// Path returns the file written for frame i.
func Path(i int, o Options) string {
	prefix := o.Prefix
	if prefix == "" {
		prefix = "frame"
	}
	return filepath.Join(o.Dir, fmt.Sprintf("%s_%04d.png", prefix, i))
}

// Sequence renders every frame and writes it as a PNG. progress, if non-nil,
// is called after each file is written. Cancelling ctx stops before the next
// frame.
func Sequence(ctx context.Context, r *render.Renderer, first, second effect.Sampler, size core.Size, o Options, progress func(i int, path string)) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !size.Valid() {
		return fmt.Errorf("export: invalid frame size %dx%d", size.W, size.H)
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	frame := render.NewFrame(size.W, size.H)
	for i := 0; i < o.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Render(ctx, frame, first, second, StateAt(i, o, size.Aspect())); err != nil {
			return fmt.Errorf("export: frame %d: %w", i, err)
		}
		path := Path(i, o)
		if err := writePNG(path, frame); err != nil {
			return fmt.Errorf("export: frame %d: %w", i, err)
		}
		if progress != nil {
			progress(i, path)
		}
	}
	return nil
}

func writePNG(path string, f *render.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.NRGBA()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
