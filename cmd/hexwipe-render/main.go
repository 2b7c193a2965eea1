package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"hexwipe/internal/app"
	"hexwipe/internal/export"
	"hexwipe/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 60, "number of frames to write")
	fps := flag.Float64("fps", 30, "frames per second used for the animation clock")
	out := flag.String("out", "frames", "output directory")
	prefix := flag.String("prefix", "frame", "file name prefix")
	flag.Parse()

	opts := export.Options{Frames: *frames, FPS: *fps, Dir: *out, Prefix: *prefix}
	if err := opts.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	first, second, err := cfg.LoadTextures()
	if err != nil {
		log.Fatal(err)
	}
	e, err := cfg.Effect()
	if err != nil {
		log.Fatal(err)
	}
	r := render.NewRenderer(e, cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	log.Printf("rendering %d frames at %dx%d with %d workers", opts.Frames, cfg.Width, cfg.Height, r.Workers())
	err = export.Sequence(ctx, r, first, second, cfg.Size(), opts, func(i int, path string) {
		log.Printf("[%d/%d] %s", i+1, opts.Frames, path)
	})
	if err != nil {
		stop()
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))
}
