package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"hexwipe/internal/core"
	"hexwipe/internal/effect"
	"hexwipe/internal/noise"
	"hexwipe/internal/render"
)

// Config represents the command-line parameters shared by the viewer and
// the exporter.
type Config struct {
	From string
	To   string

	Width  int
	Height int
	Scale  int
	TPS    int

	Noise   string
	Seed    int64
	Workers int

	Transition float64
	Speed      float64

	Edge       string
	MaxTexture int

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults. The default
// frame keeps the 1:1.2 card proportions of the reference scene.
func NewConfig() *Config {
	return &Config{
		Width:      320,
		Height:     384,
		Scale:      2,
		TPS:        60,
		Noise:      string(noise.KindSimplex),
		Seed:       42,
		Edge:       render.EdgeClamp.String(),
		MaxTexture: 2048,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.From, "from", c.From, "image shown at transition 0")
	fs.StringVar(&c.To, "to", c.To, "image shown at transition 1")
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise backend: "+kindList())
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed")
	fs.IntVar(&c.Workers, "workers", c.Workers, "render goroutines (0 = all CPUs)")
	fs.Float64Var(&c.Transition, "transition", c.Transition, "initial transition value in [0,1]")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "autoplay rate in transitions per second (0 = manual)")
	fs.StringVar(&c.Edge, "edge", c.Edge, "texture edge mode: clamp, repeat or mirror")
	fs.IntVar(&c.MaxTexture, "max-texture", c.MaxTexture, "downsample textures whose longer side exceeds this (0 = never)")
	fs.Var(&c.Overrides, "set", "effect parameter override in key=value form (repeatable)")
}

// Validate reports configuration the programs cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.From == "" || c.To == "" {
		errs = append(errs, errors.New("both -from and -to images are required"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("frame size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if _, err := render.ParseEdge(c.Edge); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Size returns the render frame size.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Params returns the default effect parameters with -set overrides applied.
func (c *Config) Params() (effect.Params, error) {
	p := effect.DefaultParams()
	overrides, err := c.Overrides.Map()
	if err != nil {
		return p, err
	}
	if err := p.Apply(overrides); err != nil {
		return p, err
	}
	return p, p.Validate()
}

// NoiseField builds the configured noise backend.
func (c *Config) NoiseField() (noise.Field, error) {
	return noise.New(noise.Kind(c.Noise), c.Seed)
}

// Effect assembles the configured effect.
func (c *Config) Effect() (*effect.Effect, error) {
	p, err := c.Params()
	if err != nil {
		return nil, err
	}
	n, err := c.NoiseField()
	if err != nil {
		return nil, err
	}
	return effect.New(p, n)
}

// LoadTextures decodes both configured images.
func (c *Config) LoadTextures() (first, second *render.Texture, err error) {
	edge, err := render.ParseEdge(c.Edge)
	if err != nil {
		return nil, nil, err
	}
	opts := render.LoadOptions{MaxSize: c.MaxTexture, Edge: edge}
	if first, err = render.LoadTexture(c.From, opts); err != nil {
		return nil, nil, fmt.Errorf("load -from: %w", err)
	}
	if second, err = render.LoadTexture(c.To, opts); err != nil {
		return nil, nil, fmt.Errorf("load -to: %w", err)
	}
	return first, second, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("malformed override %q", kv)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}

func kindList() string {
	kinds := noise.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
