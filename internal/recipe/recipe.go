// Package recipe loads declarative batch descriptions from TOML, YAML or
// JSON files and turns them into tincture batches.
//
// A recipe lists starting colors and an ordered program of steps:
//
//	name = "warm"
//	colors = ["#336699", "cornflowerblue"]
//
//	[[steps]]
//	op = "add"
//	scalars = [10]
//
//	[[steps]]
//	op = "blend"
//	colors = ["#ff8800"]
//	modes = ["soft_light"]
//
// Steps are queued in file order, so executing the batch folds them in
// that order.
package recipe

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/tincture"
)

// Errors.
var (
	// ErrUnknownOp is returned for a step whose op is not one of add, sub,
	// mul, div, nth_root or blend.
	ErrUnknownOp = errors.New("recipe: unknown op")

	// ErrUnknownFormat is returned when a file extension or format name is
	// not toml, yaml, yml or json.
	ErrUnknownFormat = errors.New("recipe: unknown format")

	// ErrInvalidStep is returned when a step carries the wrong operands for
	// its op.
	ErrInvalidStep = errors.New("recipe: invalid step")
)

// Ops.
const (
	OpAdd     = "add"
	OpSub     = "sub"
	OpMul     = "mul"
	OpDiv     = "div"
	OpNthRoot = "nth_root"
	OpBlend   = "blend"
)

// Recipe is a batch description.
type Recipe struct {
	// Name labels the recipe in logs. Load defaults it to the file name.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Colors are the starting colors, as hex or color names.
	Colors []string `toml:"colors" yaml:"colors" json:"colors"`

	// ChunkSize is passed to tincture.WithChunkSize when positive.
	ChunkSize int `toml:"chunk_size" yaml:"chunk_size" json:"chunk_size"`

	// Serial selects tincture.WithSerial.
	Serial bool `toml:"serial" yaml:"serial" json:"serial"`

	Steps []Step `toml:"steps" yaml:"steps" json:"steps"`
}

// Step is one queued batch operation.
//
// add, sub and mul take either Colors or Scalars. div and nth_root take
// Scalars. blend takes Colors and Modes of the same length.
type Step struct {
	Op           string    `toml:"op" yaml:"op" json:"op"`
	Colors       []string  `toml:"colors" yaml:"colors" json:"colors"`
	Scalars      []float64 `toml:"scalars" yaml:"scalars" json:"scalars"`
	Modes        []string  `toml:"modes" yaml:"modes" json:"modes"`
	IncludeAlpha bool      `toml:"include_alpha" yaml:"include_alpha" json:"include_alpha"`
}

// Build parses the recipe's colors and queues every step on a new batch.
// Nothing is executed.
func (r *Recipe) Build() (*tincture.Batch, error) {
	colors, err := parseColors(r.Colors)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: colors: %w", r.Name, err)
	}

	var opts []tincture.BatchOption
	if r.ChunkSize > 0 {
		opts = append(opts, tincture.WithChunkSize(r.ChunkSize))
	}
	if r.Serial {
		opts = append(opts, tincture.WithSerial())
	}

	b := tincture.NewBatch(colors, opts...)
	for i, s := range r.Steps {
		if err := s.queue(b); err != nil {
			return nil, fmt.Errorf("recipe %q: step %d (%s): %w", r.Name, i, s.Op, err)
		}
	}
	return b, nil
}

// Run builds the batch, executes it and returns the resulting colors.
func (r *Recipe) Run() ([]tincture.Color, error) {
	start := time.Now()
	b, err := r.Build()
	if err != nil {
		return nil, err
	}
	out := b.ExecuteInPlace().Colors()

	tincture.Logger().Info("tincture: recipe executed",
		"recipe", r.Name,
		"colors", len(out),
		"steps", len(r.Steps),
		"duration", time.Since(start))
	return out, nil
}

func (s Step) queue(b *tincture.Batch) error {
	colors, err := parseColors(s.Colors)
	if err != nil {
		return err
	}

	switch s.Op {
	case OpAdd, OpSub, OpMul:
		if (len(colors) == 0) == (len(s.Scalars) == 0) {
			return fmt.Errorf("%w: %s needs either colors or scalars", ErrInvalidStep, s.Op)
		}
		s.queueArithmetic(b, colors)
		return nil
	case OpDiv, OpNthRoot:
		if len(colors) > 0 || len(s.Scalars) == 0 {
			return fmt.Errorf("%w: %s needs scalars only", ErrInvalidStep, s.Op)
		}
		if s.Op == OpNthRoot {
			b.NthRoot(s.Scalars, s.IncludeAlpha)
			return nil
		}
		_, err = b.DivScalars(s.Scalars, s.IncludeAlpha)
		return err
	case OpBlend:
		if len(s.Scalars) > 0 {
			return fmt.Errorf("%w: blend takes no scalars", ErrInvalidStep)
		}
		modes := make([]tincture.BlendMode, len(s.Modes))
		for i, name := range s.Modes {
			if modes[i], err = tincture.ParseBlendMode(name); err != nil {
				return err
			}
		}
		_, err = b.Blend(colors, modes)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
}

func (s Step) queueArithmetic(b *tincture.Batch, colors []tincture.Color) {
	if len(colors) > 0 {
		switch s.Op {
		case OpAdd:
			b.Add(colors, s.IncludeAlpha)
		case OpSub:
			b.Sub(colors, s.IncludeAlpha)
		case OpMul:
			b.Mul(colors, s.IncludeAlpha)
		}
		return
	}
	switch s.Op {
	case OpAdd:
		b.AddScalars(s.Scalars, s.IncludeAlpha)
	case OpSub:
		b.SubScalars(s.Scalars, s.IncludeAlpha)
	case OpMul:
		b.MulScalars(s.Scalars, s.IncludeAlpha)
	}
}

func parseColors(in []string) ([]tincture.Color, error) {
	out := make([]tincture.Color, len(in))
	for i, s := range in {
		c, err := tincture.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
