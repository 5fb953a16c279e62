package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gogpu/tincture"
	"github.com/gogpu/tincture/internal/recipe"
)

type globalFlags struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:          "tincture",
		Short:        "Packed RGBA color math",
		Version:      tincture.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if flags.verbose {
				tincture.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log batch execution to stderr")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "print without color swatches")

	root.AddCommand(
		newRunCmd(&flags),
		newBlendCmd(&flags),
		newInfoCmd(&flags),
	)
	return root
}

func newRunCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <recipe>",
		Short: "Execute a TOML, YAML or JSON batch recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recipe.Load(args[0])
			if err != nil {
				return err
			}
			colors, err := rec.Run()
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout(), flags.noColor)
			for _, c := range colors {
				p.color(c)
			}
			return nil
		},
	}
}

func newBlendCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "blend <mode> <color> <color>...",
		Short: "Blend colors left to right with one mode",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := tincture.ParseBlendMode(args[0])
			if err != nil {
				return err
			}
			colors, err := parseColors(args[1:])
			if err != nil {
				return err
			}
			c, err := tincture.BlendAll(mode, colors...)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout(), flags.noColor).color(c)
			return nil
		},
	}
}

func newInfoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info <color>...",
		Short: "Show a color in every supported colorspace",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout(), flags.noColor)
			for _, c := range colors {
				p.info(c)
			}
			return nil
		},
	}
}

func parseColors(args []string) ([]tincture.Color, error) {
	out := make([]tincture.Color, len(args))
	for i, s := range args {
		c, err := tincture.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// printer writes colors with an optional terminal swatch.
type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(w io.Writer, noColor bool) *printer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &printer{w: w, out: termenv.NewOutput(w, opts...)}
}

func (p *printer) swatch(c tincture.Color) string {
	if p.out.Profile == termenv.Ascii {
		return ""
	}
	return p.out.String("    ").Background(p.out.Color(c.Hex(false))).String() + " "
}

func (p *printer) color(c tincture.Color) {
	fmt.Fprintf(p.w, "%s%s  %v\n", p.swatch(c), c.Hex(true), c)
}

func (p *printer) info(c tincture.Color) {
	p.color(c)
	h, s, l := c.HSL()
	fmt.Fprintf(p.w, "  %-6s %7.2f %6.3f %6.3f\n", "hsl", h, s, l)
	h, s, v := c.HSV()
	fmt.Fprintf(p.w, "  %-6s %7.2f %6.3f %6.3f\n", "hsv", h, s, v)
	x, y, z := c.XYZ()
	fmt.Fprintf(p.w, "  %-6s %7.3f %6.3f %6.3f\n", "xyz", x, y, z)
	ol, oa, ob := c.OKLab()
	fmt.Fprintf(p.w, "  %-6s %7.3f %6.3f %6.3f\n", "oklab", ol, oa, ob)
	ol, och, oh := c.OKLCh()
	fmt.Fprintf(p.w, "  %-6s %7.3f %6.3f %6.2f\n", "oklch", ol, och, oh)
	fmt.Fprintf(p.w, "  %-6s %7.3f\n", "luma", c.Luminance())
}
