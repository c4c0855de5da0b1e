package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/regions"
	"github.com/gogpu/regions/internal/canvas"
	"github.com/gogpu/regions/internal/config"
	"github.com/gogpu/regions/internal/painter"
)

type renderFlags struct {
	paintFlags
	out    string
	width  int
	height int
	info   bool
	grain  float64
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Paint a seed to completion and save it as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, seed, err := f.settings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("grain") {
				cfg.NoiseAmount = f.grain
			}
			out := f.out
			if out == "" {
				out = defaultOutput(seed)
			}
			opts := painter.ImageOptions{Width: f.width, Height: f.height, Info: f.info}
			if err := render(cmd.Context(), cfg, seed, out, opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output PNG (default regions-<seed>.png)")
	cmd.Flags().IntVar(&f.width, "width", 0, "output width (default buffer width)")
	cmd.Flags().IntVar(&f.height, "height", 0, "output height (default buffer height)")
	cmd.Flags().BoolVar(&f.info, "info", false, "draw the statistics panel")
	cmd.Flags().Float64Var(&f.grain, "grain", config.DefaultNoiseAmount, "film grain amount in [0, 1]")
	return cmd
}

// render paints seed to completion and writes the result to out.
func render(ctx context.Context, cfg config.Config, seed uint64, out string, opts painter.ImageOptions) error {
	p, err := newPainter(cfg, seed)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Run(ctx, nil); err != nil {
		return err
	}
	opts.Grain = cfg.NoiseAmount
	if err := canvas.SavePNG(out, p.Image(opts)); err != nil {
		return err
	}
	s := p.Stats()
	regions.Logger().Info("saved", "path", out, "frames", s.Frame, "painted", s.Painted)
	return nil
}
