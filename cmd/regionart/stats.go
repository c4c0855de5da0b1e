package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/regions"
	"github.com/gogpu/regions/internal/sketch"
)

// regionStats summarises the region random numbers of a region set sampled
// on a regular grid.
type regionStats struct {
	Samples   int
	Shapes    int
	Mean      float64
	StdDev    float64
	Quantiles [5]float64 // 0, 0.25, 0.5, 0.75, 1
	Coverage  float64    // fraction of samples inside some shape
}

var quantileLevels = [5]float64{0, 0.25, 0.5, 0.75, 1}

// sampleRegions evaluates r at the centre of every step x step cell of a
// width x height buffer.
func sampleRegions(r regions.Regions, width, height, step int) regionStats {
	step = max(step, 1)
	var values []float64
	inside := 0
	for y := step / 2; y < height; y += step {
		for x := step / 2; x < width; x += step {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			values = append(values, regions.RandomNumber(r, fx, fy, 0))
			if r.IsInsideShape(fx, fy) {
				inside++
			}
		}
	}

	s := regionStats{Samples: len(values), Shapes: r.NumShapes()}
	if len(values) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	slices.Sort(values)
	for i, q := range quantileLevels {
		s.Quantiles[i] = stat.Quantile(q, stat.Empirical, values, nil)
	}
	s.Coverage = float64(inside) / float64(len(values))
	return s
}

func (s regionStats) print(w io.Writer, name string) {
	fmt.Fprintf(w, "%s regions: %d shapes, %d samples\n", name, s.Shapes, s.Samples)
	fmt.Fprintf(w, "  mean %.4f  stddev %.4f\n", s.Mean, s.StdDev)
	fmt.Fprintf(w, "  min %.4f  q1 %.4f  median %.4f  q3 %.4f  max %.4f\n",
		s.Quantiles[0], s.Quantiles[1], s.Quantiles[2], s.Quantiles[3], s.Quantiles[4])
	fmt.Fprintf(w, "  inside a shape: %.1f%%\n", 100*s.Coverage)
}

func newStatsCmd() *cobra.Command {
	var (
		f    paintFlags
		step int
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report the distribution of region random numbers for a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, seed, err := f.settings(cmd)
			if err != nil {
				return err
			}
			params, w, h, err := paramsFor(cfg, seed)
			if err != nil {
				return err
			}
			rs, err := sketch.Build(params, w, h)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seed: %d, buffer %dx%d\n", seed, w, h)
			sampleRegions(rs.Main, w, h, step).print(out, "Main")
			sampleRegions(rs.Background, w, h, step).print(out, "Background")
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&step, "step", 10, "sampling grid step in pixels")
	return cmd
}
