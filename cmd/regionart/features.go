package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/regions/internal/palette"
	"github.com/gogpu/regions/internal/sketch"
)

func newFeaturesCmd() *cobra.Command {
	var f paintFlags
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the features a seed produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, seed, err := f.settings(cmd)
			if err != nil {
				return err
			}
			params, err := cfg.Params(seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d\n", seed)
			printFeatures(cmd.OutOrStdout(), sketch.Features(params))
			fmt.Fprintf(cmd.OutOrStdout(), "Colors: %s\n", palette.FormatList(params.Palette.Colors))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func printFeatures(w io.Writer, features []sketch.Feature) {
	width := 0
	for _, ft := range features {
		width = max(width, len(ft.Name))
	}
	for _, ft := range features {
		fmt.Fprintf(w, "%-*s  %s\n", width+1, ft.Name+":", ft.Value)
	}
}
