package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/regions/internal/preview"
)

func newPreviewCmd() *cobra.Command {
	var (
		f   paintFlags
		dir string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Watch a painting appear in the terminal",
		Long: `Paint a seed in the terminal.

Keys: d raise density, f toggle frame, n/b grain +/-, up/down buffer size,
p pause, s save PNG, i info panel, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, seed, err := f.settings(cmd)
			if err != nil {
				return err
			}
			p, err := newPainter(cfg, seed)
			if err != nil {
				return err
			}
			defer p.Close()
			return preview.Run(cmd.Context(), p, preview.Options{Grain: cfg.NoiseAmount, SaveDir: dir})
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&dir, "save-dir", ".", "directory for PNGs saved with s")
	return cmd
}
