package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/regions"
	"github.com/gogpu/regions/internal/painter"
)

// Editors often write a file in several steps; events closer together than
// this are handled as one change.
const watchSettle = 200 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.config == "" {
				return errors.New("watch: --config is required")
			}
			return watch(cmd.Context(), cmd, &f)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output PNG (default regions-<seed>.png)")
	cmd.Flags().BoolVar(&f.info, "info", false, "draw the statistics panel")
	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, f *renderFlags) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors that save by renaming replace the file.
	if err := w.Add(absDir(f.config)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	target, err := filepath.Abs(f.config)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	f.rerender(ctx, cmd)

	settle := time.NewTimer(watchSettle)
	settle.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if path, err := filepath.Abs(event.Name); err != nil || path != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				regions.Logger().Debug("watch: change", "op", event.Op.String())
				settle.Reset(watchSettle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			regions.Logger().Warn("watch: watcher error", "err", err)
		case <-settle.C:
			f.rerender(ctx, cmd)
		}
	}
}

// rerender reloads the settings and renders once. Failures are logged so
// the watch keeps running until the file is fixed.
func (f *renderFlags) rerender(ctx context.Context, cmd *cobra.Command) {
	cfg, seed, err := f.settings(cmd)
	if err != nil {
		regions.Logger().Warn("watch: invalid config", "err", err)
		return
	}
	out := f.out
	if out == "" {
		out = defaultOutput(seed)
	}
	if err := render(ctx, cfg, seed, out, painter.ImageOptions{Info: f.info}); err != nil {
		regions.Logger().Warn("watch: render failed", "err", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
}
