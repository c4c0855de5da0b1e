package main

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gogpu/regions"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { regions.SetLogger(nil) })
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	out, err := run(t, "render", "--seed", "42", "--size", "60", "--out", path, "--info", "--width", "90", "--height", "90")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("render printed %q, want %q", out, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 90 || b.Dy() != 90 {
		t.Errorf("output is %v, want 90x90", b)
	}
}

func TestRenderWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "painting.yaml")
	data := "seed: 9\nbuffer_size: 50\ncolors: [\"#ff0000\"]\nbackground: \"#ffffff\"\nframe: false\n"
	if err := os.WriteFile(cfgPath, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "out.png")
	if _, err := run(t, "render", "--config", cfgPath, "--out", path, "--grain", "0"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestRenderInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(cfgPath, []byte("points_per_frame = -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "render", "--config", cfgPath); err == nil {
		t.Error("render with invalid config succeeded")
	}
}

func TestFeatures(t *testing.T) {
	out, err := run(t, "features", "--seed", "3")
	if err != nil {
		t.Fatalf("features: %v", err)
	}
	for _, want := range []string{"Seed: 3", "Color palette:", "Proportion:", "With striped regions:"} {
		if !strings.Contains(out, want) {
			t.Errorf("features output missing %q:\n%s", want, out)
		}
	}
}

func TestFeaturesColors(t *testing.T) {
	out, err := run(t, "features", "--seed", "3", "--colors", "faf5e6-7daafa-ff6464")
	if err != nil {
		t.Fatalf("features: %v", err)
	}
	if !strings.Contains(out, "Colors: faf5e6-7daafa-ff6464") {
		t.Errorf("features ignored --colors:\n%s", out)
	}

	if _, err := run(t, "features", "--colors", "faf5e6-zz"); err == nil {
		t.Error("features with a bad --colors list succeeded")
	}
}

func TestSettingsKeepsFallbackSeed(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "painting.yaml")
	if err := os.WriteFile(cfgPath, []byte("buffer_size: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	var f paintFlags
	cmd := &cobra.Command{Use: "watch"}
	f.register(cmd)
	if err := cmd.Flags().Parse([]string{"--config", cfgPath}); err != nil {
		t.Fatal(err)
	}

	_, first, err := f.settings(cmd)
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		_, seed, err := f.settings(cmd)
		if err != nil {
			t.Fatal(err)
		}
		if seed != first {
			t.Fatalf("seed changed between reloads: %d then %d", first, seed)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats", "--seed", "5", "--size", "200", "--step", "20")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Main regions:", "Background regions:", "median", "inside a shape"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestSampleRegions(t *testing.T) {
	e := regions.Extent{Width: 100, Height: 100}
	set := regions.NewShapeSet(
		[]regions.Shape{regions.NewRectangle(regions.Pt(25, 50), 50, 100, 0)},
		regions.NewRand(1), e)

	s := sampleRegions(set, 100, 100, 10)
	if s.Samples != 100 || s.Shapes != 1 {
		t.Fatalf("samples = %d, shapes = %d, want 100 and 1", s.Samples, s.Shapes)
	}
	if s.Coverage < 0.49 || s.Coverage > 0.51 {
		t.Errorf("coverage = %v, want 0.5", s.Coverage)
	}
	if s.Quantiles[0] > s.Quantiles[2] || s.Quantiles[2] > s.Quantiles[4] {
		t.Errorf("quantiles not ordered: %v", s.Quantiles)
	}
	if s.Mean < s.Quantiles[0] || s.Mean > s.Quantiles[4] {
		t.Errorf("mean %v outside [%v, %v]", s.Mean, s.Quantiles[0], s.Quantiles[4])
	}

	if empty := sampleRegions(set, 0, 0, 10); empty.Samples != 0 {
		t.Errorf("empty buffer sampled %d points", empty.Samples)
	}
}

func TestRerenderInvalidConfigWarns(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(cfgPath, []byte("points_per_frame = -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	regions.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { regions.SetLogger(nil) })

	var f renderFlags
	cmd := &cobra.Command{Use: "watch"}
	f.register(cmd)
	if err := cmd.Flags().Parse([]string{"--config", cfgPath}); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)

	f.rerender(context.Background(), cmd)
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "watch: invalid config") {
		t.Errorf("invalid config not logged as a warning:\n%s", logs.String())
	}
	if out.Len() != 0 {
		t.Errorf("rerender printed %q for an invalid config", out.String())
	}
}

func TestWatchRequiresConfig(t *testing.T) {
	if _, err := run(t, "watch"); err == nil {
		t.Error("watch without --config succeeded")
	}
}
