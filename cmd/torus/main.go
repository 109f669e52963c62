// Command torus renders a spinning torus as a point cloud in the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/ansipixels/torus/config"
	"github.com/ansipixels/torus/mesh"
	"github.com/ansipixels/torus/render"
	"github.com/ansipixels/torus/viewer"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// rateDelta is how much one +/- keypress changes the spin rate (radians
// per frame).
const rateDelta = 0.02

var (
	configPath  string
	majorRadius float64
	minorRadius float64
	rotStep     float64
	samples     int
	paletteStr  string
	targetFPS   int
	frames      int
)

func main() {
	cmd := &cobra.Command{
		Use:   "torus",
		Short: "Terminal torus point-cloud renderer",
		Long: `torus - Terminal Torus Renderer

Renders a rotating torus as a depth-shaded point cloud using
block characters.

Controls:
  Space       - Pause/resume rotation
  + / -       - Speed up / slow down
  R           - Reset spin rate
  Q / Esc     - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	addFlags(cmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Display torus geometry information",
		Long:  "Display the sampled point count, footprint bounds, and palette for the configured torus without opening the terminal renderer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runInfo(cfg)
		},
	}
	addFlags(infoCmd)
	cmd.AddCommand(infoCmd)

	exportCmd := &cobra.Command{
		Use:   "export <output.glb>",
		Short: "Export the sampled point cloud as glTF",
		Long:  "Sample the configured torus and write the point cloud to a binary glTF file as a POINTS primitive.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runExport(cfg, args[0])
		},
	}
	addFlags(exportCmd)
	cmd.AddCommand(exportCmd)

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().Float64Var(&majorRadius, "major", config.DefaultMajorRadius, "Torus major radius (center to tube center)")
	cmd.Flags().Float64Var(&minorRadius, "minor", config.DefaultMinorRadius, "Torus minor radius (tube radius)")
	cmd.Flags().Float64Var(&rotStep, "step", config.DefaultRotationStep, "Rotation per frame in radians")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSampleCount, "Sampling grid resolution per axis")
	cmd.Flags().StringVar(&paletteStr, "palette", config.DefaultPalette, "Depth palette, far to near")
	cmd.Flags().IntVar(&targetFPS, "fps", config.DefaultFPS, "Target FPS")
	cmd.Flags().IntVar(&frames, "frames", 0, "Stop after this many frames (0 = run until quit)")
}

// loadConfig builds the effective config: file values (if --config is given)
// on top of the defaults, then any flag set on the command line on top of
// that.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	fl := cmd.Flags()
	if fl.Changed("major") {
		cfg.MajorRadius = majorRadius
	}
	if fl.Changed("minor") {
		cfg.MinorRadius = minorRadius
	}
	if fl.Changed("step") {
		cfg.RotationStep = rotStep
	}
	if fl.Changed("samples") {
		cfg.SampleCount = samples
	}
	if fl.Changed("palette") {
		cfg.Palette = paletteStr
	}
	if fl.Changed("fps") {
		cfg.FPS = targetFPS
	}
	if fl.Changed("frames") {
		cfg.Frames = frames
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInfo(cfg *config.Config) error {
	torus := mesh.Torus{Major: cfg.MajorRadius, Minor: cfg.MinorRadius}
	cloud := torus.Sample(cfg.SampleCount)
	minB, maxB := cloud.Bounds()

	fmt.Printf("Major radius:  %g\n", cfg.MajorRadius)
	fmt.Printf("Minor radius:  %g\n", cfg.MinorRadius)
	fmt.Printf("Footprint:     [%g, %g]\n", -torus.Bound(), torus.Bound())
	fmt.Println()
	fmt.Printf("Grid:          %dx%d\n", cfg.SampleCount, cfg.SampleCount)
	fmt.Printf("Points:        %d\n", cloud.PointCount())
	if cloud.PointCount() > 0 {
		fmt.Printf("Bounds min:    (%.3f, %.3f, %.3f)\n", minB.X, minB.Y, minB.Z)
		fmt.Printf("Bounds max:    (%.3f, %.3f, %.3f)\n", maxB.X, maxB.Y, maxB.Z)
	}
	fmt.Println()
	fmt.Printf("Palette:       %s (%d shades)\n", cfg.Palette, len([]rune(cfg.Palette)))
	fmt.Printf("Step:          %g rad/frame\n", cfg.RotationStep)
	return nil
}

func runExport(cfg *config.Config, path string) error {
	torus := mesh.Torus{Major: cfg.MajorRadius, Minor: cfg.MinorRadius}
	cloud := torus.Sample(cfg.SampleCount)
	if err := mesh.WriteGLB(path, "torus", cloud); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Infof("wrote %d points to %s", cloud.PointCount(), path)
	return nil
}

func run(cfg *config.Config) error {
	pal, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}
	torus := mesh.Torus{Major: cfg.MajorRadius, Minor: cfg.MinorRadius}
	cloud := torus.Sample(cfg.SampleCount)
	log.Infof("sampled %d points on a %dx%d grid", cloud.PointCount(), cfg.SampleCount, cfg.SampleCount)

	ap := ansipixels.NewAnsiPixels(float64(cfg.FPS))
	if err = ap.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.Out.Flush()
		ap.Restore()
	}()
	if ap.W <= 0 || ap.H <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
	}
	ap.HideCursor()
	ap.ClearScreen()

	v := viewer.New(cloud, torus.Bound(), cfg.RotationStep, pal, ap.W, ap.H, cfg.FPS)
	ap.OnResize = func() error {
		v.Resize(ap.W, ap.H)
		ap.ClearScreen()
		return nil
	}

	shown := 0
	err = ap.FPSTicks(func() bool {
		for _, b := range ap.Data {
			switch b {
			case 'q', 'Q', 27: // Escape
				return false
			case 3, 4: // Ctrl-C, Ctrl-D
				return false
			case ' ':
				v.TogglePause()
			case '+', '=':
				v.AdjustRate(rateDelta)
			case '-', '_':
				v.AdjustRate(-rateDelta)
			case 'r', 'R':
				v.ResetRate()
			}
		}

		v.Step()

		ap.StartSyncMode()
		if _, werr := v.Frame().WriteTo(ap.Out); werr != nil {
			log.Errf("write frame: %v", werr)
			return false
		}
		ap.EndSyncMode()

		shown++
		return cfg.Frames <= 0 || shown < cfg.Frames
	})
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}
