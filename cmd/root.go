package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"MaskPaint/internal/config"
)

type options struct {
	configPath string
	width      int
	height     int
	scrubSize  int
	eraserSize int
}

// NewRootCmd builds the launcher. run receives the resolved configuration
// and opens the editor.
func NewRootCmd(run func(config.Config) error) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "maskpaint",
		Short: "Paint image masks for inpainting pipelines",
		Long: `MaskPaint opens an image, lets you paint an opaque mask over it with a
scrub brush or remove mask with an eraser, and saves the mask alone as
masked-image.png: white everywhere except the painted regions.

Canvas size and initial brush sizes come from defaults, an optional YAML
file, MASKPAINT_* environment variables (a .env file is read if present)
and finally the flags below.`,
		Example: `  # Default 500x500 canvas
  maskpaint

  # Larger canvas with a bigger starting brush
  maskpaint --width 1024 --height 768 --scrub-size 35`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Canvas height in pixels")
	cmd.Flags().IntVar(&opts.scrubSize, "scrub-size", 0, "Initial scrub brush diameter (10-50)")
	cmd.Flags().IntVar(&opts.eraserSize, "eraser-size", 0, "Initial eraser diameter (10-50)")

	return cmd
}

func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.CanvasWidth = opts.width
	}
	if flags.Changed("height") {
		cfg.CanvasHeight = opts.height
	}
	if flags.Changed("scrub-size") {
		cfg.ScrubSize = opts.scrubSize
	}
	if flags.Changed("eraser-size") {
		cfg.EraserSize = opts.eraserSize
	}
	return cfg, cfg.Validate()
}
