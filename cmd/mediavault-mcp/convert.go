package main

import (
	"github.com/mediavault/mediavault-mcp/internal/config"
	"github.com/mediavault/mediavault-mcp/internal/preview"
	"github.com/mordilloSan/go-logger/logger"
	"github.com/spf13/cobra"
)

// logLevels selects the logger levels for the convert command. Debug output
// is enabled by the --verbose flag or by log.verbose in the configuration.
func logLevels(verbose bool, cfg config.LogConfig) []logger.Level {
	if verbose || cfg.Verbose {
		return logger.AllLevels()
	}
	return []logger.Level{logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel}
}

// convertCommand converts a single image into a JPEG preview. It runs as a
// one-shot process, so unlike the server it is free to log to stdout.
func convertCommand() *cobra.Command {
	var (
		maxDimension int
		quality      int
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert an image to a JPEG preview",
		Long: `Convert decodes an image (JPEG, PNG, GIF, BMP, TIFF, or WebP), downscales
it so the longest side fits --max-dimension, and writes a JPEG. Images are
never upscaled.`,
		Example: `  mediavault-mcp convert photo.tiff preview.jpg --max-dimension 1280`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger.Init(logger.Config{Levels: logLevels(verbose, cfg.Log)})

			opts := preview.Options{
				MaxDimension: cfg.Preview.MaxDimension,
				Quality:      cfg.Preview.Quality,
			}
			if cmd.Flags().Changed("max-dimension") {
				opts.MaxDimension = maxDimension
			}
			if cmd.Flags().Changed("quality") {
				opts.Quality = quality
			}

			logger.Debugf("converting %s (max dimension %d, quality %d)", args[0], opts.MaxDimension, opts.Quality)

			result, err := preview.Convert(args[0], args[1], opts)
			if err != nil {
				logger.Errorf("conversion failed: %v", err)
				return err
			}

			logger.InfoKV("image converted",
				"input", args[0],
				"output", args[1],
				"format", result.Format,
				"width", result.Width,
				"height", result.Height,
				"resized", result.Resized,
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDimension, "max-dimension", 0, "longest side of the output in pixels (0 keeps the original size)")
	cmd.Flags().IntVar(&quality, "quality", preview.DefaultQuality, "JPEG quality, 1-100")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
