package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:   "oggify [path]",
		Short: "Convert WAV and MP3 audio to Ogg with ffmpeg",
		Long: `Convert a single audio file, or every .wav/.mp3 file directly inside a
directory, to Ogg.

Directory mode writes <dir>/ready/<name>.ogg and skips files whose output
already exists. File mode writes a sibling <name>.ogg and always overwrites.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.path = args[0]
			}
			return runConvert(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.path, "path", "p", "", "File or directory to convert")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Concurrent conversions in directory mode (default from config, 4)")
	flags.Float64VarP(&opts.speed, "speed", "s", 0, "Tempo multiplier applied with atempo (default from config, 1.0)")
	flags.StringVarP(&opts.filters, "filters", "f", "", `Filter configuration as JSON, e.g. '{"highpass":{"enabled":true,"params":"f=200"}}'`)

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd
}
