package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"oggify/internal/config"
	"oggify/internal/filterchain"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(newConfigInitCommand(), newConfigValidateCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		targetPath string
		overwrite  bool
		toStdout   bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if toStdout {
				_, err := io.WriteString(out, config.Sample())
				return err
			}

			target, err := initTarget(targetPath)
			if err != nil {
				return err
			}
			if err := refuseOverwrite(target, overwrite); err != nil {
				return err
			}
			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Enable filters under [filters.<name>] to apply them on every run.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the sample configuration instead of writing it")
	return cmd
}

func initTarget(flag string) (string, error) {
	if flag = strings.TrimSpace(flag); flag == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("determine default config path: %w", err)
		}
		return path, nil
	}
	path, err := config.ExpandPath(flag)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

func refuseOverwrite(target string, overwrite bool) error {
	if overwrite {
		return nil
	}
	_, err := os.Stat(target)
	switch {
	case err == nil:
		return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("check config path: %w", err)
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration file and show effective settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(flagValue(ctx.configFlag))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			source := path
			if !exists {
				source = path + " (not found, defaults used)"
			}
			out := cmd.OutOrStdout()
			view := tableView{
				columns: []column{
					{header: "Setting", align: text.AlignLeft},
					{header: "Value", align: text.AlignLeft},
				},
				rows: effectiveSettings(cfg, source),
			}
			fmt.Fprintln(out, view.render())
			fmt.Fprintln(out, renderStatusLine("Configuration", statusOK, "valid", shouldColorize(out)))
			return nil
		},
	}
}

func effectiveSettings(cfg *config.Config, source string) [][]string {
	expression := filterchain.Build(cfg.Filters, cfg.Conversion.Speed)
	if expression == "" {
		expression = "(stream copy)"
	}
	logFile := cfg.LogFilePath()
	if logFile == "" {
		logFile = "(console only)"
	}
	timeout := "none"
	if d := cfg.Timeout(); d > 0 {
		timeout = d.String()
	}
	return [][]string{
		{"config file", source},
		{"workers", strconv.Itoa(cfg.Conversion.Workers)},
		{"speed", filterchain.FormatSpeed(cfg.Conversion.Speed)},
		{"codec", cfg.Conversion.Codec},
		{"ffmpeg", cfg.Conversion.FFmpegBinary},
		{"timeout", timeout},
		{"verify output", strconv.FormatBool(cfg.Conversion.VerifyOutput)},
		{"lock directory", strconv.FormatBool(cfg.Conversion.LockDirectory)},
		{"processing", expression},
		{"log", cfg.Logging.Format + " / " + cfg.Logging.Level},
		{"log file", logFile},
	}
}
