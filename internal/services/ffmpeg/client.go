package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"oggify/internal/services"
)

var commandContext = exec.CommandContext

const (
	defaultBinary = "ffmpeg"
	defaultCodec  = "libvorbis"
	// maxDiagnostic bounds how much stderr is carried in an error message.
	maxDiagnostic = 4096
)

// Client defines the single-file conversion behaviour.
type Client interface {
	Convert(ctx context.Context, inputPath, outputPath, expression string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary = strings.TrimSpace(binary); binary != "" {
			c.binary = binary
		}
	}
}

// WithCodec overrides the audio encoder used when re-encoding.
func WithCodec(codec string) Option {
	return func(c *CLI) {
		if codec = strings.TrimSpace(codec); codec != "" {
			c.codec = codec
		}
	}
}

// CLI wraps the ffmpeg command-line tool.
type CLI struct {
	binary string
	codec  string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: defaultBinary, codec: defaultCodec}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Binary returns the executable the client launches.
func (c *CLI) Binary() string {
	return c.binary
}

// Args returns the ffmpeg argument list for one conversion. A non-empty
// expression is applied as the audio filter graph and forces a re-encode;
// an empty one stream copies. Existing outputs are always overwritten.
func (c *CLI) Args(inputPath, outputPath, expression string) []string {
	args := []string{"-i", inputPath}
	if expression != "" {
		args = append(args, "-af", expression, "-c:a", c.codec)
	} else {
		args = append(args, "-c", "copy")
	}
	return append(args, "-y", "-loglevel", "error", outputPath)
}

// Convert runs ffmpeg for a single input and blocks until it exits.
func (c *CLI) Convert(ctx context.Context, inputPath, outputPath, expression string) error {
	if strings.TrimSpace(inputPath) == "" {
		return errors.New("input path required")
	}
	if strings.TrimSpace(outputPath) == "" {
		return errors.New("output path required")
	}

	var stderr bytes.Buffer
	cmd := commandContext(ctx, c.binary, c.Args(inputPath, outputPath, expression)...) //nolint:gosec
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return services.Wrap(services.ErrTransient, "ffmpeg", "convert", "conversion interrupted", ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return services.Wrap(services.ErrExternalTool, "ffmpeg", "convert", diagnostic(stderr.String(), exitErr), err)
	}
	return services.Wrap(services.ErrTransient, "ffmpeg", "start", fmt.Sprintf("failed to launch %s", c.binary), err)
}

func diagnostic(stderr string, exitErr *exec.ExitError) string {
	text := strings.TrimSpace(stderr)
	if text == "" {
		return fmt.Sprintf("exited with code %d", exitErr.ExitCode())
	}
	if len(text) > maxDiagnostic {
		text = "..." + text[len(text)-maxDiagnostic:]
	}
	return text
}

var _ Client = (*CLI)(nil)
