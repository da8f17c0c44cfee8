package deps

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

const encoderProbeTimeout = 10 * time.Second

// FFmpegRequirement describes the encoder binary used for every conversion.
func FFmpegRequirement(binary string) Requirement {
	return Requirement{
		Name:        "FFmpeg",
		Command:     binary,
		Description: "Required for audio conversion",
	}
}

// CheckEncoder reports whether binary lists codec among its audio encoders.
// The binary must already be resolvable; callers run CheckBinaries first.
func CheckEncoder(ctx context.Context, binary, codec string) Status {
	codec = strings.TrimSpace(codec)
	status := Status{
		Name:        "Encoder",
		Command:     codec,
		Description: "Audio encoder used for filtered or tempo-adjusted output",
	}
	if codec == "" {
		status.Detail = "codec not configured"
		return status
	}

	probeCtx, cancel := context.WithTimeout(ctx, encoderProbeTimeout)
	defer cancel()

	cmd := commandContext(probeCtx, binary, "-hide_banner", "-encoders")
	output, err := cmd.Output()
	if err != nil {
		status.Detail = fmt.Sprintf("list encoders: %v", err)
		return status
	}
	if !encoderListed(output, codec) {
		status.Detail = fmt.Sprintf("encoder %q not available in %s", codec, binary)
		return status
	}
	status.Available = true
	return status
}

// encoderListed scans `ffmpeg -encoders` output. Encoder rows look like
// " A....D libvorbis            libvorbis" where the first field is a flag
// block starting with the media type.
func encoderListed(output []byte, codec string) bool {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if !strings.HasPrefix(fields[0], "A") {
			continue
		}
		if fields[1] == codec {
			return true
		}
	}
	return false
}
