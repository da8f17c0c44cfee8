package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oggify/internal/config"
	"oggify/internal/testsupport"
)

// stubFFmpeg records each invocation to argsLog, writes "ogg" to the last
// argument, and fails for inputs whose name contains "bad". It answers
// -encoders with a libvorbis listing.
const stubFFmpeg = `
if [ "$2" = "-encoders" ]; then
  echo " A....D libvorbis            libvorbis"
  exit 0
fi
echo "$@" >> "$OGGIFY_STUB_ARGS"
case "$2" in
  *bad*) echo "Invalid data found when processing input" >&2; exit 1 ;;
esac
for last; do :; done
printf 'ogg' > "$last"
`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
	argsLog    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("OGGIFY_FFMPEG", "")

	stub := filepath.Join(base, "bin", "ffmpeg")
	testsupport.WriteScript(t, stub, stubFFmpeg)
	cfg.Conversion.FFmpegBinary = stub

	argsLog := filepath.Join(base, "ffmpeg-args.log")
	t.Setenv("OGGIFY_STUB_ARGS", argsLog)

	configPath := filepath.Join(base, "oggify.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
		argsLog:    argsLog,
	}
}

func (e *cliTestEnv) ffmpegCalls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.argsLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read ffmpeg args log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
log_dir = %q

[conversion]
workers = %d
speed = %.2f
ffmpeg_binary = %q
lock_directory = true

[logging]
format = "console"
level = "info"
`,
		cfg.Paths.LogDir,
		cfg.Conversion.Workers,
		cfg.Conversion.Speed,
		cfg.Conversion.FFmpegBinary,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
