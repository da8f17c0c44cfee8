package deps

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected blank command to be reported unconfigured, got %#v", results[2])
	}
}

func TestCheckBinariesResolvesFromPath(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffmpeg")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	results := CheckBinaries([]Requirement{FFmpegRequirement("ffmpeg")})
	if !results[0].Available {
		t.Fatalf("expected ffmpeg on PATH, got %#v", results[0])
	}
	if results[0].Command != stub {
		t.Fatalf("expected resolved command %q, got %q", stub, results[0].Command)
	}
}

func TestEncoderListed(t *testing.T) {
	output := []byte(`Encoders:
 V..... = Video
 A..... = Audio
 ------
 V....D libx264              libx264 H.264 / AVC
 A....D libvorbis            libvorbis
 A....D libopus              libopus Opus
`)
	tests := []struct {
		codec string
		want  bool
	}{
		{codec: "libvorbis", want: true},
		{codec: "libopus", want: true},
		{codec: "libx264", want: false},
		{codec: "vorbis", want: false},
	}
	for _, tt := range tests {
		if got := encoderListed(output, tt.codec); got != tt.want {
			t.Errorf("encoderListed(%q) = %v, want %v", tt.codec, got, tt.want)
		}
	}
}

func TestCheckEncoder(t *testing.T) {
	stubEncoderCommand(t, "encoders")

	status := CheckEncoder(context.Background(), "ffmpeg", "libvorbis")
	if !status.Available {
		t.Fatalf("expected libvorbis to be available, got %#v", status)
	}

	status = CheckEncoder(context.Background(), "ffmpeg", "libmp3lame")
	if status.Available {
		t.Fatal("expected libmp3lame to be unavailable")
	}
	if !strings.Contains(status.Detail, "libmp3lame") {
		t.Fatalf("expected detail to name codec, got %q", status.Detail)
	}
}

func TestCheckEncoderCommandFailure(t *testing.T) {
	stubEncoderCommand(t, "fail")

	status := CheckEncoder(context.Background(), "ffmpeg", "libvorbis")
	if status.Available {
		t.Fatal("expected failure when ffmpeg exits non-zero")
	}
	if !strings.HasPrefix(status.Detail, "list encoders") {
		t.Fatalf("unexpected detail %q", status.Detail)
	}
}

func TestCheckEncoderBlankCodec(t *testing.T) {
	status := CheckEncoder(context.Background(), "ffmpeg", " ")
	if status.Available || status.Detail != "codec not configured" {
		t.Fatalf("unexpected status %#v", status)
	}
}

func stubEncoderCommand(t *testing.T, mode string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "DEPS_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() { commandContext = original })
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("DEPS_HELPER_MODE") {
	case "encoders":
		fmt.Fprintln(os.Stdout, "Encoders:")
		fmt.Fprintln(os.Stdout, " ------")
		fmt.Fprintln(os.Stdout, " A....D libvorbis            libvorbis")
		fmt.Fprintln(os.Stdout, " A....D aac                  AAC (Advanced Audio Coding)")
		os.Exit(0)
	default:
		fmt.Fprintln(os.Stderr, "boom")
		os.Exit(1)
	}
}
