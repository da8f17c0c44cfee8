package batch

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"oggify/internal/testsupport"
)

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "song.wav", want: true},
		{name: "song.mp3", want: true},
		{name: "SONG.WAV", want: true},
		{name: "Song.Mp3", want: true},
		{name: "song.ogg", want: false},
		{name: "song.wav.txt", want: false},
		{name: "wav", want: false},
		{name: "song", want: false},
	}
	for _, tt := range tests {
		if got := Eligible(tt.name); got != tt.want {
			t.Errorf("Eligible(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.wav", "A.MP3", "c.Wav", "notes.txt", "ready/old.wav", "nested/deep.mp3"} {
		testsupport.WriteFile(t, filepath.Join(dir, name), 8)
	}
	if err := os.Mkdir(filepath.Join(dir, "folder.wav"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "b.wav"), filepath.Join(dir, "link.mp3")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing.wav"), filepath.Join(dir, "dangling.wav")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.Join(dir, "A.MP3"),
		filepath.Join(dir, "b.wav"),
		filepath.Join(dir, "c.Wav"),
		filepath.Join(dir, "link.mp3"),
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Discover = %v, want %v", got, want)
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/music", "/music/Track 01.WAV")
	want := filepath.Join("/music", "ready", "Track 01.ogg")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}
