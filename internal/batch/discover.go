package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/text/cases"
)

var extFolder = cases.Fold()

var eligibleExts = []string{extFolder.String(".wav"), extFolder.String(".mp3")}

// Eligible reports whether name carries a supported input extension. The
// comparison uses Unicode case folding, so ".WAV" and ".Mp3" qualify.
func Eligible(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	return slices.Contains(eligibleExts, extFolder.String(ext))
}

// Discover lists the eligible inputs directly inside dir, sorted by path.
// Subdirectories are not descended into. Symlinks count when they resolve to
// a regular file.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}
	var inputs []string
	for _, entry := range entries {
		if !Eligible(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegular(path, entry) {
			continue
		}
		inputs = append(inputs, path)
	}
	slices.Sort(inputs)
	return inputs, nil
}

func isRegular(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// OutputPath returns ready/<stem>.ogg for an input inside dir.
func OutputPath(dir, input string) string {
	base := filepath.Base(input)
	stem := base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(dir, ReadyDirName, stem+OutputExt)
}
