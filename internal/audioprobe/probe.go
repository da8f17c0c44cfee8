package audioprobe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrInvalidFile       = errors.New("invalid audio file")
)

// Format names reported in Info.
const (
	FormatWAV = "wav"
	FormatMP3 = "mp3"
	FormatOgg = "ogg"
)

// go-mp3 always decodes to interleaved 16-bit stereo.
const mp3BytesPerFrame = 4

// Info summarizes an audio stream.
type Info struct {
	Format     string
	SampleRate int
	Channels   int
	Duration   time.Duration
}

// Inspect opens path with the decoder matching its extension.
func Inspect(path string) (Info, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return inspectWAV(path)
	case ".mp3":
		return inspectMP3(path)
	case ".ogg", ".oga":
		return inspectOgg(path)
	default:
		return Info{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

func inspectWAV(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Info{}, fmt.Errorf("%w: %s is not a RIFF/WAVE file", ErrInvalidFile, filepath.Base(path))
	}
	info := Info{
		Format:     FormatWAV,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}
	// Duration needs a readable fmt chunk; some encoders write headers the
	// parser cannot size, which is not fatal for inspection.
	if duration, err := dec.Duration(); err == nil {
		info.Duration = duration
	}
	return info, nil
}

func inspectMP3(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %w", ErrInvalidFile, filepath.Base(path), err)
	}
	info := Info{
		Format:     FormatMP3,
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}
	if length := dec.Length(); length > 0 && info.SampleRate > 0 {
		frames := length / mp3BytesPerFrame
		info.Duration = time.Duration(frames) * time.Second / time.Duration(info.SampleRate)
	}
	return info, nil
}

func inspectOgg(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %w", ErrInvalidFile, filepath.Base(path), err)
	}
	info := Info{
		Format:     FormatOgg,
		SampleRate: reader.SampleRate(),
		Channels:   reader.Channels(),
	}
	if length := reader.Length(); length > 0 && info.SampleRate > 0 {
		info.Duration = time.Duration(length) * time.Second / time.Duration(info.SampleRate)
	}
	return info, nil
}

// VerifyOgg confirms path holds a decodable Ogg Vorbis stream by reading its
// headers and the first block of audio.
func VerifyOgg(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFile, filepath.Base(path), err)
	}
	if reader.Channels() <= 0 || reader.SampleRate() <= 0 {
		return fmt.Errorf("%w: %s: missing stream parameters", ErrInvalidFile, filepath.Base(path))
	}
	buf := make([]float32, 1024*reader.Channels())
	if _, err := reader.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFile, filepath.Base(path), err)
	}
	return nil
}
