package config

import "oggify/internal/filterchain"

const (
	defaultWorkers        = 4
	defaultSpeed          = 1.0
	defaultCodec          = "libvorbis"
	defaultFFmpegBinary   = "ffmpeg"
	defaultTimeoutSeconds = 0
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigPath     = "~/.config/oggify/config.toml"
	projectConfigName     = "oggify.toml"
)

// Default returns a Config populated with repository defaults. Every canonical
// filter is present but disabled so the sample file documents the full set.
func Default() Config {
	filters := make(filterchain.Spec, len(filterchain.Order()))
	for _, name := range filterchain.Order() {
		filters[name] = filterchain.Setting{}
	}
	return Config{
		Conversion: Conversion{
			Workers:        defaultWorkers,
			Speed:          defaultSpeed,
			Codec:          defaultCodec,
			FFmpegBinary:   defaultFFmpegBinary,
			TimeoutSeconds: defaultTimeoutSeconds,
			VerifyOutput:   false,
			LockDirectory:  true,
		},
		Filters: filters,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
