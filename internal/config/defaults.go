package config

const (
	defaultOutputDir             = "~/.local/share/journeylens/output"
	defaultLogDir                = "~/.local/share/journeylens/logs"
	defaultSamplingFPS           = 1.0
	defaultChangeThreshold       = 0.15
	defaultStuckThresholdSeconds = 10.0
	defaultProgressInterval      = 10
	defaultOCRBinary             = "tesseract"
	defaultOCRPageSegMode        = 6
	defaultOCRTimeoutSeconds     = 30
	defaultFFmpegBinary          = "ffmpeg"
	defaultFFprobeBinary         = "ffprobe"
	defaultDecodeTimeoutSeconds  = 600
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultHistoryDatabasePath   = "~/.local/share/journeylens/runs.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Analysis: Analysis{
			SamplingFPS:           defaultSamplingFPS,
			ChangeThreshold:       defaultChangeThreshold,
			StuckThresholdSeconds: defaultStuckThresholdSeconds,
			ProgressInterval:      defaultProgressInterval,
		},
		OCR: OCR{
			Binary:         defaultOCRBinary,
			PageSegMode:    defaultOCRPageSegMode,
			TimeoutSeconds: defaultOCRTimeoutSeconds,
		},
		Tools: Tools{
			FFmpeg:               defaultFFmpegBinary,
			FFprobe:              defaultFFprobeBinary,
			DecodeTimeoutSeconds: defaultDecodeTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled:      true,
			DatabasePath: defaultHistoryDatabasePath,
		},
	}
}
