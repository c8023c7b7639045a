// Package config handles bsmtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Reader  ReaderConfig  `yaml:"reader"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReaderConfig holds file loading and validation settings.
type ReaderConfig struct {
	MaxFileSizeMB int64   `yaml:"max_file_size_mb"` // 0 = unlimited
	Decompress    bool    `yaml:"decompress"`       // Unwrap .bsm.zst files
	Strict        bool    `yaml:"strict"`           // Reject overlapping chunks and bad indices
	TBNTolerance  float64 `yaml:"tbn_tolerance"`    // Max |dot(N, T)| before a frame is reported
}

// OutputConfig holds report formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
	Limit  int    `yaml:"limit"`  // Records shown per section by dump, 0 = all
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MaxFileSize returns the reader size limit in bytes.
func (r ReaderConfig) MaxFileSize() int64 {
	return r.MaxFileSizeMB << 20
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{
			MaxFileSizeMB: 256,
			Decompress:    true,
			Strict:        false,
			TBNTolerance:  0.01,
		},
		Output: OutputConfig{
			Format: "text",
			Limit:  16,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
