package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagStrict = flag.Bool("strict", false, "Reject overlapping chunks and out-of-range indices")
	flagFormat = flag.String("format", "", "Output format: text or yaml")
	flagLimit  = flag.Int("n", -1, "Records shown per section (0 = all)")
	flagRaw    = flag.Bool("raw", false, "Do not decompress .bsm.zst input")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagStrict {
		cfg.Reader.Strict = true
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagLimit >= 0 {
		cfg.Output.Limit = *flagLimit
	}
	if *flagRaw {
		cfg.Reader.Decompress = false
	}
}
