package config

// Config holds offprint configuration.
// Loaded from ./config.yaml or ~/.offprint/config.yaml, with OFFPRINT_
// environment variable overrides.
type Config struct {
	Scan        ScanCfg        `mapstructure:"scan" yaml:"scan"`
	Interpolate InterpolateCfg `mapstructure:"interpolate" yaml:"interpolate"`
	Output      OutputCfg      `mapstructure:"output" yaml:"output"`
}

// ScanCfg bounds printed page number detection.
type ScanCfg struct {
	HeaderLines int `mapstructure:"header_lines" yaml:"header_lines"` // Leading lines of each page scanned for a number
	MaxNumber   int `mapstructure:"max_number" yaml:"max_number"`     // Largest printed number considered plausible
}

// InterpolateCfg bounds gap interpolation between detected numbers.
type InterpolateCfg struct {
	MaxGap    int `mapstructure:"max_gap" yaml:"max_gap"`     // Widest physical gap that will be filled
	Tolerance int `mapstructure:"tolerance" yaml:"tolerance"` // Allowed printed-vs-physical gap deviation
}

// OutputCfg controls output file handling.
type OutputCfg struct {
	Suffix string `mapstructure:"suffix" yaml:"suffix"` // Appended to the input stem for default output paths
}

// DefaultConfig returns configuration with sensible defaults. The heuristic
// bounds match the values the detection and interpolation passes were tuned
// with.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanCfg{
			HeaderLines: 5,
			MaxNumber:   9999,
		},
		Interpolate: InterpolateCfg{
			MaxGap:    10,
			Tolerance: 2,
		},
		Output: OutputCfg{
			Suffix: "_filtered",
		},
	}
}
