package domain

// Config is the resolved tool configuration.
type Config struct {
	// Backend selects and configures the package index.
	Backend BackendConfig
	// Excludes are reported in dumps after the package manager's own excludes.
	Excludes []string
	// FilterTypes is the default set of actions a restore may carry out.
	FilterTypes FilterTypes
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Kind:      BackendRPM,
			RPMBinary: "rpm",
			DNFBinary: "dnf",
		},
		FilterTypes: AllFilterTypes,
	}
}
