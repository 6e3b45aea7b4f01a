package config

import "path/filepath"

// DefaultConfigPath is where Load looks when no --config flag is given.
const DefaultConfigPath = ".rasa-nlg.yml"

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() *Config {
	return &Config{
		Port:      9080,
		DataDir:   "data",
		AssetsDir: "dist",
	}
}

// DBPath returns the location of the SQLite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "nlg.db")
}
