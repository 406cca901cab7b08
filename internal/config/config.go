// Package config provides tool-level configuration loading and resolution.
//
// This is configuration for the repkg tool itself (converter path, logging
// preferences), not the repository marker files. Those live in internal/repo.
package config

// Config is the repkg tool configuration, loaded from the config file and
// REPKG_* environment variables.
type Config struct {
	// Pandoc is the path to the pandoc executable used for Markdown
	// conversion. Empty means "pandoc" on PATH.
	Pandoc string `mapstructure:"pandoc"`

	// Log holds logging preferences.
	Log LogSettings `mapstructure:"log"`
}

// LogSettings holds logging preferences.
type LogSettings struct {
	// Timestamps toggles timestamps on log lines. Nil means default.
	Timestamps *bool `mapstructure:"timestamps"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Pandoc == "" {
		out.Pandoc = "pandoc"
	}
	return &out
}
