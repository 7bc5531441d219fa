// Package config holds the session-wide knobs cmd/lojban binds to flags via
// spf13/pflag rather than a hand-rolled flag parser.
package config

import "github.com/spf13/pflag"

// Config is the full set of knobs a lojban session reads at startup.
type Config struct {
	// DictionaryPath is a jbovlaste-style XML export loaded at startup
	// (internal/dictionary.Load). Empty means run with arity-2 defaults.
	DictionaryPath string

	// SaturationLimit caps the reasoning engine's forward-chaining fixpoint
	// loop at a bounded fallback of around 100 iterations.
	SaturationLimit int
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		SaturationLimit: 100,
	}
}

// BindFlags registers fs flags backing every Config field, for cmd/lojban's
// cobra.Command to wire into its flag set.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.DictionaryPath, "dictionary", c.DictionaryPath, "path to a jbovlaste-style XML dictionary export")
	fs.IntVar(&c.SaturationLimit, "saturation-limit", c.SaturationLimit, "bounded fixpoint iteration cap for the reasoning engine")
}
