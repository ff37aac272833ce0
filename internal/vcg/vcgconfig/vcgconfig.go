// Package vcgconfig loads the small set of options vcgc's CLI reads from
// disk before it ever touches the compiler core: the core itself never
// reads configuration, only cmd/vcgc does.
package vcgconfig

import (
	mdwconfig "github.com/vcglab/vcgc/foundation/core/config"
)

// CompilerOptions are the CLI-facing knobs discovered from vcgc.toml or
// vcgc.yaml, with built-in defaults when neither file is present.
type CompilerOptions struct {
	// MaxSourceBytes caps how large a single .vcg file build/inspect will
	// read before refusing to compile it.
	MaxSourceBytes int
	// LogLevel is one of trace/debug/info/warn/error/fatal.
	LogLevel string
	// LogFormat is one of json/text/console.
	LogFormat string
	// ColorProfile selects the inspector's lipgloss color profile: "dark",
	// "light" or "none" (disables styling for piped/CI output).
	ColorProfile string
}

// DefaultCompilerOptions is used when no config file is discovered.
func DefaultCompilerOptions() CompilerOptions {
	return CompilerOptions{
		MaxSourceBytes: 1 << 20,
		LogLevel:       "info",
		LogFormat:      "text",
		ColorProfile:   "dark",
	}
}

// Load discovers vcgc.toml/vcgc.yaml in the current directory and
// ./config, falling back to defaults if neither is found. If explicitPath
// is non-empty, it is loaded directly instead of running discovery - this
// is how the CLI's --config flag takes effect.
func Load(explicitPath string) (CompilerOptions, error) {
	opts := DefaultCompilerOptions()

	var cfg *mdwconfig.Config
	if explicitPath != "" {
		loaded, err := mdwconfig.Load(explicitPath)
		if err != nil {
			return opts, err
		}
		cfg = loaded
	} else {
		discovered, err := mdwconfig.Discover(mdwconfig.DiscoveryOptions{
			Paths:      []string{".", "./config"},
			Filenames:  []string{"vcgc"},
			Extensions: []string{".toml", ".yaml", ".yml"},
			Required:   false,
		})
		if err != nil {
			return opts, err
		}
		cfg = discovered
	}

	opts.MaxSourceBytes = cfg.GetInt("max_source_bytes", opts.MaxSourceBytes)
	opts.LogLevel = cfg.GetString("log_level", opts.LogLevel)
	opts.LogFormat = cfg.GetString("log_format", opts.LogFormat)
	opts.ColorProfile = cfg.GetString("color_profile", opts.ColorProfile)
	return opts, nil
}
