package config

import "time"

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Project: Project{
			RootMarker:  "package.json",
			ConfigNames: []string{"pleasure.config.yml", "pleasure.config.yaml", "pleasure.config.json"},
			EnvPrefix:   "PLEASURE",
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Markdown: Markdown{
			Format:    "md",
			Exclude:   []string{"node_modules"},
			LibPath:   "_lib",
			AssetDest: "./",
		},
		Watch: Watch{
			Debounce: 200 * time.Millisecond,
		},
	}
}
