package main

import (
	"github.com/BurntSushi/toml"

	highlight "go.gopad.dev/go-search-highlight"
)

// config holds the presentation defaults for hlite. Flags set on the command
// line take precedence over the config file.
type config struct {
	MaxFragments int    `toml:"max_fragments"`
	FragmentSize uint   `toml:"fragment_size"`
	Separator    string `toml:"separator"`
	PreTag       string `toml:"pre_tag"`
	PostTag      string `toml:"post_tag"`
	MatchColor   string `toml:"match_color"`
}

func defaultConfig() config {
	return config{
		MaxFragments: 3,
		FragmentSize: highlight.DefaultFragmentSize,
		Separator:    highlight.DefaultSeparator,
		PreTag:       "<b>",
		PostTag:      "</b>",
		MatchColor:   "205",
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
