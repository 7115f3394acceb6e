package resolver

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/odvcencio/mergecraft/pkg/search"
	"github.com/odvcencio/mergecraft/pkg/types"
)

// SearchConfig mirrors search.Config in a TOML-friendly shape.
type SearchConfig struct {
	MaxGenerations int `toml:"max_generations"`
	PopulationSize int `toml:"population_size"`
	MaxCandidates  int `toml:"max_candidates"`
}

func (c SearchConfig) toSearchConfig() search.Config {
	if c.MaxGenerations == 0 && c.PopulationSize == 0 && c.MaxCandidates == 0 {
		return search.DefaultConfig()
	}
	return search.Config{MaxGenerations: c.MaxGenerations, PopulationSize: c.PopulationSize, MaxCandidates: c.MaxCandidates}
}

// Config controls how Resolver escalates through its tiers and how far
// each tier is allowed to search before giving up and handing the
// conflict to the next one.
type Config struct {
	// AutoAcceptThreshold is the minimum confidence a tier's candidate must
	// carry to be accepted without falling through to the next tier.
	AutoAcceptThreshold types.Confidence `toml:"-"`
	AutoAcceptThresholdName string `toml:"auto_accept_threshold"`

	// Language selects the grammar used for the structural-merge tier.
	// Unknown language (the zero value, or an unrecognized name) skips
	// straight to the version-space tier.
	Language     types.Language `toml:"-"`
	LanguageName string         `toml:"language"`

	MaxVSACandidates int          `toml:"max_vsa_candidates"`
	Search           SearchConfig `toml:"search"`
}

// DefaultConfig matches the values used when no config file is supplied.
func DefaultConfig() Config {
	return Config{
		AutoAcceptThreshold: types.Medium,
		Language:            types.LangUnknown,
		MaxVSACandidates:    500,
		Search:              SearchConfig{MaxGenerations: 8, PopulationSize: 20, MaxCandidates: 5},
	}
}

// LoadConfig reads a TOML resolver configuration from path and resolves
// its string fields (confidence name, language name) into typed values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("resolver: load config %s: %w", path, err)
	}
	if cfg.AutoAcceptThresholdName != "" {
		c, err := confidenceFromName(cfg.AutoAcceptThresholdName)
		if err != nil {
			return Config{}, fmt.Errorf("resolver: %w", err)
		}
		cfg.AutoAcceptThreshold = c
	}
	if cfg.LanguageName != "" {
		cfg.Language = types.LanguageFromName(cfg.LanguageName)
	}
	if cfg.MaxVSACandidates == 0 {
		cfg.MaxVSACandidates = 500
	}
	if cfg.Search.MaxGenerations == 0 && cfg.Search.PopulationSize == 0 && cfg.Search.MaxCandidates == 0 {
		cfg.Search = SearchConfig{MaxGenerations: 8, PopulationSize: 20, MaxCandidates: 5}
	}
	return cfg, nil
}

func confidenceFromName(name string) (types.Confidence, error) {
	switch name {
	case "low", "Low":
		return types.Low, nil
	case "medium", "Medium":
		return types.Medium, nil
	case "high", "High":
		return types.High, nil
	default:
		return types.Low, fmt.Errorf("unknown confidence %q", name)
	}
}
