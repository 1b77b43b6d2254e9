// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk configuration for the boolprep CLI, loaded
// from an optional TOML file (SPEC_FULL.md §6, CLI driver). The only
// setting that also has a flag is collect_stats: statistics are collected
// if either --stats or collect_stats is set.
type fileConfig struct {
	LogLevel              string `toml:"log_level"`
	MaxDepth              int    `toml:"max_depth"`
	CollectStats          bool   `toml:"collect_stats"`
	NonCommonCoalescence  bool   `toml:"non_common_coalescence"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{LogLevel: "info", MaxDepth: 4096}
}

func loadFileConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
