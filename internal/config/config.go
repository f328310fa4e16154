// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles the harvest configuration. The compiled-in
// defaults reproduce the original fixed table of eight arXiv domains; a
// config file or PAPER_HARVESTER_* environment variables may override any key.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-harvester/internal/feed"
	"github.com/pdiddy/paper-harvester/pkg/types"
)

const (
	DefaultPageSize   = 200
	DefaultMaxResults = 10000
	DefaultDelay      = 1 * time.Second
	DefaultTimeout    = 60 * time.Second
	DefaultDataDir    = "data"
	DefaultFilePrefix = "arxiv"
	DefaultUserAgent  = "ResearchPaperSearch/1.0 (mailto:example@example.com)"
)

// DefaultDomains returns the built-in domain table in harvest order.
func DefaultDomains() []types.DomainQuery {
	return []types.DomainQuery{
		{Domain: "ComputerScience", Query: "cat:cs.*"},
		{Domain: "Physics", Query: "cat:physics.*"},
		{Domain: "Mathematics", Query: "cat:math.*"},
		{Domain: "Statistics", Query: "cat:stat.*"},
		{Domain: "QuantitativeBiology", Query: "cat:q-bio.*"},
		{Domain: "QuantitativeFinance", Query: "cat:q-fin.*"},
		{Domain: "Economics", Query: "cat:econ.*"},
		{Domain: "ElectricalEngineering", Query: "cat:eess.*"},
	}
}

// Defaults returns the compiled-in configuration.
func Defaults() types.HarvestConfig {
	return types.HarvestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		BaseURL:      feed.DefaultBaseURL,
		DataDir:      DefaultDataDir,
		FilePrefix:   DefaultFilePrefix,
		PageSize:     DefaultPageSize,
		MaxResults:   DefaultMaxResults,
		RequestDelay: DefaultDelay,
		Domains:      DefaultDomains(),
		Logging: types.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// SetDefaults registers the scalar defaults on v so that environment
// variables are picked up by Unmarshal. The domain table is not registered;
// it keeps its compiled-in value unless the config file sets "domains".
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("file_prefix", d.FilePrefix)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("max_results", d.MaxResults)
	v.SetDefault("request_delay", d.RequestDelay)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Load unmarshals v over the defaults and validates the result.
func Load(v *viper.Viper) (types.HarvestConfig, error) {
	cfg := Defaults()
	SetDefaults(v)
	if v.IsSet("domains") {
		cfg.Domains = nil
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return types.HarvestConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return types.HarvestConfig{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects configurations the harvest loop cannot run with.
func Validate(cfg types.HarvestConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	// Output paths lowercase the label, so labels must differ beyond case.
	seen := make(map[string]bool, len(cfg.Domains))
	for _, d := range cfg.Domains {
		key := strings.ToLower(d.Domain)
		if seen[key] {
			return fmt.Errorf("invalid config: domain %q listed twice", d.Domain)
		}
		seen[key] = true
	}
	return nil
}
