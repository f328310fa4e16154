package types

import "time"

// HTTPConfig holds the HTTP settings for feed requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header identifying the harvester to arXiv.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`

	// Format is "console" for human-readable lines or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,oneof=console json"`
}

// HarvestConfig holds everything the fetch-paginate-export loop needs.
// It is built once at startup and passed explicitly into the harvester.
type HarvestConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the arXiv query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// DataDir is the directory that receives one CSV per domain.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir" validate:"required"`

	// FilePrefix is the provider prefix of output file names ("arxiv").
	FilePrefix string `json:"file_prefix" yaml:"file_prefix" mapstructure:"file_prefix" validate:"required"`

	// PageSize is the max_results value sent with each request.
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size" validate:"gte=1"`

	// MaxResults is the ceiling on the start offset per domain.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"gte=1"`

	// RequestDelay is the pause after each page that produced records.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay" mapstructure:"request_delay" validate:"gte=0"`

	// Domains is the ordered domain → query table.
	Domains []DomainQuery `json:"domains" yaml:"domains" mapstructure:"domains" validate:"required,min=1,dive"`

	Logging LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`
}
