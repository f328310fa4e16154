// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk summary of a harvest run.
type Report struct {
	RunID    string         `yaml:"run_id"`
	Started  time.Time      `yaml:"started"`
	Finished time.Time      `yaml:"finished"`
	Config   ReportConfig   `yaml:"config"`
	Domains  []DomainResult `yaml:"domains"`
	Total    int            `yaml:"total_records"`
}

// ReportConfig stores the pagination settings that produced the run.
type ReportConfig struct {
	PageSize     int    `yaml:"page_size"`
	MaxResults   int    `yaml:"max_results"`
	RequestDelay string `yaml:"request_delay"`
}

// NewReport builds a Report from a finished run.
func (h *Harvester) NewReport(runID string, res RunResult) Report {
	return Report{
		RunID:    runID,
		Started:  res.Started,
		Finished: res.Finished,
		Config: ReportConfig{
			PageSize:     h.cfg.PageSize,
			MaxResults:   h.cfg.MaxResults,
			RequestDelay: h.cfg.RequestDelay.String(),
		},
		Domains: res.Domains,
		Total:   res.TotalRecords(),
	}
}

// WriteReport saves r as YAML at path, replacing any previous report.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
