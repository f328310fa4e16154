// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest runs the fetch-paginate-export loop: for each configured
// domain it requests pages in ascending offset order, accumulates the
// parsed records, and writes them to one file once the domain is done.
//
// Domains and pages are processed strictly one at a time. A malformed page
// is logged and skipped; an empty page ends the domain. Transport and
// export errors are not recovered: they stop the run and are returned.
package harvest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-harvester/internal/feed"
	"github.com/pdiddy/paper-harvester/internal/metrics"
	"github.com/pdiddy/paper-harvester/pkg/types"
)

// PageFetcher fetches and classifies one page.
type PageFetcher interface {
	FetchPage(ctx context.Context, req feed.PageRequest) (feed.PageResult, error)
}

// Exporter persists one domain's records and returns where they went.
type Exporter interface {
	Export(domain string, records []types.PaperRecord) (string, error)
}

// StopReason records why pagination for a domain ended.
type StopReason string

const (
	StopEmptyPage StopReason = "empty_page"
	StopCeiling   StopReason = "ceiling"
)

// DomainResult summarises one domain's harvest.
type DomainResult struct {
	Domain  string     `yaml:"domain"`
	Query   string     `yaml:"query"`
	Pages   int        `yaml:"pages_requested"`
	Skipped int        `yaml:"pages_skipped"`
	Records int        `yaml:"records"`
	Stop    StopReason `yaml:"stop_reason"`
	Path    string     `yaml:"path"`
}

// RunResult summarises a full run.
type RunResult struct {
	Started  time.Time
	Finished time.Time
	Domains  []DomainResult
}

// TotalRecords returns the number of records exported across all domains.
func (r RunResult) TotalRecords() int {
	n := 0
	for _, d := range r.Domains {
		n += d.Records
	}
	return n
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Harvester holds the configuration and collaborators for a run.
type Harvester struct {
	fetcher  PageFetcher
	exporter Exporter
	cfg      types.HarvestConfig
	log      zerolog.Logger
	metrics  *metrics.Metrics
	sleep    SleepFunc
	now      func() time.Time
}

// Option customises a Harvester.
type Option func(*Harvester)

// WithLogger sets the progress logger. The default discards output.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Harvester) { h.log = l }
}

// WithMetrics attaches run counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Harvester) { h.metrics = m }
}

// WithSleep replaces the inter-request pause, mainly for tests.
func WithSleep(fn SleepFunc) Option {
	return func(h *Harvester) { h.sleep = fn }
}

// New returns a Harvester. cfg is expected to have been validated.
func New(fetcher PageFetcher, exporter Exporter, cfg types.HarvestConfig, opts ...Option) *Harvester {
	h := &Harvester{
		fetcher:  fetcher,
		exporter: exporter,
		cfg:      cfg,
		log:      zerolog.Nop(),
		sleep:    sleepCtx,
		now:      time.Now,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Run harvests every domain in order. The first transport or export error
// aborts the run; the result then covers only the domains that finished.
func (h *Harvester) Run(ctx context.Context, domains []types.DomainQuery) (RunResult, error) {
	res := RunResult{Started: h.now()}
	for _, dq := range domains {
		dr, err := h.HarvestDomain(ctx, dq)
		if err != nil {
			res.Finished = h.now()
			return res, fmt.Errorf("domain %s: %w", dq.Domain, err)
		}
		res.Domains = append(res.Domains, dr)
	}
	res.Finished = h.now()
	h.log.Info().
		Int("domains", len(res.Domains)).
		Int("records", res.TotalRecords()).
		Dur("elapsed", res.Finished.Sub(res.Started)).
		Msg("all domains completed")
	return res, nil
}

// HarvestDomain collects all pages for dq and exports them.
func (h *Harvester) HarvestDomain(ctx context.Context, dq types.DomainQuery) (DomainResult, error) {
	records, dr, err := h.Collect(ctx, dq)
	if err != nil {
		return dr, err
	}

	path, err := h.exporter.Export(dq.Domain, records)
	if err != nil {
		return dr, fmt.Errorf("exporting: %w", err)
	}
	h.metrics.ObserveExport(dq.Domain)
	dr.Path = path

	h.log.Info().
		Str("domain", dq.Domain).
		Str("path", path).
		Int("records", len(records)).
		Msg("saved domain papers")
	return dr, nil
}

// Collect runs the pagination loop for one domain and returns the records
// in page order.
func (h *Harvester) Collect(ctx context.Context, dq types.DomainQuery) ([]types.PaperRecord, DomainResult, error) {
	dr := DomainResult{Domain: dq.Domain, Query: dq.Query, Stop: StopCeiling}
	size := h.cfg.PageSize

	h.log.Info().Str("domain", dq.Domain).Str("query", dq.Query).Msg("fetching domain")

	var records []types.PaperRecord
	for start := 0; start < h.cfg.MaxResults; start += size {
		if err := ctx.Err(); err != nil {
			return nil, dr, err
		}

		dr.Pages++
		page, err := h.fetcher.FetchPage(ctx, feed.PageRequest{
			Domain: dq.Domain,
			Query:  dq.Query,
			Start:  start,
			Size:   size,
		})
		if err != nil {
			return nil, dr, err
		}
		h.metrics.ObservePage(dq.Domain, page.Kind.String())

		switch page.Kind {
		case feed.PageMalformed:
			dr.Skipped++
			h.log.Warn().
				Str("domain", dq.Domain).
				Int("start", start).
				Int("end", start+size).
				Err(page.ParseErr).
				Msg("skipped batch")
			continue

		case feed.PageEmpty:
			dr.Stop = StopEmptyPage
			h.log.Info().
				Str("domain", dq.Domain).
				Int("start", start).
				Msg("no more results")
			dr.Records = len(records)
			return records, dr, nil
		}

		records = append(records, page.Records...)
		h.metrics.AddRecords(dq.Domain, len(page.Records))
		h.log.Info().
			Str("domain", dq.Domain).
			Int("collected", len(records)).
			Msg("collected papers so far")

		if err := h.sleep(ctx, h.cfg.RequestDelay); err != nil {
			return nil, dr, err
		}
	}

	dr.Records = len(records)
	return records, dr, nil
}

// SelectDomains returns the entries of all whose labels appear in names,
// in the order of all. Matching ignores case. An empty names selects
// everything; an unknown name is an error.
func SelectDomains(all []types.DomainQuery, names []string) ([]types.DomainQuery, error) {
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.ToLower(n)] = true
	}

	var out []types.DomainQuery
	for _, dq := range all {
		key := strings.ToLower(dq.Domain)
		if want[key] {
			out = append(out, dq)
			delete(want, key)
		}
	}
	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for _, n := range names {
			if want[strings.ToLower(n)] {
				missing = append(missing, n)
			}
		}
		return nil, fmt.Errorf("unknown domain(s): %s", strings.Join(missing, ", "))
	}
	return out, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
