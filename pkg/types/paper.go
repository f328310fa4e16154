// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper harvester:
// the exported paper record, the domain-to-query table entry, and the
// harvest configuration.
package types

// PaperRecord is one paper extracted from a feed page. Records are built
// once during page parsing and never modified afterwards.
type PaperRecord struct {
	// Year is the first four characters of the published timestamp, or empty.
	Year string `json:"year" yaml:"year"`

	// Authors is the author names joined with ", ".
	Authors string `json:"authors" yaml:"authors"`

	// Abstract is the entry summary with line breaks folded to spaces.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Title is the entry title with line breaks folded to spaces.
	Title string `json:"title" yaml:"title"`

	// Source names the feed provider (always "arXiv").
	Source string `json:"source" yaml:"source"`

	// Domain is the configured domain label the record was fetched for.
	Domain string `json:"domain" yaml:"domain"`

	// URL is the first link of the entry, or empty.
	URL string `json:"url" yaml:"url"`
}

// DomainQuery pairs a domain label with the arXiv search_query expression
// that selects its papers (e.g. "Mathematics" → "cat:math.*").
type DomainQuery struct {
	Domain string `json:"domain" yaml:"domain" mapstructure:"domain" validate:"required"`
	Query  string `json:"query" yaml:"query" mapstructure:"query" validate:"required"`
}
