// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed fetches one page of the arXiv Atom query API and turns it
// into paper records.
//
// Every page resolves to exactly one of three outcomes: records, malformed
// (the body did not parse as an Atom feed), or empty (the feed parsed but
// had no entries). Transport problems are not an outcome; they come back
// as a *TransportError.
package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mmcdole/gofeed/atom"

	"github.com/pdiddy/paper-harvester/internal/httputil"
	"github.com/pdiddy/paper-harvester/pkg/types"
)

// DefaultBaseURL is the arXiv query endpoint.
const DefaultBaseURL = "https://export.arxiv.org/api/query"

// Source is the provider name stamped on every record.
const Source = "arXiv"

// PageKind classifies the outcome of a page fetch.
type PageKind int

const (
	// PageRecords means the page held one or more entries.
	PageRecords PageKind = iota
	// PageMalformed means the body could not be parsed as a feed.
	PageMalformed
	// PageEmpty means the feed parsed but had no entries.
	PageEmpty
)

func (k PageKind) String() string {
	switch k {
	case PageRecords:
		return "records"
	case PageMalformed:
		return "malformed"
	case PageEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// PageResult is the outcome of one page fetch. Records is set only for
// PageRecords; ParseErr only for PageMalformed.
type PageResult struct {
	Kind     PageKind
	Records  []types.PaperRecord
	ParseErr error
}

// PageRequest identifies one page of one domain's query.
type PageRequest struct {
	Domain string
	Query  string
	Start  int
	Size   int
}

// TransportError reports a failure to obtain a response body: connection
// errors, timeouts, and non-200 HTTP statuses.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client fetches pages from the arXiv API.
type Client struct {
	HTTP      httputil.Client
	BaseURL   string
	UserAgent string
}

// NewClient returns a Client for baseURL. An empty baseURL selects
// DefaultBaseURL.
func NewClient(hc httputil.Client, baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{HTTP: hc, BaseURL: baseURL, UserAgent: userAgent}
}

// FetchPage requests one page and classifies it.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (PageResult, error) {
	u := PageURL(c.BaseURL, req.Query, req.Start, req.Size)

	headers := map[string]string{}
	if c.UserAgent != "" {
		headers["User-Agent"] = c.UserAgent
	}

	resp, err := c.HTTP.Get(ctx, u, headers)
	if err != nil {
		return PageResult{}, &TransportError{URL: u, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return PageResult{}, &TransportError{URL: u, StatusCode: resp.StatusCode()}
	}

	return ParsePage(resp.Body(), req.Domain), nil
}

// PageURL builds the request URL for one page. The query is escaped the way
// form values are, so "cat:math.*" becomes "cat%3Amath.%2A".
func PageURL(baseURL, query string, start, size int) string {
	return baseURL +
		"?search_query=" + url.QueryEscape(query) +
		"&start=" + strconv.Itoa(start) +
		"&max_results=" + strconv.Itoa(size)
}

// ParsePage parses an Atom document and converts its entries for domain.
// The body must be well-formed XML first: the Atom parser is lenient and
// would otherwise accept unclosed tags or undefined entities.
func ParsePage(body []byte, domain string) PageResult {
	if err := wellFormed(body); err != nil {
		return PageResult{Kind: PageMalformed, ParseErr: err}
	}
	fp := &atom.Parser{}
	f, err := fp.Parse(bytes.NewReader(body))
	if err != nil {
		return PageResult{Kind: PageMalformed, ParseErr: err}
	}
	if len(f.Entries) == 0 {
		return PageResult{Kind: PageEmpty}
	}

	records := make([]types.PaperRecord, 0, len(f.Entries))
	for _, e := range f.Entries {
		if e == nil {
			continue
		}
		records = append(records, ToRecord(e, domain))
	}
	return PageResult{Kind: PageRecords, Records: records}
}

var errNoRoot = errors.New("xml: no root element")

// wellFormed walks every token with a strict decoder.
func wellFormed(body []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(body))
	root := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if !root {
				return errNoRoot
			}
			return nil
		}
		if err != nil {
			return err
		}
		if _, ok := tok.(xml.StartElement); ok {
			root = true
		}
	}
}
