// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes a domain's paper records to a CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-harvester/pkg/types"
)

// Header is the column order of every exported file.
var Header = []string{"year", "authors", "abstract", "title", "source", "domain", "url"}

// CSVExporter writes one file per domain under Dir.
type CSVExporter struct {
	Dir    string
	Prefix string
}

// NewCSVExporter returns an exporter writing {dir}/{prefix}_{domain}_metadata.csv.
func NewCSVExporter(dir, prefix string) *CSVExporter {
	return &CSVExporter{Dir: dir, Prefix: prefix}
}

// Path returns the output path for domain. The domain label is lowercased.
func (e *CSVExporter) Path(domain string) string {
	name := fmt.Sprintf("%s_%s_metadata.csv", e.Prefix, strings.ToLower(domain))
	return filepath.Join(e.Dir, name)
}

// Export writes records to the domain's file, replacing any existing file,
// and returns the path written. The data is written to a temporary file in
// the same directory and renamed into place.
func (e *CSVExporter) Export(domain string, records []types.PaperRecord) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	path := e.Path(domain)
	tmp, err := os.CreateTemp(e.Dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := WriteCSV(tmp, records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming to %s: %w", path, err)
	}
	return path, nil
}

// WriteCSV writes the header and one row per record to w.
func WriteCSV(w io.Writer, records []types.PaperRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV.
func ReadCSV(r io.Reader) ([]types.PaperRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parsing CSV: missing header")
	}
	for i, col := range Header {
		if rows[0][i] != col {
			return nil, fmt.Errorf("parsing CSV: column %d is %q, want %q", i, rows[0][i], col)
		}
	}

	records := make([]types.PaperRecord, 0, len(rows)-1)
	for _, f := range rows[1:] {
		records = append(records, types.PaperRecord{
			Year:     f[0],
			Authors:  f[1],
			Abstract: f[2],
			Title:    f[3],
			Source:   f[4],
			Domain:   f[5],
			URL:      f[6],
		})
	}
	return records, nil
}

func row(r types.PaperRecord) []string {
	return []string{r.Year, r.Authors, r.Abstract, r.Title, r.Source, r.Domain, r.URL}
}
