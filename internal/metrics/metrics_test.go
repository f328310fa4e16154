// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.ObservePage("Physics", "records")
	m.ObservePage("Physics", "records")
	m.ObservePage("Physics", "malformed")
	m.AddRecords("Physics", 5)
	m.AddRecords("Physics", 0)
	m.ObserveExport("Physics")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Pages.WithLabelValues("Physics", "records")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Pages.WithLabelValues("Physics", "malformed")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Records.WithLabelValues("Physics")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Exports.WithLabelValues("Physics")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObservePage("x", "empty")
	m.AddRecords("x", 3)
	m.ObserveExport("x")
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.AddRecords("Mathematics", 2)

	path := filepath.Join(t.TempDir(), "harvest.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `paper_harvester_records_total{domain="Mathematics"} 2`)
}
