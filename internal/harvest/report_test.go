// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-harvester/pkg/types"
)

func TestWriteAndReadReport(t *testing.T) {
	h := New(nil, nil, types.HarvestConfig{PageSize: 200, MaxResults: 10000, RequestDelay: time.Second})

	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	res := RunResult{
		Started:  started,
		Finished: started.Add(time.Minute),
		Domains: []DomainResult{
			{Domain: "Physics", Query: "cat:physics.*", Pages: 3, Records: 400, Stop: StopEmptyPage, Path: "data/arxiv_physics_metadata.csv"},
			{Domain: "Economics", Query: "cat:econ.*", Pages: 50, Skipped: 1, Records: 9800, Stop: StopCeiling, Path: "data/arxiv_economics_metadata.csv"},
		},
	}

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(path, h.NewReport("run-1", res)))

	got, err := ReadReport(path)
	require.NoError(t, err)

	assert.Equal(t, "run-1", got.RunID)
	assert.True(t, got.Started.Equal(started))
	assert.Equal(t, 10200, got.Total)
	assert.Equal(t, "1s", got.Config.RequestDelay)
	require.Len(t, got.Domains, 2)
	assert.Equal(t, StopCeiling, got.Domains[1].Stop)
	assert.Equal(t, 1, got.Domains[1].Skipped)
}

func TestReadReport_Missing(t *testing.T) {
	_, err := ReadReport(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
