package services

import (
	"testing"

	"geigermon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSamplesEmpty(t *testing.T) {
	db := newTestDB(t)
	query := NewQueryService(db)

	samples, err := query.AllSamples()
	require.NoError(t, err)
	// Encodes as [] rather than null.
	assert.NotNil(t, samples)
	assert.Empty(t, samples)

	statuses, err := query.AllStatus()
	require.NoError(t, err)
	assert.NotNil(t, statuses)
	assert.Empty(t, statuses)
}

func TestSamplesByHourFiltersAndPreservesOrder(t *testing.T) {
	db := newTestDB(t)
	ingest := newTestIngestService(t, db)
	query := NewQueryService(db)

	hours := []int{12, 7, 12, 23, 12}
	for i, hour := range hours {
		req := validRequest()
		req.Data.Hour = intPtr(hour)
		req.Data.Ticks = intPtr(i)
		_, err := ingest.Ingest(req)
		require.NoError(t, err)
	}

	all, err := query.AllSamples()
	require.NoError(t, err)
	require.Len(t, all, 5)

	noon, err := query.SamplesByHour(12)
	require.NoError(t, err)
	require.Len(t, noon, 3)

	// The filtered result is a subset of the full history in the same
	// relative order.
	var expected []models.SampleRecord
	for _, s := range all {
		if s.Hour == 12 {
			expected = append(expected, s)
		}
	}
	assert.Equal(t, expected, noon)
	assert.Equal(t, []int{0, 2, 4}, []int{noon[0].Tick, noon[1].Tick, noon[2].Tick})
}

func TestSamplesByHourNoMatches(t *testing.T) {
	db := newTestDB(t)
	ingest := newTestIngestService(t, db)
	query := NewQueryService(db)

	_, err := ingest.Ingest(validRequest())
	require.NoError(t, err)

	samples, err := query.SamplesByHour(3)
	require.NoError(t, err)
	assert.NotNil(t, samples)
	assert.Empty(t, samples)
}
