package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyc-parking-api/internal/domain"
)

func TestBuildTrendsQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, args := buildTrendsQuery("", 0)

		assert.Empty(t, args)
		assert.Contains(t, query, "GROUP BY violation_description")
		assert.Contains(t, query, "LIMIT 10")
		assert.NotContains(t, query, "UPPER(borough)")
		assert.NotContains(t, query, "substring(issue_date")
	})

	t.Run("borough filter", func(t *testing.T) {
		query, args := buildTrendsQuery("BROOKLYN", 0)

		require.Len(t, args, 1)
		assert.Equal(t, "BROOKLYN", args[0])
		assert.Contains(t, query, "UPPER(borough) = UPPER($1)")
	})

	t.Run("year filter", func(t *testing.T) {
		query, args := buildTrendsQuery("", 2023)

		require.Len(t, args, 1)
		assert.Equal(t, "2023", args[0])
		assert.Contains(t, query, "substring(issue_date, 1, 4) = $1")
	})

	t.Run("both filters keep positional order", func(t *testing.T) {
		query, args := buildTrendsQuery("QUEENS", 2022)

		require.Len(t, args, 2)
		assert.Equal(t, "QUEENS", args[0])
		assert.Equal(t, "2022", args[1])
		assert.Contains(t, query, "UPPER($1)")
		assert.Contains(t, query, "= $2")
	})
}

func TestBuildNearbyQuery(t *testing.T) {
	base := domain.ViolationQuery{
		Lat:          40.7589,
		Lon:          -73.9851,
		RadiusMeters: 1000,
		Limit:        100,
	}

	t.Run("without date filters", func(t *testing.T) {
		query, args := buildNearbyQuery(base)

		require.Len(t, args, 4)
		assert.Equal(t, 40.7589, args[0])
		assert.Equal(t, -73.9851, args[1])
		assert.Equal(t, 1000.0, args[2])
		assert.Equal(t, 100, args[3])

		assert.Contains(t, query, "6371000 * acos(LEAST(1.0,")
		assert.Contains(t, query, "latitude IS NOT NULL")
		assert.Contains(t, query, "distance_meters <= $3")
		assert.Contains(t, query, "ORDER BY distance_meters ASC")
		assert.Contains(t, query, "LIMIT $4")
	})

	t.Run("with date filters", func(t *testing.T) {
		q := base
		q.StartDate = "2023-01-01"
		q.EndDate = "2023-12-31"

		query, args := buildNearbyQuery(q)

		require.Len(t, args, 6)
		assert.Equal(t, "2023-01-01", args[2])
		assert.Equal(t, "2023-12-31", args[3])
		assert.Equal(t, 1000.0, args[4])
		assert.Equal(t, 100, args[5])

		assert.Contains(t, query, "issue_date >= $3")
		assert.Contains(t, query, "issue_date <= $4")
		assert.Contains(t, query, "distance_meters <= $5")
		assert.Contains(t, query, "LIMIT $6")
	})

	t.Run("start date only", func(t *testing.T) {
		q := base
		q.StartDate = "2024-06-01"

		query, args := buildNearbyQuery(q)

		require.Len(t, args, 5)
		assert.Contains(t, query, "issue_date >= $3")
		assert.NotContains(t, query, "issue_date <=")
	})
}

func TestRoundFine(t *testing.T) {
	assert.Equal(t, 65.0, roundFine(65.0))
	assert.Equal(t, 65.33, roundFine(65.3333333))
	assert.Equal(t, 115.68, roundFine(115.678))
	assert.Equal(t, 0.0, roundFine(0))
}
