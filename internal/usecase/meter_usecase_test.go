package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/pkg/errors"
	"github.com/nyc-parking-api/internal/usecase"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

func TestMeterUseCase_FindNearest(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	meters := []domain.MeterZone{
		{MeterNumber: "M-FAR", OnStreet: "PARK ROW", MeterHours: "Mon-Sat 8am-7pm", Borough: "MANHATTAN", Status: "Active", Latitude: 40.7128, Longitude: -74.0060},
		{MeterNumber: "M-NEAR", OnStreet: "BROADWAY", MeterHours: "Mon-Sat 8am-10pm", Borough: "MANHATTAN", Status: "Active", Latitude: 40.7590, Longitude: -73.9850},
	}

	t.Run("returns nearest meter within window", func(t *testing.T) {
		repo := &MockMeterRepository{}
		repo.On("Snapshot").Return(meters)

		uc := usecase.NewMeterUseCase(repo, logger, 500)
		resp, err := uc.FindNearest(ctx, dto.MeterSearchRequest{Lat: 40.7589, Lon: -73.9851})

		require.NoError(t, err)
		require.NotNil(t, resp.Result)
		assert.Equal(t, "M-NEAR", resp.Result.MeterNumber)
		assert.Equal(t, "BROADWAY", resp.Result.OnStreet)
		assert.Less(t, resp.Result.DistanceMeters, 500.0)
		assert.Empty(t, resp.Message)
	})

	t.Run("null result with message when nothing in window", func(t *testing.T) {
		repo := &MockMeterRepository{}
		repo.On("Snapshot").Return([]domain.MeterZone{
			{MeterNumber: "M-FAR", Latitude: 40.4800, Longitude: -74.2500},
		})

		uc := usecase.NewMeterUseCase(repo, logger, 500)
		resp, err := uc.FindNearest(ctx, dto.MeterSearchRequest{Lat: 40.7589, Lon: -73.9851})

		require.NoError(t, err)
		assert.Nil(t, resp.Result)
		assert.Equal(t, "No meter zones found near this location", resp.Message)
	})

	t.Run("unbounded search when window disabled", func(t *testing.T) {
		repo := &MockMeterRepository{}
		repo.On("Snapshot").Return([]domain.MeterZone{
			{MeterNumber: "M-FAR", Latitude: 40.4800, Longitude: -74.2500},
		})

		uc := usecase.NewMeterUseCase(repo, logger, 0)
		resp, err := uc.FindNearest(ctx, dto.MeterSearchRequest{Lat: 40.7589, Lon: -73.9851})

		require.NoError(t, err)
		require.NotNil(t, resp.Result)
		assert.Equal(t, "M-FAR", resp.Result.MeterNumber)
	})

	t.Run("empty table is not an error", func(t *testing.T) {
		repo := &MockMeterRepository{}
		repo.On("Snapshot").Return([]domain.MeterZone{})

		uc := usecase.NewMeterUseCase(repo, logger, 0)
		resp, err := uc.FindNearest(ctx, dto.MeterSearchRequest{Lat: 40.7589, Lon: -73.9851})

		require.NoError(t, err)
		assert.Nil(t, resp.Result)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("rejects coordinates outside NYC", func(t *testing.T) {
		repo := &MockMeterRepository{}
		uc := usecase.NewMeterUseCase(repo, logger, 500)

		_, err := uc.FindNearest(ctx, dto.MeterSearchRequest{Lat: 51.5074, Lon: -0.1278})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeValidationError, appErr.Code)
		repo.AssertNotCalled(t, "Snapshot")
	})
}
