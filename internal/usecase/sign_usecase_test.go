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

func TestSignUseCase_FindNearby(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	signs := []domain.ParkingSign{
		{SignID: "near", SignDescription: "NO PARKING 8AM-6PM", Latitude: 40.7590, Longitude: -73.9850, StreetName: "Broadway", Borough: "MANHATTAN"},
		{SignID: "far", SignDescription: "NO STANDING ANYTIME", Latitude: 40.7128, Longitude: -74.0060, StreetName: "Park Row", Borough: "MANHATTAN"},
	}

	t.Run("returns signs within radius sorted by distance", func(t *testing.T) {
		repo := &MockSignRepository{}
		repo.On("Snapshot").Return(signs)

		uc := usecase.NewSignUseCase(repo, logger, 100)
		resp, err := uc.FindNearby(ctx, dto.SignSearchRequest{Lat: 40.7589, Lon: -73.9851, Radius: floatPtr(200)})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Results.Count)
		assert.Equal(t, "near", resp.Results.Signs[0].SignID)
		assert.Greater(t, resp.Results.Signs[0].DistanceMeters, 0.0)
		assert.LessOrEqual(t, resp.Results.Signs[0].DistanceMeters, 200.0)

		// Эхо запроса
		assert.Equal(t, 40.7589, resp.Query.Latitude)
		require.NotNil(t, resp.Query.RadiusMeters)
		assert.Equal(t, 200.0, *resp.Query.RadiusMeters)
	})

	t.Run("applies default radius when not provided", func(t *testing.T) {
		repo := &MockSignRepository{}
		repo.On("Snapshot").Return(signs)

		uc := usecase.NewSignUseCase(repo, logger, 100)
		resp, err := uc.FindNearby(ctx, dto.SignSearchRequest{Lat: 40.7589, Lon: -73.9851})

		require.NoError(t, err)
		require.NotNil(t, resp.Query.RadiusMeters)
		assert.Equal(t, 100.0, *resp.Query.RadiusMeters)
	})

	t.Run("rejects coordinates outside NYC", func(t *testing.T) {
		repo := &MockSignRepository{}
		uc := usecase.NewSignUseCase(repo, logger, 100)

		_, err := uc.FindNearby(ctx, dto.SignSearchRequest{Lat: 34.0522, Lon: -118.2437})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeValidationError, appErr.Code)
		repo.AssertNotCalled(t, "Snapshot")
	})

	t.Run("rejects radius out of bounds", func(t *testing.T) {
		repo := &MockSignRepository{}
		uc := usecase.NewSignUseCase(repo, logger, 100)

		_, err := uc.FindNearby(ctx, dto.SignSearchRequest{Lat: 40.7589, Lon: -73.9851, Radius: floatPtr(5000)})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "radius", appErr.Details["field"])
	})

	t.Run("rejects explicit zero radius instead of defaulting", func(t *testing.T) {
		repo := &MockSignRepository{}
		uc := usecase.NewSignUseCase(repo, logger, 100)

		_, err := uc.FindNearby(ctx, dto.SignSearchRequest{Lat: 40.7589, Lon: -73.9851, Radius: floatPtr(0)})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeValidationError, appErr.Code)
		assert.Equal(t, "radius", appErr.Details["field"])
		repo.AssertNotCalled(t, "Snapshot")
	})

	t.Run("empty table yields empty result", func(t *testing.T) {
		repo := &MockSignRepository{}
		repo.On("Snapshot").Return([]domain.ParkingSign{})

		uc := usecase.NewSignUseCase(repo, logger, 100)
		resp, err := uc.FindNearby(ctx, dto.SignSearchRequest{Lat: 40.7589, Lon: -73.9851, Radius: floatPtr(100)})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Results.Count)
		assert.NotNil(t, resp.Results.Signs)
	})
}
