package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/usecase"
)

func TestStatusUseCase_GetDataStatus(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	now := time.Now()

	newStatusUC := func(sr *MockSignRepository, mr *MockMeterRepository, vr *MockViolationRepository, cr *MockCacheRepository) *usecase.StatusUseCase {
		return usecase.NewStatusUseCase(sr, mr, vr, cr, logger, time.Minute)
	}

	t.Run("aggregates all sources and caches the result", func(t *testing.T) {
		sr := &MockSignRepository{}
		mr := &MockMeterRepository{}
		vr := &MockViolationRepository{}
		cr := &MockCacheRepository{}

		cr.On("GetStatus", ctx).Return(nil, nil)
		sr.On("Count").Return(1500)
		sr.On("UpdatedAt").Return(now)
		mr.On("Count").Return(300)
		mr.On("UpdatedAt").Return(now)
		vr.On("Count", ctx).Return(42000, nil)
		vr.On("DateRange", ctx).Return(&domain.DateRange{Start: "2021-03-01", End: "2024-08-15"}, nil)
		cr.On("SetStatus", ctx, mock.Anything, time.Minute).Return(nil)

		uc := newStatusUC(sr, mr, vr, cr)
		status := uc.GetDataStatus(ctx)

		assert.Equal(t, 1500, status.ParkingSigns.TotalCount)
		assert.Equal(t, 300, status.MeterRates.TotalCount)
		assert.Equal(t, domain.Boroughs, status.ParkingSigns.CoverageAreas)
		assert.Equal(t, 42000, status.Violations.TotalCount)
		assert.Equal(t, "2021-03-01", status.Violations.DateRange.Start)
		assert.Equal(t, "2024-08-15", status.Violations.DateRange.End)
		cr.AssertCalled(t, "SetStatus", ctx, mock.Anything, time.Minute)
	})

	t.Run("cache hit skips the sources", func(t *testing.T) {
		sr := &MockSignRepository{}
		mr := &MockMeterRepository{}
		vr := &MockViolationRepository{}
		cr := &MockCacheRepository{}

		cached := &domain.DataStatus{
			ParkingSigns: domain.SourceStatus{TotalCount: 777},
		}
		cr.On("GetStatus", ctx).Return(cached, nil)

		uc := newStatusUC(sr, mr, vr, cr)
		status := uc.GetDataStatus(ctx)

		assert.Equal(t, 777, status.ParkingSigns.TotalCount)
		sr.AssertNotCalled(t, "Count")
		vr.AssertNotCalled(t, "Count")
		cr.AssertNotCalled(t, "SetStatus")
	})

	t.Run("cache failures are not fatal", func(t *testing.T) {
		sr := &MockSignRepository{}
		mr := &MockMeterRepository{}
		vr := &MockViolationRepository{}
		cr := &MockCacheRepository{}

		cr.On("GetStatus", ctx).Return(nil, stderrors.New("redis down"))
		sr.On("Count").Return(10)
		sr.On("UpdatedAt").Return(now)
		mr.On("Count").Return(5)
		mr.On("UpdatedAt").Return(now)
		vr.On("Count", ctx).Return(100, nil)
		vr.On("DateRange", ctx).Return(&domain.DateRange{Start: "2023-01-01", End: "2023-12-31"}, nil)
		cr.On("SetStatus", ctx, mock.Anything, time.Minute).Return(stderrors.New("redis down"))

		uc := newStatusUC(sr, mr, vr, cr)
		status := uc.GetDataStatus(ctx)

		assert.Equal(t, 10, status.ParkingSigns.TotalCount)
		assert.Equal(t, 100, status.Violations.TotalCount)
	})

	t.Run("empty violations table gets default date range", func(t *testing.T) {
		sr := &MockSignRepository{}
		mr := &MockMeterRepository{}
		vr := &MockViolationRepository{}
		cr := &MockCacheRepository{}

		cr.On("GetStatus", ctx).Return(nil, nil)
		sr.On("Count").Return(0)
		sr.On("UpdatedAt").Return(time.Time{})
		mr.On("Count").Return(0)
		mr.On("UpdatedAt").Return(time.Time{})
		vr.On("Count", ctx).Return(0, nil)
		vr.On("DateRange", ctx).Return(&domain.DateRange{}, nil)
		cr.On("SetStatus", ctx, mock.Anything, time.Minute).Return(nil)

		uc := newStatusUC(sr, mr, vr, cr)
		status := uc.GetDataStatus(ctx)

		assert.Equal(t, "2020-01-01", status.Violations.DateRange.Start)
		assert.Equal(t, "2024-12-31", status.Violations.DateRange.End)
	})

	t.Run("database errors are not fatal", func(t *testing.T) {
		sr := &MockSignRepository{}
		mr := &MockMeterRepository{}
		vr := &MockViolationRepository{}
		cr := &MockCacheRepository{}

		cr.On("GetStatus", ctx).Return(nil, nil)
		sr.On("Count").Return(10)
		sr.On("UpdatedAt").Return(now)
		mr.On("Count").Return(5)
		mr.On("UpdatedAt").Return(now)
		vr.On("Count", ctx).Return(0, stderrors.New("db down"))
		vr.On("DateRange", ctx).Return(nil, stderrors.New("db down"))
		cr.On("SetStatus", ctx, mock.Anything, time.Minute).Return(nil)

		uc := newStatusUC(sr, mr, vr, cr)
		status := uc.GetDataStatus(ctx)

		assert.Equal(t, 10, status.ParkingSigns.TotalCount)
		assert.Equal(t, 0, status.Violations.TotalCount)
		assert.Equal(t, "2020-01-01", status.Violations.DateRange.Start)
	})
}
