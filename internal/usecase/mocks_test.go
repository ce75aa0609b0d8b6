package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
)

// MockSignRepository is a mock of SignRepository
type MockSignRepository struct {
	mock.Mock
}

func (m *MockSignRepository) Replace(signs []domain.ParkingSign) {
	m.Called(signs)
}

func (m *MockSignRepository) Snapshot() []domain.ParkingSign {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ParkingSign)
}

func (m *MockSignRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockSignRepository) UpdatedAt() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// MockMeterRepository is a mock of MeterRepository
type MockMeterRepository struct {
	mock.Mock
}

func (m *MockMeterRepository) Replace(meters []domain.MeterZone) {
	m.Called(meters)
}

func (m *MockMeterRepository) Snapshot() []domain.MeterZone {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.MeterZone)
}

func (m *MockMeterRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockMeterRepository) UpdatedAt() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// MockViolationRepository is a mock of ViolationRepository
type MockViolationRepository struct {
	mock.Mock
}

func (m *MockViolationRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockViolationRepository) GetTrends(ctx context.Context, borough string, year int) (*domain.ViolationTrends, error) {
	args := m.Called(ctx, borough, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ViolationTrends), args.Error(1)
}

func (m *MockViolationRepository) FindNearby(ctx context.Context, q domain.ViolationQuery) ([]domain.ViolationWithDistance, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ViolationWithDistance), args.Error(1)
}

func (m *MockViolationRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockViolationRepository) DateRange(ctx context.Context) (*domain.DateRange, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DateRange), args.Error(1)
}

func (m *MockViolationRepository) InsertBatch(ctx context.Context, violations []domain.Violation) (int, error) {
	args := m.Called(ctx, violations)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetTrends(ctx context.Context, borough string, year int) (*domain.ViolationTrends, error) {
	args := m.Called(ctx, borough, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ViolationTrends), args.Error(1)
}

func (m *MockCacheRepository) SetTrends(ctx context.Context, borough string, year int, trends *domain.ViolationTrends, ttl time.Duration) error {
	args := m.Called(ctx, borough, year, trends, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateTrends(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStatus(ctx context.Context) (*domain.DataStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DataStatus), args.Error(1)
}

func (m *MockCacheRepository) SetStatus(ctx context.Context, status *domain.DataStatus, ttl time.Duration) error {
	args := m.Called(ctx, status, ttl)
	return args.Error(0)
}

// MockOpenDataRepository is a mock of OpenDataRepository
type MockOpenDataRepository struct {
	mock.Mock
}

func (m *MockOpenDataRepository) FetchParkingSigns(ctx context.Context, limit int) ([]domain.ParkingSign, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParkingSign), args.Error(1)
}

func (m *MockOpenDataRepository) FetchMeterZones(ctx context.Context, limit int) ([]domain.MeterZone, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MeterZone), args.Error(1)
}

func (m *MockOpenDataRepository) FetchViolations(ctx context.Context, limit int) ([]domain.Violation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Violation), args.Error(1)
}

func (m *MockOpenDataRepository) Probe(ctx context.Context) map[string]repository.DatasetProbe {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]repository.DatasetProbe)
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
