package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyc-parking-api/internal/pkg/validator"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

func intPtr(v int) *int { return &v }

func TestLoadSampleDataRequest_Validation(t *testing.T) {
	t.Run("absent sample_size passes", func(t *testing.T) {
		require.NoError(t, validator.Validate(&dto.LoadSampleDataRequest{}))
	})

	t.Run("value in range passes", func(t *testing.T) {
		require.NoError(t, validator.Validate(&dto.LoadSampleDataRequest{SampleSize: intPtr(1000)}))
	})

	t.Run("explicit zero fails range validation", func(t *testing.T) {
		err := validator.Validate(&dto.LoadSampleDataRequest{SampleSize: intPtr(0)})
		assert.Error(t, err)
	})

	t.Run("value above max fails", func(t *testing.T) {
		err := validator.Validate(&dto.LoadSampleDataRequest{SampleSize: intPtr(20000)})
		assert.Error(t, err)
	})
}

func TestLoadRealViolationsRequest_Validation(t *testing.T) {
	t.Run("absent limit passes", func(t *testing.T) {
		require.NoError(t, validator.Validate(&dto.LoadRealViolationsRequest{}))
	})

	t.Run("explicit zero fails range validation", func(t *testing.T) {
		err := validator.Validate(&dto.LoadRealViolationsRequest{Limit: intPtr(0)})
		assert.Error(t, err)
	})

	t.Run("value below min fails", func(t *testing.T) {
		err := validator.Validate(&dto.LoadRealViolationsRequest{Limit: intPtr(50)})
		assert.Error(t, err)
	})
}
