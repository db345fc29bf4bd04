package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/recreation-microservice/internal/pkg/errors"
	"github.com/recreation-microservice/internal/pkg/validator"
)

type idRequest struct {
	ID    string `validate:"required,rec_resource_id"`
	Codes []int  `validate:"dive,gt=0"`
}

func TestIsRecResourceID(t *testing.T) {
	assert.True(t, validator.IsRecResourceID("REC203239"))
	assert.True(t, validator.IsRecResourceID("REC1"))
	assert.False(t, validator.IsRecResourceID("rec203239"))
	assert.False(t, validator.IsRecResourceID("REC"))
	assert.False(t, validator.IsRecResourceID("REC12a"))
	assert.False(t, validator.IsRecResourceID(""))
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validator.Validate(&idRequest{ID: "REC203239", Codes: []int{1, 2}}))
	})

	t.Run("invalid id returns app error with field details", func(t *testing.T) {
		err := validator.Validate(&idRequest{ID: "SITE1"})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
		assert.Equal(t, "rec_resource_id", appErr.Details["ID"])
		assert.True(t, errors.Is(err, apperrors.ErrInvalidRequest))
		assert.Empty(t, apperrors.ErrInvalidRequest.Details, "sentinel must stay untouched")
	})

	t.Run("dive rule", func(t *testing.T) {
		err := validator.Validate(&idRequest{ID: "REC1", Codes: []int{3, 0}})
		require.Error(t, err)
	})
}
