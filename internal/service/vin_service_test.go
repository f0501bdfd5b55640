package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
)

func TestValidatePlateNormalizes(t *testing.T) {
	svc := NewVinService(zap.NewNop())

	validation := svc.ValidatePlate("  abc123 ", "CA")
	assert.True(t, validation.IsValid)
	assert.Equal(t, "ABC123", validation.NormalizedPlate)
}

func TestValidatePlateStateFormat(t *testing.T) {
	svc := NewVinService(zap.NewNop())

	// Dashes pass the basic format but not California's.
	assert.True(t, svc.ValidatePlate("AB-123", "MT").IsValid)
	assert.False(t, svc.ValidatePlate("AB-123", "CA").IsValid)
	assert.False(t, svc.ValidatePlate("X", "CA").IsValid)
	assert.False(t, svc.ValidatePlate("TOOLONGPLATE9", "CA").IsValid)
}

func TestDecodeFromPlateKnownPlate(t *testing.T) {
	svc := NewVinService(zap.NewNop())

	result, err := svc.DecodeFromPlate(context.Background(), "xyz789", "NY")
	require.NoError(t, err)
	assert.Equal(t, "1HGBH41JXMN109186", result.VIN)
	assert.Equal(t, "Honda", result.Make)
	assert.Equal(t, "Civic", result.Model)
	assert.Equal(t, 2021, result.Year)
	assert.Equal(t, "NY", result.State)
	assert.Equal(t, "XYZ789", result.PlateNumber)
	assert.Equal(t, "mock", result.Source)
	assert.Empty(t, result.Error)
}

func TestDecodeFromPlateUnknownPlateIsNotAnError(t *testing.T) {
	svc := NewVinService(zap.NewNop())

	result, err := svc.DecodeFromPlate(context.Background(), "ZZZ999", "TX")
	require.NoError(t, err)
	assert.Empty(t, result.VIN)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, "ZZZ999", result.PlateNumber)
}

func TestDecodeFromPlateInvalidFormat(t *testing.T) {
	svc := NewVinService(zap.NewNop())

	_, err := svc.DecodeFromPlate(context.Background(), "!!!", "CA")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSupportedStatesListsAllWithNames(t *testing.T) {
	svc := NewVinService(zap.NewNop())

	states := svc.SupportedStates()
	require.Len(t, states, 51)
	byCode := make(map[string]string, len(states))
	for _, st := range states {
		byCode[st.Code] = st.Name
	}
	assert.Equal(t, "California", byCode["CA"])
	assert.Equal(t, "District of Columbia", byCode["DC"])
}
