package usecase

import (
	"context"
	"testing"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_AppliesDefaults(t *testing.T) {
	store := &fakeSettingsStore{settings: &entity.Settings{ID: 1}}
	uc := NewSettingsUseCase(quietLog, validator.New(), store, nil)

	result := uc.GetSettings(context.Background())

	require.Nil(t, result.Error)
	response := result.Data.(*model.SettingsResponse)
	assert.Equal(t, entity.DefaultTaxPercentage, response.TaxPercentage)
	assert.Equal(t, int64(entity.DefaultBaseDeliveryCharge), response.BaseDeliveryCharge)
	assert.Equal(t, int64(entity.DefaultFreeDeliveryAbove), response.FreeDeliveryAbove)
	// No timings configured, the store reports open.
	assert.True(t, response.IsOpen)
}

func TestGetSettings_HolidayModeShowsClosed(t *testing.T) {
	store := &fakeSettingsStore{settings: &entity.Settings{ID: 1, IsHolidayMode: true}}
	uc := NewSettingsUseCase(quietLog, validator.New(), store, nil)

	result := uc.GetSettings(context.Background())

	require.Nil(t, result.Error)
	response := result.Data.(*model.SettingsResponse)
	assert.False(t, response.IsOpen)
}

func TestUpdateSettings(t *testing.T) {
	store := &fakeSettingsStore{settings: &entity.Settings{ID: 1}}
	uc := NewSettingsUseCase(quietLog, validator.New(), store, nil)

	result := uc.UpdateSettings(context.Background(), &model.UpdateSettingsRequest{
		Timings:            model.TimingsPayload{Open: "09:00AM", Close: "11:00PM"},
		TaxPercentage:      12,
		BaseDeliveryCharge: 50,
		FreeDeliveryAbove:  800,
		UpiID:              "kitchen@upi",
	})

	require.Nil(t, result.Error)
	require.NotNil(t, store.updated)
	assert.Equal(t, "09:00AM", store.updated.OpenTime)
	assert.Equal(t, 12, store.updated.TaxPercentage)

	response := result.Data.(*model.SettingsResponse)
	assert.Equal(t, "kitchen@upi", response.UpiID)
}

func TestUpdateSettings_RejectsBadTax(t *testing.T) {
	store := &fakeSettingsStore{settings: &entity.Settings{ID: 1}}
	uc := NewSettingsUseCase(quietLog, validator.New(), store, nil)

	result := uc.UpdateSettings(context.Background(), &model.UpdateSettingsRequest{
		TaxPercentage: 150,
	})

	require.NotNil(t, result.Error)
	assert.Nil(t, store.updated)
}
