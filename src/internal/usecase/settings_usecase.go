package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/model/converter"
	"kitchen-service/src/internal/repository"
	httpError "kitchen-service/src/pkg/http-error"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

const settingsCacheKey = "KITCHEN:SETTINGS"

type SettingsUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	SettingsRepository repository.SettingsStore
	Redis              redis.UniversalClient
}

func NewSettingsUseCase(
	logger log.Log,
	validate *validator.Validate,
	settingsRepository repository.SettingsStore,
	redisClient redis.UniversalClient,
) *SettingsUseCase {
	return &SettingsUseCase{
		Log:                logger,
		Validate:           validate,
		SettingsRepository: settingsRepository,
		Redis:              redisClient,
	}
}

// GetSettings serves the public checkout view of the business rules,
// including the soft availability flag the cart page shows. The flag here is
// advisory; PlaceOrder re-evaluates availability before creating the order.
func (c *SettingsUseCase) GetSettings(ctx context.Context) utils.Result {
	var result utils.Result

	settings := c.cachedSettings(ctx)
	if settings == nil {
		loaded, err := c.SettingsRepository.Get(ctx)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("error reading settings: %v", err)
			result.Error = errObj
			c.Log.Error("settings-usecase", errObj.Message, "GetSettings", "")
			return result
		}
		settings = loaded
		c.cacheSettings(ctx, settings)
	}
	settings.ApplyDefaults()

	result.Data = converter.SettingsToResponse(settings, IsStoreOpen(settings, time.Now()))
	return result
}

func (c *SettingsUseCase) UpdateSettings(ctx context.Context, request *model.UpdateSettingsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("settings-usecase", errObj.Message, "UpdateSettings", utils.ConvertString(request))
		return result
	}

	settings := &entity.Settings{
		ID:                 1,
		OpenTime:           request.Timings.Open,
		CloseTime:          request.Timings.Close,
		IsHolidayMode:      request.IsHolidayMode,
		TaxPercentage:      request.TaxPercentage,
		BaseDeliveryCharge: request.BaseDeliveryCharge,
		FreeDeliveryAbove:  request.FreeDeliveryAbove,
		UpiID:              request.UpiID,
	}
	if err := c.SettingsRepository.Update(ctx, settings); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error updating settings: %v", err)
		result.Error = errObj
		c.Log.Error("settings-usecase", errObj.Message, "UpdateSettings", "")
		return result
	}

	if c.Redis != nil {
		if err := c.Redis.Del(ctx, settingsCacheKey).Err(); err != nil {
			c.Log.Error("settings-usecase", fmt.Sprintf("failed to invalidate settings cache: %v", err), "UpdateSettings", "")
		}
	}

	settings.ApplyDefaults()
	c.Log.Info("settings-usecase", "business settings updated", "UpdateSettings", "")
	result.Data = converter.SettingsToResponse(settings, IsStoreOpen(settings, time.Now()))
	return result
}

func (c *SettingsUseCase) cachedSettings(ctx context.Context) *entity.Settings {
	if c.Redis == nil {
		return nil
	}
	cached, err := c.Redis.Get(ctx, settingsCacheKey).Result()
	if err != nil || cached == "" {
		return nil
	}
	var settings entity.Settings
	if err := json.Unmarshal([]byte(cached), &settings); err != nil {
		return nil
	}
	return &settings
}

func (c *SettingsUseCase) cacheSettings(ctx context.Context, settings *entity.Settings) {
	if c.Redis == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, settingsCacheKey, data, 2*time.Minute).Err(); err != nil {
		c.Log.Error("settings-usecase", fmt.Sprintf("failed to cache settings: %v", err), "cacheSettings", "")
	}
}
