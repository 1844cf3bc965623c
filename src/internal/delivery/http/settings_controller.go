package http

import (
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/usecase"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	Log     log.Log
	UseCase *usecase.SettingsUseCase
}

func NewSettingsController(useCase *usecase.SettingsUseCase, logger log.Log) *SettingsController {
	return &SettingsController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SettingsController) GetSettings(ctx *fiber.Ctx) error {
	result := c.UseCase.GetSettings(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Business Settings", fiber.StatusOK, ctx)
}

func (c *SettingsController) UpdateSettings(ctx *fiber.Ctx) error {
	request := new(model.UpdateSettingsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SettingsController.UpdateSettings", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.UpdateSettings(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Settings Updated", fiber.StatusOK, ctx)
}
