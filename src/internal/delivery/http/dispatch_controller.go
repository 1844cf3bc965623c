package http

import (
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/usecase"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DispatchController struct {
	Log     log.Log
	UseCase *usecase.DispatchUseCase
}

func NewDispatchController(useCase *usecase.DispatchUseCase, logger log.Log) *DispatchController {
	return &DispatchController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DispatchController) CreateDispatch(ctx *fiber.Ctx) error {
	request := new(model.CreateDispatchRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DispatchController.CreateDispatch", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.CreateDispatch(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Dispatch Recorded", fiber.StatusCreated, ctx)
}

func (c *DispatchController) CompleteDispatch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := &model.CompleteDispatchRequest{
		DispatchID: int64(id),
	}
	result := c.UseCase.CompleteDispatch(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Dispatch Completed", fiber.StatusOK, ctx)
}

func (c *DispatchController) ListDispatches(ctx *fiber.Ctx) error {
	result := c.UseCase.ListDispatches(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Dispatch Records", fiber.StatusOK, ctx)
}
