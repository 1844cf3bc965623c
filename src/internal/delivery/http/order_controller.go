package http

import (
	"kitchen-service/src/internal/delivery/http/middleware"
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/usecase"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewOrderController(useCase *usecase.OrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) PlaceOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.PlaceOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.PlaceOrder", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.Metadata.UserID

	result := c.UseCase.PlaceOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Placed", fiber.StatusCreated, ctx)
}

func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetOrderRequest{
		UserID:  auth.Metadata.UserID,
		OrderID: ctx.Params("id"),
		IsAdmin: auth.IsAdmin(),
	}
	result := c.UseCase.GetOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Detail", fiber.StatusOK, ctx)
}

func (c *OrderController) GetMyOrders(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.GetUserOrders(ctx.Context(), auth.Metadata.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "My Orders", fiber.StatusOK, ctx)
}

func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	result := c.UseCase.ListOrders(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "All Orders", fiber.StatusOK, ctx)
}

func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	request := new(model.UpdateOrderStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.UpdateOrderStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderID = ctx.Params("id")

	result := c.UseCase.UpdateOrderStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Status Updated", fiber.StatusOK, ctx)
}

func (c *OrderController) CancelOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.CancelOrderRequest{
		UserID:  auth.Metadata.UserID,
		OrderID: ctx.Params("id"),
		IsAdmin: auth.IsAdmin(),
	}
	result := c.UseCase.CancelOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Cancelled", fiber.StatusOK, ctx)
}
