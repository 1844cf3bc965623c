package http

import (
	"kitchen-service/src/internal/delivery/http/middleware"
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/usecase"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) SubmitManualPayment(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SubmitManualPaymentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.SubmitManualPayment", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.Metadata.UserID

	result := c.UseCase.SubmitManualPaymentRef(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment Reference Recorded", fiber.StatusOK, ctx)
}

func (c *PaymentController) ConfirmManualPayment(ctx *fiber.Ctx) error {
	request := new(model.ConfirmManualPaymentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.ConfirmManualPayment", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ConfirmManualPayment(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment Decision Recorded", fiber.StatusOK, ctx)
}

func (c *PaymentController) CreateGatewaySession(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateGatewaySessionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.CreateGatewaySession", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.Metadata.UserID

	result := c.UseCase.CreateGatewaySession(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Gateway Session Created", fiber.StatusOK, ctx)
}

// VerifyGatewayCallback is reached by the gateway, not the customer, so it
// sits outside the bearer-auth group; the signature is the authentication.
func (c *PaymentController) VerifyGatewayCallback(ctx *fiber.Ctx) error {
	request := new(model.GatewayCallbackRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.VerifyGatewayCallback", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.VerifyGatewayCallback(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment Verified", fiber.StatusOK, ctx)
}
