package http

import (
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/usecase"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type CouponController struct {
	Log     log.Log
	UseCase *usecase.CouponUseCase
}

func NewCouponController(useCase *usecase.CouponUseCase, logger log.Log) *CouponController {
	return &CouponController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CouponController) ApplyCoupon(ctx *fiber.Ctx) error {
	request := new(model.ApplyCouponRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CouponController.ApplyCoupon", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ApplyCoupon(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Coupon Applied", fiber.StatusOK, ctx)
}

func (c *CouponController) GetActiveCoupons(ctx *fiber.Ctx) error {
	result := c.UseCase.GetActiveCoupons(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Active Coupons", fiber.StatusOK, ctx)
}

func (c *CouponController) ListCoupons(ctx *fiber.Ctx) error {
	result := c.UseCase.ListCoupons(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "All Coupons", fiber.StatusOK, ctx)
}

func (c *CouponController) CreateCoupon(ctx *fiber.Ctx) error {
	request := new(model.UpsertCouponRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CouponController.CreateCoupon", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.CreateCoupon(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Coupon Created", fiber.StatusCreated, ctx)
}

func (c *CouponController) UpdateCoupon(ctx *fiber.Ctx) error {
	request := new(model.UpsertCouponRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CouponController.UpdateCoupon", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.Code = ctx.Params("code")

	result := c.UseCase.UpdateCoupon(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Coupon Updated", fiber.StatusOK, ctx)
}

func (c *CouponController) DeleteCoupon(ctx *fiber.Ctx) error {
	request := &model.DeleteCouponRequest{
		Code: ctx.Params("code"),
	}

	result := c.UseCase.DeleteCoupon(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Coupon Deleted", fiber.StatusOK, ctx)
}
