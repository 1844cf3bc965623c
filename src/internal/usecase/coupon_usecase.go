package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
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

const activeCouponsCacheKey = "COUPONS:ACTIVE"

type CouponUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	CouponRepository repository.CouponStore
	Redis            redis.UniversalClient
}

func NewCouponUseCase(
	logger log.Log,
	validate *validator.Validate,
	couponRepository repository.CouponStore,
	redisClient redis.UniversalClient,
) *CouponUseCase {
	return &CouponUseCase{
		Log:              logger,
		Validate:         validate,
		CouponRepository: couponRepository,
		Redis:            redisClient,
	}
}

func normalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ApplyCoupon is the preview call made from the cart. It never increments
// usage; redemption is recorded only when an order is actually placed.
func (c *CouponUseCase) ApplyCoupon(ctx context.Context, request *model.ApplyCouponRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("coupon-usecase", errObj.Message, "ApplyCoupon", utils.ConvertString(request))
		return result
	}

	code := normalizeCouponCode(request.Code)
	coupon, err := c.CouponRepository.FindByCode(ctx, code)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error looking up coupon: %v", err)
		result.Error = errObj
		c.Log.Error("coupon-usecase", errObj.Message, "ApplyCoupon", code)
		return result
	}

	discount, reason := evaluateCoupon(coupon, request.OrderAmount, time.Now())
	if reason != "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = reason
		result.Error = errObj
		c.Log.Info("coupon-usecase", "coupon rejected: "+reason, "ApplyCoupon", code)
		return result
	}

	result.Data = &model.ApplyCouponResponse{
		Code:           code,
		DiscountAmount: discount.Amount,
		IsFreeDelivery: discount.IsFreeDelivery,
	}
	return result
}

// GetActiveCoupons backs the offers list on checkout. Served from redis when
// warm; falls through to the database otherwise.
func (c *CouponUseCase) GetActiveCoupons(ctx context.Context) utils.Result {
	var result utils.Result

	if c.Redis != nil {
		cached, err := c.Redis.Get(ctx, activeCouponsCacheKey).Result()
		if err == nil && cached != "" {
			var coupons []model.CouponResponse
			if err := json.Unmarshal([]byte(cached), &coupons); err == nil {
				result.Data = coupons
				return result
			}
		}
	}

	coupons, err := c.CouponRepository.FindActive(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error listing active coupons: %v", err)
		result.Error = errObj
		c.Log.Error("coupon-usecase", errObj.Message, "GetActiveCoupons", "")
		return result
	}

	responses := converter.CouponsToResponse(coupons)

	if c.Redis != nil {
		if data, err := json.Marshal(responses); err == nil {
			if redisErr := c.Redis.Set(ctx, activeCouponsCacheKey, data, 5*time.Minute).Err(); redisErr != nil {
				c.Log.Error("coupon-usecase", fmt.Sprintf("failed to cache active coupons: %v", redisErr), "GetActiveCoupons", "")
			}
		}
	}

	result.Data = responses
	return result
}

func (c *CouponUseCase) ListCoupons(ctx context.Context) utils.Result {
	var result utils.Result

	coupons, err := c.CouponRepository.List(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error listing coupons: %v", err)
		result.Error = errObj
		c.Log.Error("coupon-usecase", errObj.Message, "ListCoupons", "")
		return result
	}

	result.Data = converter.CouponsToResponse(coupons)
	return result
}

func (c *CouponUseCase) CreateCoupon(ctx context.Context, request *model.UpsertCouponRequest) utils.Result {
	return c.upsertCoupon(ctx, request, false)
}

func (c *CouponUseCase) UpdateCoupon(ctx context.Context, request *model.UpsertCouponRequest) utils.Result {
	return c.upsertCoupon(ctx, request, true)
}

func (c *CouponUseCase) upsertCoupon(ctx context.Context, request *model.UpsertCouponRequest, isUpdate bool) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("coupon-usecase", errObj.Message, "upsertCoupon", utils.ConvertString(request))
		return result
	}

	coupon := &entity.Coupon{
		Code:           normalizeCouponCode(request.Code),
		DiscountType:   request.DiscountType,
		DiscountValue:  request.DiscountValue,
		MinOrderAmount: request.MinOrderAmount,
		MaxDiscount:    request.MaxDiscount,
		UsageLimit:     request.UsageLimit,
		IsActive:       request.IsActive,
	}
	if coupon.DiscountType == entity.DiscountTypeFreeDelivery {
		coupon.DiscountValue = 0
	}
	if request.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", request.ExpiryDate)
		if err != nil {
			errObj := httpError.NewBadRequest()
			errObj.Message = "expiryDate must be YYYY-MM-DD"
			result.Error = errObj
			return result
		}
		coupon.ExpiryDate = &expiry
	}

	var err error
	if isUpdate {
		err = c.CouponRepository.Update(ctx, coupon)
	} else {
		err = c.CouponRepository.Insert(ctx, coupon)
	}
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error saving coupon: %v", err)
		result.Error = errObj
		c.Log.Error("coupon-usecase", errObj.Message, "upsertCoupon", coupon.Code)
		return result
	}

	c.invalidateActiveCache(ctx)
	result.Data = converter.CouponToResponse(coupon)
	return result
}

func (c *CouponUseCase) DeleteCoupon(ctx context.Context, request *model.DeleteCouponRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	code := normalizeCouponCode(request.Code)
	if err := c.CouponRepository.Delete(ctx, code); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error deleting coupon: %v", err)
		result.Error = errObj
		c.Log.Error("coupon-usecase", errObj.Message, "DeleteCoupon", code)
		return result
	}

	c.invalidateActiveCache(ctx)
	result.Data = map[string]string{"code": code}
	return result
}

func (c *CouponUseCase) invalidateActiveCache(ctx context.Context) {
	if c.Redis == nil {
		return
	}
	if err := c.Redis.Del(ctx, activeCouponsCacheKey).Err(); err != nil {
		c.Log.Error("coupon-usecase", fmt.Sprintf("failed to invalidate coupon cache: %v", err), "invalidateActiveCache", "")
	}
}
