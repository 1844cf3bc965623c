package usecase

import (
	"context"
	"database/sql"
	"errors"
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
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const orderSequenceKey = "KITCHEN:ORDER:SEQ"

// OrderEventPublisher is what the usecases need from the messaging gateway.
type OrderEventPublisher interface {
	SendOrderCreated(event *model.OrderEvent) error
	SendStatusChanged(event *model.OrderEvent) error
	SendPaymentUpdated(event *model.PaymentEvent) error
}

type OrderUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	OrderRepository    repository.OrderStore
	CouponRepository   repository.CouponStore
	SettingsRepository repository.SettingsStore
	MenuRepository     repository.MenuStore
	Redis              redis.UniversalClient
	OrderProducer      OrderEventPublisher
}

func NewOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository repository.OrderStore,
	couponRepository repository.CouponStore,
	settingsRepository repository.SettingsStore,
	menuRepository repository.MenuStore,
	redisClient redis.UniversalClient,
	orderProducer OrderEventPublisher,
) *OrderUseCase {
	return &OrderUseCase{
		Log:                logger,
		Validate:           validate,
		OrderRepository:    orderRepository,
		CouponRepository:   couponRepository,
		SettingsRepository: settingsRepository,
		MenuRepository:     menuRepository,
		Redis:              redisClient,
		OrderProducer:      orderProducer,
	}
}

// PlaceOrder turns a cart into a priced, pending order. The availability
// check here is the authoritative one; whatever the cart page showed earlier,
// this result is final.
func (c *OrderUseCase) PlaceOrder(ctx context.Context, request *model.PlaceOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "PlaceOrder", utils.ConvertString(request))
		return result
	}

	settings, err := c.SettingsRepository.Get(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error reading business settings: %v", err)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "PlaceOrder", "")
		return result
	}
	settings.ApplyDefaults()

	now := time.Now()
	if !IsStoreOpen(settings, now) {
		errObj := httpError.NewConflict()
		errObj.Message = "the kitchen is closed right now, please order within business hours"
		result.Error = errObj
		c.Log.Info("order-usecase", errObj.Message, "PlaceOrder", request.UserID)
		return result
	}

	ids := make([]string, 0, len(request.OrderItems))
	for _, item := range request.OrderItems {
		ids = append(ids, item.MenuItemID)
	}
	prices, err := c.MenuRepository.FindPrices(ctx, ids)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error reading menu prices: %v", err)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "PlaceOrder", "")
		return result
	}

	var subtotal int64
	items := make([]entity.OrderItem, 0, len(request.OrderItems))
	for _, item := range request.OrderItems {
		menuItem, ok := prices[item.MenuItemID]
		if !ok || !menuItem.IsAvailable {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("menu item %s is not available", item.MenuItemID)
			result.Error = errObj
			c.Log.Info("order-usecase", errObj.Message, "PlaceOrder", request.UserID)
			return result
		}
		subtotal += int64(item.Quantity) * menuItem.Price
		items = append(items, entity.OrderItem{
			MenuItemID:       item.MenuItemID,
			Name:             menuItem.Name,
			Quantity:         item.Quantity,
			PriceAtSelection: menuItem.Price,
		})
	}

	var discount Discount
	var couponCode *string
	if request.CouponCode != "" {
		code := normalizeCouponCode(request.CouponCode)
		coupon, err := c.CouponRepository.FindByCode(ctx, code)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("error looking up coupon: %v", err)
			result.Error = errObj
			c.Log.Error("order-usecase", errObj.Message, "PlaceOrder", code)
			return result
		}

		var reason string
		discount, reason = evaluateCoupon(coupon, subtotal, now)
		if reason != "" {
			errObj := httpError.NewBadRequest()
			errObj.Message = reason
			result.Error = errObj
			c.Log.Info("order-usecase", "coupon rejected: "+reason, "PlaceOrder", code)
			return result
		}
		couponCode = &code
	}

	totals := ComputeTotals(subtotal, settings, discount)

	// Redeem before the order row exists: the guarded increment is the only
	// defence against two checkouts burning the last use of a coupon.
	if couponCode != nil {
		ok, err := c.CouponRepository.Redeem(ctx, *couponCode)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("error redeeming coupon: %v", err)
			result.Error = errObj
			c.Log.Error("order-usecase", errObj.Message, "PlaceOrder", *couponCode)
			return result
		}
		if !ok {
			errObj := httpError.NewBadRequest()
			errObj.Message = couponReasonLimitReached
			result.Error = errObj
			c.Log.Info("order-usecase", "coupon lost the redemption race", "PlaceOrder", *couponCode)
			return result
		}
	}

	order := &entity.Order{
		ID:             uuid.NewString(),
		OrderCode:      c.nextOrderCode(ctx),
		UserID:         request.UserID,
		AddressLine:    request.DeliveryAddress.AddressLine,
		Landmark:       request.DeliveryAddress.Landmark,
		ZipCode:        request.DeliveryAddress.ZipCode,
		TotalAmount:    subtotal,
		DeliveryCharge: totals.DeliveryCharge,
		TaxAmount:      totals.Tax,
		DiscountAmount: discount.Amount,
		CouponCode:     couponCode,
		PayableAmount:  totals.PayableAmount,
		PaymentMode:    request.PaymentMode,
		PaymentStatus:  entity.PaymentStatusUnpaid,
		OrderStatus:    entity.OrderStatusPending,
		CreatedAt:      now,
		Items:          items,
	}
	if order.PaymentMode == entity.PaymentModeUPI {
		// Stored with the order so the operator can reconcile the transfer
		// note against what the customer was shown.
		order.PaymentReference = uuid.NewString()
	}

	if err := c.OrderRepository.Insert(ctx, order); err != nil {
		if couponCode != nil {
			if relErr := c.CouponRepository.Release(ctx, *couponCode); relErr != nil {
				c.Log.Error("order-usecase", fmt.Sprintf("failed to release coupon after insert failure: %v", relErr), "PlaceOrder", *couponCode)
			}
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error creating order: %v", err)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "PlaceOrder", order.ID)
		return result
	}

	if c.OrderProducer != nil {
		event := converter.OrderToEvent(order, "")
		if err := c.OrderProducer.SendOrderCreated(event); err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("failed to publish order created event: %v", err), "PlaceOrder", order.ID)
		}
	}

	response := converter.OrderToResponse(order)
	if order.PaymentMode == entity.PaymentModeUPI {
		response.UpiID = settings.UpiID
	}

	c.Log.Info("order-usecase", "order placed", "PlaceOrder", order.OrderCode)
	result.Data = response
	return result
}

// nextOrderCode hands out the human-facing sequential code. When redis is
// unavailable the code degrades to a time-based one rather than blocking
// checkout.
func (c *OrderUseCase) nextOrderCode(ctx context.Context) string {
	if c.Redis != nil {
		seq, err := c.Redis.Incr(ctx, orderSequenceKey).Result()
		if err == nil {
			return fmt.Sprintf("ORD-%05d", seq)
		}
		c.Log.Error("order-usecase", fmt.Sprintf("order sequence unavailable: %v", err), "nextOrderCode", "")
	}
	return fmt.Sprintf("ORD-T%d", time.Now().UnixNano()%1_000_000_000)
}

func (c *OrderUseCase) GetOrder(ctx context.Context, request *model.GetOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "GetOrder", utils.ConvertString(err))
		return result
	}

	// Orders are readable only by their owner; operators see everything.
	if !request.IsAdmin && order.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "this order belongs to another customer"
		result.Error = errObj
		c.Log.Info("order-usecase", errObj.Message, "GetOrder", request.UserID)
		return result
	}

	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *OrderUseCase) GetUserOrders(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	orders, err := c.OrderRepository.FindByUser(ctx, userID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error listing orders: %v", err)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "GetUserOrders", userID)
		return result
	}

	responses := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *converter.OrderToResponse(&orders[i]))
	}
	result.Data = responses
	return result
}

func (c *OrderUseCase) ListOrders(ctx context.Context) utils.Result {
	var result utils.Result

	orders, err := c.OrderRepository.List(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error listing orders: %v", err)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "ListOrders", "")
		return result
	}

	responses := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *converter.OrderToResponse(&orders[i]))
	}
	result.Data = responses
	return result
}

// UpdateOrderStatus drives the kitchen flow. Illegal moves fail loudly with
// both states named; they never silently clamp.
func (c *OrderUseCase) UpdateOrderStatus(ctx context.Context, request *model.UpdateOrderStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if !entity.IsValidOrderStatus(request.OrderStatus) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown order status %q", request.OrderStatus)
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "UpdateOrderStatus", utils.ConvertString(err))
		return result
	}

	return c.transition(ctx, order, request.OrderStatus)
}

// CancelOrder is the customer self-cancel path: only the owner, only while
// the order is still Pending. Operators cancel through UpdateOrderStatus.
func (c *OrderUseCase) CancelOrder(ctx context.Context, request *model.CancelOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "CancelOrder", utils.ConvertString(err))
		return result
	}

	if !request.IsAdmin && order.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "this order belongs to another customer"
		result.Error = errObj
		return result
	}

	return c.transition(ctx, order, entity.OrderStatusCancelled)
}

func (c *OrderUseCase) transition(ctx context.Context, order *entity.Order, toStatus string) utils.Result {
	var result utils.Result

	fromStatus := order.OrderStatus
	if !entity.CanTransition(fromStatus, toStatus) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("invalid transition from %s to %s", fromStatus, toStatus)
		result.Error = errObj
		c.Log.Info("order-usecase", errObj.Message, "transition", order.ID)
		return result
	}

	ok, err := c.OrderRepository.UpdateStatus(ctx, order.ID, fromStatus, toStatus)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error updating order status: %v", err)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "transition", order.ID)
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order %s changed concurrently, no longer in %s", order.OrderCode, fromStatus)
		result.Error = errObj
		c.Log.Info("order-usecase", errObj.Message, "transition", order.ID)
		return result
	}

	order.OrderStatus = toStatus
	if c.OrderProducer != nil {
		event := converter.OrderToEvent(order, fromStatus)
		if err := c.OrderProducer.SendStatusChanged(event); err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("failed to publish status change: %v", err), "transition", order.ID)
		}
	}

	c.Log.Info("order-usecase", fmt.Sprintf("order %s moved %s -> %s", order.OrderCode, fromStatus, toStatus), "transition", order.ID)
	result.Data = converter.OrderToResponse(order)
	return result
}
