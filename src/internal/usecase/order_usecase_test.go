package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"
	httpError "kitchen-service/src/pkg/http-error"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	settings *fakeSettingsStore
	coupons  *fakeCouponStore
	menu     *fakeMenuStore
	orders   *fakeOrderStore
	events   *fakePublisher
	uc       *OrderUseCase
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		settings: &fakeSettingsStore{settings: &entity.Settings{ID: 1, UpiID: "kitchen@upi"}},
		coupons:  newFakeCouponStore(),
		menu: &fakeMenuStore{prices: map[string]entity.MenuItemPrice{
			"pizza": {MenuItemID: "pizza", Name: "Margherita", Price: 250, IsAvailable: true},
			"soda":  {MenuItemID: "soda", Name: "Cola", Price: 100, IsAvailable: true},
			"cake":  {MenuItemID: "cake", Name: "Cheesecake", Price: 180, IsAvailable: false},
		}},
		orders: newFakeOrderStore(),
		events: &fakePublisher{},
	}
	f.uc = NewOrderUseCase(quietLog, validator.New(), f.orders, f.coupons, f.settings, f.menu, nil, f.events)
	return f
}

func placeOrderRequest() *model.PlaceOrderRequest {
	return &model.PlaceOrderRequest{
		UserID: "user-1",
		OrderItems: []model.CartItemRequest{
			{MenuItemID: "pizza", Quantity: 2},
			{MenuItemID: "soda", Quantity: 1},
		},
		DeliveryAddress: model.AddressRequest{
			AddressLine: "12 Baker Street",
			ZipCode:     "560001",
		},
		PaymentMode: entity.PaymentModeCOD,
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	f := newOrderFixture()

	result := f.uc.PlaceOrder(context.Background(), placeOrderRequest())

	require.Nil(t, result.Error)
	response, ok := result.Data.(*model.OrderResponse)
	require.True(t, ok)

	assert.Equal(t, int64(600), response.TotalAmount)
	assert.Zero(t, response.DeliveryCharge)
	assert.Equal(t, int64(30), response.TaxAmount)
	assert.Equal(t, int64(630), response.PayableAmount)
	assert.Equal(t, entity.OrderStatusPending, response.OrderStatus)
	assert.Equal(t, entity.PaymentStatusUnpaid, response.PaymentStatus)
	assert.True(t, strings.HasPrefix(response.OrderCode, "ORD-"))
	assert.Len(t, response.Items, 2)
	assert.Equal(t, int64(250), response.Items[0].PriceAtSelection)

	assert.Equal(t, 1, f.orders.inserted)
	assert.Len(t, f.events.created, 1)
}

func TestPlaceOrder_SmallOrderPaysDelivery(t *testing.T) {
	f := newOrderFixture()

	request := placeOrderRequest()
	request.OrderItems = []model.CartItemRequest{{MenuItemID: "soda", Quantity: 1}}
	result := f.uc.PlaceOrder(context.Background(), request)

	require.Nil(t, result.Error)
	response := result.Data.(*model.OrderResponse)
	assert.Equal(t, int64(100), response.TotalAmount)
	assert.Equal(t, int64(40), response.DeliveryCharge)
	assert.Equal(t, int64(5), response.TaxAmount)
	assert.Equal(t, int64(145), response.PayableAmount)
}

func TestPlaceOrder_UpiInstructions(t *testing.T) {
	f := newOrderFixture()

	request := placeOrderRequest()
	request.PaymentMode = entity.PaymentModeUPI
	result := f.uc.PlaceOrder(context.Background(), request)

	require.Nil(t, result.Error)
	response := result.Data.(*model.OrderResponse)
	assert.Equal(t, "kitchen@upi", response.UpiID)
	assert.NotEmpty(t, response.PaymentReference)

	// The reference the customer is shown is the one on the stored row.
	order, err := f.orders.FindByID(context.Background(), response.ID)
	require.NoError(t, err)
	assert.Equal(t, response.PaymentReference, order.PaymentReference)
}

func TestPlaceOrder_NoPaymentReferenceForCOD(t *testing.T) {
	f := newOrderFixture()

	result := f.uc.PlaceOrder(context.Background(), placeOrderRequest())

	require.Nil(t, result.Error)
	response := result.Data.(*model.OrderResponse)
	assert.Empty(t, response.PaymentReference)
	assert.Empty(t, response.UpiID)
}

func TestPlaceOrder_StoreClosed(t *testing.T) {
	f := newOrderFixture()
	f.settings.settings.IsHolidayMode = true

	result := f.uc.PlaceOrder(context.Background(), placeOrderRequest())

	require.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, commonErr.Code)
	assert.Zero(t, f.orders.inserted)
}

func TestPlaceOrder_UnavailableItem(t *testing.T) {
	f := newOrderFixture()

	request := placeOrderRequest()
	request.OrderItems = append(request.OrderItems, model.CartItemRequest{MenuItemID: "cake", Quantity: 1})
	result := f.uc.PlaceOrder(context.Background(), request)

	require.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusBadRequest, commonErr.Code)
	assert.Contains(t, commonErr.Message, "cake")
	assert.Zero(t, f.orders.inserted)
}

func TestPlaceOrder_WithCoupon(t *testing.T) {
	f := newOrderFixture()
	f.coupons.Insert(context.Background(), &entity.Coupon{
		Code:          "FLAT100",
		DiscountType:  entity.DiscountTypeFlat,
		DiscountValue: 100,
		UsageLimit:    10,
		IsActive:      true,
	})

	request := placeOrderRequest()
	request.CouponCode = "flat100"
	result := f.uc.PlaceOrder(context.Background(), request)

	require.Nil(t, result.Error)
	response := result.Data.(*model.OrderResponse)
	assert.Equal(t, int64(100), response.DiscountAmount)
	assert.Equal(t, "FLAT100", response.CouponCode)
	assert.Equal(t, int64(530), response.PayableAmount)

	coupon, err := f.coupons.FindByCode(context.Background(), "FLAT100")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsageCount)
}

func TestPlaceOrder_CouponRace(t *testing.T) {
	f := newOrderFixture()
	f.coupons.Insert(context.Background(), &entity.Coupon{
		Code:          "LASTONE",
		DiscountType:  entity.DiscountTypeFlat,
		DiscountValue: 50,
		UsageLimit:    1,
		IsActive:      true,
	})

	const racers = 2
	results := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			request := placeOrderRequest()
			request.CouponCode = "LASTONE"
			results[i] = f.uc.PlaceOrder(context.Background(), request).Error
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range results {
		if err != nil {
			failures++
			commonErr := err.(*httpError.CommonError)
			assert.Equal(t, couponReasonLimitReached, commonErr.Message)
		}
	}
	assert.Equal(t, 1, failures)
	assert.Equal(t, 1, f.orders.inserted)

	coupon, err := f.coupons.FindByCode(context.Background(), "LASTONE")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsageCount)
}

func TestPlaceOrder_ReleasesCouponWhenInsertFails(t *testing.T) {
	f := newOrderFixture()
	f.coupons.Insert(context.Background(), &entity.Coupon{
		Code:          "FLAT100",
		DiscountType:  entity.DiscountTypeFlat,
		DiscountValue: 100,
		UsageLimit:    10,
		IsActive:      true,
	})
	f.orders.insertErr = errors.New("db down")

	request := placeOrderRequest()
	request.CouponCode = "FLAT100"
	result := f.uc.PlaceOrder(context.Background(), request)

	require.NotNil(t, result.Error)
	coupon, err := f.coupons.FindByCode(context.Background(), "FLAT100")
	require.NoError(t, err)
	assert.Zero(t, coupon.UsageCount)
	assert.Equal(t, 1, f.coupons.releases)
}

func TestGetOrder_OwnerAndAdmin(t *testing.T) {
	f := newOrderFixture()
	f.orders.Insert(context.Background(), &entity.Order{
		ID:          "ord-1",
		OrderCode:   "ORD-00001",
		UserID:      "user-1",
		OrderStatus: entity.OrderStatusPending,
	})

	owner := f.uc.GetOrder(context.Background(), &model.GetOrderRequest{UserID: "user-1", OrderID: "ord-1"})
	assert.Nil(t, owner.Error)

	stranger := f.uc.GetOrder(context.Background(), &model.GetOrderRequest{UserID: "user-2", OrderID: "ord-1"})
	require.NotNil(t, stranger.Error)
	commonErr := stranger.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusForbidden, commonErr.Code)

	admin := f.uc.GetOrder(context.Background(), &model.GetOrderRequest{UserID: "user-2", OrderID: "ord-1", IsAdmin: true})
	assert.Nil(t, admin.Error)
}

func TestUpdateOrderStatus_HappyPath(t *testing.T) {
	f := newOrderFixture()
	f.orders.Insert(context.Background(), &entity.Order{
		ID:          "ord-1",
		OrderCode:   "ORD-00001",
		UserID:      "user-1",
		OrderStatus: entity.OrderStatusPending,
	})

	result := f.uc.UpdateOrderStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:     "ord-1",
		OrderStatus: entity.OrderStatusConfirmed,
	})

	require.Nil(t, result.Error)
	order, _ := f.orders.FindByID(context.Background(), "ord-1")
	assert.Equal(t, entity.OrderStatusConfirmed, order.OrderStatus)
	require.Len(t, f.events.status, 1)
	assert.Equal(t, entity.OrderStatusPending, f.events.status[0].FromStatus)
}

func TestUpdateOrderStatus_IllegalTransition(t *testing.T) {
	f := newOrderFixture()
	f.orders.Insert(context.Background(), &entity.Order{
		ID:          "ord-1",
		OrderCode:   "ORD-00001",
		OrderStatus: entity.OrderStatusPending,
	})

	result := f.uc.UpdateOrderStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:     "ord-1",
		OrderStatus: entity.OrderStatusDelivered,
	})

	require.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, commonErr.Code)
	assert.Contains(t, commonErr.Message, "Pending")
	assert.Contains(t, commonErr.Message, "Delivered")

	order, _ := f.orders.FindByID(context.Background(), "ord-1")
	assert.Equal(t, entity.OrderStatusPending, order.OrderStatus)
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	f := newOrderFixture()

	result := f.uc.UpdateOrderStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:     "ord-1",
		OrderStatus: "Shipped",
	})

	require.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusBadRequest, commonErr.Code)
}

func TestCancelOrder(t *testing.T) {
	f := newOrderFixture()
	f.orders.Insert(context.Background(), &entity.Order{
		ID:          "ord-1",
		OrderCode:   "ORD-00001",
		UserID:      "user-1",
		OrderStatus: entity.OrderStatusPending,
	})

	stranger := f.uc.CancelOrder(context.Background(), &model.CancelOrderRequest{UserID: "user-2", OrderID: "ord-1"})
	require.NotNil(t, stranger.Error)

	owner := f.uc.CancelOrder(context.Background(), &model.CancelOrderRequest{UserID: "user-1", OrderID: "ord-1"})
	require.Nil(t, owner.Error)

	order, _ := f.orders.FindByID(context.Background(), "ord-1")
	assert.Equal(t, entity.OrderStatusCancelled, order.OrderStatus)
}

func TestCancelOrder_TooLate(t *testing.T) {
	f := newOrderFixture()
	f.orders.Insert(context.Background(), &entity.Order{
		ID:          "ord-1",
		OrderCode:   "ORD-00001",
		UserID:      "user-1",
		OrderStatus: entity.OrderStatusConfirmed,
	})

	result := f.uc.CancelOrder(context.Background(), &model.CancelOrderRequest{UserID: "user-1", OrderID: "ord-1"})

	require.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, commonErr.Code)

	order, _ := f.orders.FindByID(context.Background(), "ord-1")
	assert.Equal(t, entity.OrderStatusConfirmed, order.OrderStatus)
}
