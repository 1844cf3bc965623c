package usecase

import (
	"context"
	"testing"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"
	httpError "kitchen-service/src/pkg/http-error"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchFixture(orderStatus string) (*DispatchUseCase, *fakeDispatchStore) {
	orders := newFakeOrderStore(&entity.Order{
		ID:          "ord-1",
		OrderCode:   "ORD-00001",
		OrderStatus: orderStatus,
	})
	dispatches := newFakeDispatchStore()
	uc := NewDispatchUseCase(quietLog, validator.New(), dispatches, orders)
	return uc, dispatches
}

func createRequest() *model.CreateDispatchRequest {
	return &model.CreateDispatchRequest{
		OrderID:        "ord-1",
		ServiceName:    "Dunzo",
		BookingID:      "DZ-991",
		DeliveryCharge: 60,
	}
}

func TestCreateDispatch(t *testing.T) {
	uc, _ := newDispatchFixture(entity.OrderStatusPacked)

	result := uc.CreateDispatch(context.Background(), createRequest())

	require.Nil(t, result.Error)
	response := result.Data.(*model.DispatchResponse)
	assert.Equal(t, "ord-1", response.OrderID)
	assert.Equal(t, "Dunzo", response.ServiceName)
	assert.Nil(t, response.CompletionTime)
}

func TestCreateDispatch_OrderNotPacked(t *testing.T) {
	uc, _ := newDispatchFixture(entity.OrderStatusPreparing)

	result := uc.CreateDispatch(context.Background(), createRequest())

	require.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, commonErr.Code)
}

func TestCreateDispatch_OnePerOrder(t *testing.T) {
	uc, _ := newDispatchFixture(entity.OrderStatusPacked)

	require.Nil(t, uc.CreateDispatch(context.Background(), createRequest()).Error)
	result := uc.CreateDispatch(context.Background(), createRequest())

	require.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, commonErr.Code)
}

func TestCompleteDispatch_Once(t *testing.T) {
	uc, dispatches := newDispatchFixture(entity.OrderStatusPacked)
	require.Nil(t, uc.CreateDispatch(context.Background(), createRequest()).Error)

	first := uc.CompleteDispatch(context.Background(), &model.CompleteDispatchRequest{DispatchID: 1})
	require.Nil(t, first.Error)
	response := first.Data.(*model.DispatchResponse)
	assert.NotNil(t, response.CompletionTime)

	second := uc.CompleteDispatch(context.Background(), &model.CompleteDispatchRequest{DispatchID: 1})
	require.NotNil(t, second.Error)
	commonErr := second.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, commonErr.Code)

	record, err := dispatches.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, record.CompletionTime)
}

func TestCompleteDispatch_UnknownRecord(t *testing.T) {
	uc, _ := newDispatchFixture(entity.OrderStatusPacked)

	result := uc.CompleteDispatch(context.Background(), &model.CompleteDispatchRequest{DispatchID: 42})

	require.NotNil(t, result.Error)
}
