package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/model/converter"
	"kitchen-service/src/internal/repository"
	httpError "kitchen-service/src/pkg/http-error"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type DispatchUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	DispatchRepository repository.DispatchStore
	OrderRepository    repository.OrderStore
}

func NewDispatchUseCase(
	logger log.Log,
	validate *validator.Validate,
	dispatchRepository repository.DispatchStore,
	orderRepository repository.OrderStore,
) *DispatchUseCase {
	return &DispatchUseCase{
		Log:                logger,
		Validate:           validate,
		DispatchRepository: dispatchRepository,
		OrderRepository:    orderRepository,
	}
}

// CreateDispatch records the logistics handover for a packed order. One
// record per order.
func (c *DispatchUseCase) CreateDispatch(ctx context.Context, request *model.CreateDispatchRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("dispatch-usecase", errObj.Message, "CreateDispatch", utils.ConvertString(request))
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		c.Log.Error("dispatch-usecase", errObj.Message, "CreateDispatch", utils.ConvertString(err))
		return result
	}

	if order.OrderStatus != entity.OrderStatusPacked {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order %s is %s, only packed orders can be dispatched", order.OrderCode, order.OrderStatus)
		result.Error = errObj
		return result
	}

	existing, err := c.DispatchRepository.FindByOrderID(ctx, order.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error checking dispatch records: %v", err)
		result.Error = errObj
		c.Log.Error("dispatch-usecase", errObj.Message, "CreateDispatch", order.ID)
		return result
	}
	if existing != nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order %s already has a dispatch record", order.OrderCode)
		result.Error = errObj
		return result
	}

	record := &entity.DispatchRecord{
		OrderID:        order.ID,
		ServiceName:    request.ServiceName,
		BookingID:      request.BookingID,
		DeliveryCharge: request.DeliveryCharge,
	}
	if err := c.DispatchRepository.Insert(ctx, record); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error creating dispatch record: %v", err)
		result.Error = errObj
		c.Log.Error("dispatch-usecase", errObj.Message, "CreateDispatch", order.ID)
		return result
	}

	c.Log.Info("dispatch-usecase", "dispatch recorded", "CreateDispatch", order.OrderCode)
	result.Data = converter.DispatchToResponse(record)
	return result
}

// CompleteDispatch stamps the completion time exactly once.
func (c *DispatchUseCase) CompleteDispatch(ctx context.Context, request *model.CompleteDispatchRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	ok, err := c.DispatchRepository.Complete(ctx, request.DispatchID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error completing dispatch: %v", err)
		result.Error = errObj
		c.Log.Error("dispatch-usecase", errObj.Message, "CompleteDispatch", "")
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = "dispatch record not found or already completed"
		result.Error = errObj
		return result
	}

	record, err := c.DispatchRepository.FindByID(ctx, request.DispatchID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error reading dispatch record: %v", err)
		result.Error = errObj
		c.Log.Error("dispatch-usecase", errObj.Message, "CompleteDispatch", "")
		return result
	}

	c.Log.Info("dispatch-usecase", "dispatch completed", "CompleteDispatch", record.OrderID)
	result.Data = converter.DispatchToResponse(record)
	return result
}

func (c *DispatchUseCase) ListDispatches(ctx context.Context) utils.Result {
	var result utils.Result

	records, err := c.DispatchRepository.List(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error listing dispatch records: %v", err)
		result.Error = errObj
		c.Log.Error("dispatch-usecase", errObj.Message, "ListDispatches", "")
		return result
	}

	responses := make([]model.DispatchResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *converter.DispatchToResponse(&records[i]))
	}
	result.Data = responses
	return result
}
