package usecase

import (
	"context"
	"fmt"
	"time"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/gateway/payment"
	"kitchen-service/src/internal/model"
	"kitchen-service/src/internal/model/converter"
	"kitchen-service/src/internal/repository"
	httpError "kitchen-service/src/pkg/http-error"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type PaymentUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	OrderRepository repository.OrderStore
	Gateway         payment.Gateway
	OrderProducer   OrderEventPublisher
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository repository.OrderStore,
	gateway payment.Gateway,
	orderProducer OrderEventPublisher,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:             logger,
		Validate:        validate,
		OrderRepository: orderRepository,
		Gateway:         gateway,
		OrderProducer:   orderProducer,
	}
}

// SubmitManualPaymentRef records the customer's self-reported UPI transaction
// id and moves the order to Verifying. Safe to call twice: an order already
// Paid, or the same reference resubmitted, is a no-op.
func (c *PaymentUseCase) SubmitManualPaymentRef(ctx context.Context, request *model.SubmitManualPaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "SubmitManualPaymentRef", utils.ConvertString(request))
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "SubmitManualPaymentRef", utils.ConvertString(err))
		return result
	}

	if order.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "this order belongs to another customer"
		result.Error = errObj
		return result
	}

	if order.PaymentMode != entity.PaymentModeUPI {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("order was placed with %s, not UPI", order.PaymentMode)
		result.Error = errObj
		return result
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		result.Data = converter.OrderToResponse(order)
		return result
	}

	attempts, err := c.OrderRepository.FindPaymentAttempts(ctx, order.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error reading payment attempts: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "SubmitManualPaymentRef", order.ID)
		return result
	}
	alreadySubmitted := false
	for _, a := range attempts {
		if a.TransactionRef == request.TransactionID {
			alreadySubmitted = true
			break
		}
	}

	if !alreadySubmitted {
		attempt := &entity.PaymentAttempt{
			OrderID:            order.ID,
			TransactionRef:     request.TransactionID,
			VerificationMethod: entity.VerificationMethodManual,
		}
		if err := c.OrderRepository.InsertPaymentAttempt(ctx, attempt); err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("error recording payment reference: %v", err)
			result.Error = errObj
			c.Log.Error("payment-usecase", errObj.Message, "SubmitManualPaymentRef", order.ID)
			return result
		}
	}

	ok, err := c.OrderRepository.UpdatePaymentStatus(ctx, order.ID,
		[]string{entity.PaymentStatusUnpaid, entity.PaymentStatusVerifying, entity.PaymentStatusFailed},
		entity.PaymentStatusVerifying)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error updating payment status: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "SubmitManualPaymentRef", order.ID)
		return result
	}
	if ok {
		order.PaymentStatus = entity.PaymentStatusVerifying
		c.publishPaymentEvent(order, entity.VerificationMethodManual)
	}

	c.Log.Info("payment-usecase", "manual payment reference recorded", "SubmitManualPaymentRef", order.ID)
	result.Data = converter.OrderToResponse(order)
	return result
}

// ConfirmManualPayment is the operator decision on a submitted UPI transfer.
// Rejection marks the payment Failed but does not cancel the order.
func (c *PaymentUseCase) ConfirmManualPayment(ctx context.Context, request *model.ConfirmManualPaymentRequest) utils.Result {
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
		c.Log.Error("payment-usecase", errObj.Message, "ConfirmManualPayment", utils.ConvertString(err))
		return result
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		result.Data = converter.OrderToResponse(order)
		return result
	}

	toStatus := entity.PaymentStatusFailed
	if request.Approve {
		toStatus = entity.PaymentStatusPaid
	}

	ok, err := c.OrderRepository.UpdatePaymentStatus(ctx, order.ID,
		[]string{entity.PaymentStatusVerifying}, toStatus)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error updating payment status: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "ConfirmManualPayment", order.ID)
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order %s is not awaiting verification", order.OrderCode)
		result.Error = errObj
		return result
	}

	order.PaymentStatus = toStatus
	if toStatus == entity.PaymentStatusPaid {
		if err := c.OrderRepository.MarkAttemptsVerified(ctx, order.ID); err != nil {
			c.Log.Error("payment-usecase", fmt.Sprintf("failed to stamp payment attempts: %v", err), "ConfirmManualPayment", order.ID)
		}
	}
	c.publishPaymentEvent(order, entity.VerificationMethodManual)

	c.Log.Info("payment-usecase", fmt.Sprintf("manual payment %s", toStatus), "ConfirmManualPayment", order.ID)
	result.Data = converter.OrderToResponse(order)
	return result
}

// CreateGatewaySession asks the gateway for a checkout session keyed by the
// order and its payable amount.
func (c *PaymentUseCase) CreateGatewaySession(ctx context.Context, request *model.CreateGatewaySessionRequest) utils.Result {
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
		c.Log.Error("payment-usecase", errObj.Message, "CreateGatewaySession", utils.ConvertString(err))
		return result
	}

	if order.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "this order belongs to another customer"
		result.Error = errObj
		return result
	}

	if order.PaymentMode != entity.PaymentModeOnline {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("order was placed with %s, not Online", order.PaymentMode)
		result.Error = errObj
		return result
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		errObj := httpError.NewConflict()
		errObj.Message = "order is already paid"
		result.Error = errObj
		return result
	}

	session := c.Gateway.CreateSession(order.ID, order.PayableAmount)

	// The session id is the only thing a later callback can be matched
	// against, so it must be on the row before the session reaches the client.
	if err := c.OrderRepository.SetGatewayOrderID(ctx, order.ID, session.GatewaySessionID); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error binding gateway session: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "CreateGatewaySession", order.ID)
		return result
	}

	c.Log.Info("payment-usecase", "gateway session created", "CreateGatewaySession", order.ID)
	result.Data = session
	return result
}

// VerifyGatewayCallback is the trust boundary for online payments: nothing in
// the callback is believed until the signature checks out against the gateway
// secret. A replayed callback for an already-paid order is a no-op.
func (c *PaymentUseCase) VerifyGatewayCallback(ctx context.Context, request *model.GatewayCallbackRequest) utils.Result {
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
		c.Log.Error("payment-usecase", errObj.Message, "VerifyGatewayCallback", utils.ConvertString(err))
		return result
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		result.Data = converter.OrderToResponse(order)
		return result
	}

	// A signed pair proves the gateway saw a payment, not that it was for
	// this order. Only the session bound at CreateGatewaySession may settle it.
	if order.GatewayOrderID == "" || request.GatewayOrderID != order.GatewayOrderID {
		errObj := httpError.NewBadRequest()
		errObj.Message = "payment verification failed: gateway order does not belong to this order"
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "VerifyGatewayCallback", order.ID)
		return result
	}

	if !c.Gateway.VerifySignature(request.GatewayOrderID, request.GatewayPaymentID, request.Signature) {
		errObj := httpError.NewBadRequest()
		errObj.Message = "payment verification failed: signature mismatch"
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "VerifyGatewayCallback", order.ID)
		return result
	}

	now := time.Now()
	attempt := &entity.PaymentAttempt{
		OrderID:            order.ID,
		TransactionRef:     request.GatewayPaymentID,
		VerificationMethod: entity.VerificationMethodGateway,
		VerifiedAt:         &now,
	}
	if err := c.OrderRepository.InsertPaymentAttempt(ctx, attempt); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error recording payment attempt: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "VerifyGatewayCallback", order.ID)
		return result
	}

	ok, err := c.OrderRepository.UpdatePaymentStatus(ctx, order.ID,
		[]string{entity.PaymentStatusUnpaid, entity.PaymentStatusVerifying, entity.PaymentStatusFailed},
		entity.PaymentStatusPaid)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error updating payment status: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "VerifyGatewayCallback", order.ID)
		return result
	}
	if ok {
		order.PaymentStatus = entity.PaymentStatusPaid
		c.publishPaymentEvent(order, entity.VerificationMethodGateway)
	}

	c.Log.Info("payment-usecase", "gateway payment verified", "VerifyGatewayCallback", order.ID)
	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *PaymentUseCase) publishPaymentEvent(order *entity.Order, method string) {
	if c.OrderProducer == nil {
		return
	}
	event := converter.OrderToPaymentEvent(order, method)
	if err := c.OrderProducer.SendPaymentUpdated(event); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("failed to publish payment event: %v", err), "publishPaymentEvent", order.ID)
	}
}
