package model

type SubmitManualPaymentRequest struct {
	UserID        string `json:"-" validate:"required"`
	OrderID       string `json:"orderId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required,min=4,max=64"`
}

type ConfirmManualPaymentRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Approve bool   `json:"approve"`
}

type CreateGatewaySessionRequest struct {
	UserID  string `json:"-" validate:"required"`
	OrderID string `json:"orderId" validate:"required"`
}

type GatewaySessionResponse struct {
	GatewaySessionID string `json:"gatewaySessionId"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Key              string `json:"key"`
}

type GatewayCallbackRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId" validate:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" validate:"required"`
	Signature        string `json:"signature" validate:"required"`
	OrderID          string `json:"orderId" validate:"required"`
}
