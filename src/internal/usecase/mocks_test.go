package usecase

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"
	"kitchen-service/src/pkg/log"
)

// quietLog never touches the underlying logrus instance.
var quietLog = log.Log{LogLevel: 99}

type fakeSettingsStore struct {
	settings *entity.Settings
	getErr   error
	updated  *entity.Settings
}

func (f *fakeSettingsStore) Get(ctx context.Context) (*entity.Settings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.settings == nil {
		return &entity.Settings{ID: 1}, nil
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsStore) Update(ctx context.Context, settings *entity.Settings) error {
	f.updated = settings
	return nil
}

type fakeCouponStore struct {
	mu      sync.Mutex
	coupons map[string]*entity.Coupon

	redeems  int
	releases int
}

func newFakeCouponStore(coupons ...*entity.Coupon) *fakeCouponStore {
	store := &fakeCouponStore{coupons: map[string]*entity.Coupon{}}
	for _, c := range coupons {
		store.coupons[c.Code] = c
	}
	return store
}

func (f *fakeCouponStore) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	coupon, ok := f.coupons[code]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *coupon
	return &cp, nil
}

func (f *fakeCouponStore) FindActive(ctx context.Context) ([]entity.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Coupon
	for _, c := range f.coupons {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCouponStore) List(ctx context.Context) ([]entity.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Coupon
	for _, c := range f.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCouponStore) Insert(ctx context.Context, coupon *entity.Coupon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coupons[coupon.Code] = coupon
	return nil
}

func (f *fakeCouponStore) Update(ctx context.Context, coupon *entity.Coupon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coupons[coupon.Code] = coupon
	return nil
}

func (f *fakeCouponStore) Delete(ctx context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.coupons, code)
	return nil
}

// Redeem mirrors the guarded UPDATE: the increment happens only while the
// usage limit holds, atomically.
func (f *fakeCouponStore) Redeem(ctx context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	coupon, ok := f.coupons[code]
	if !ok || !coupon.IsActive || coupon.UsageCount >= coupon.UsageLimit {
		return false, nil
	}
	coupon.UsageCount++
	f.redeems++
	return true, nil
}

func (f *fakeCouponStore) Release(ctx context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if coupon, ok := f.coupons[code]; ok && coupon.UsageCount > 0 {
		coupon.UsageCount--
	}
	f.releases++
	return nil
}

type fakeMenuStore struct {
	prices map[string]entity.MenuItemPrice
}

func (f *fakeMenuStore) FindPrices(ctx context.Context, menuItemIDs []string) (map[string]entity.MenuItemPrice, error) {
	return f.prices, nil
}

type fakeOrderStore struct {
	mu       sync.Mutex
	orders   map[string]*entity.Order
	attempts map[string][]entity.PaymentAttempt

	insertErr error
	inserted  int
}

func newFakeOrderStore(orders ...*entity.Order) *fakeOrderStore {
	store := &fakeOrderStore{
		orders:   map[string]*entity.Order{},
		attempts: map[string][]entity.PaymentAttempt{},
	}
	for _, o := range orders {
		store.orders[o.ID] = o
	}
	return store
}

func (f *fakeOrderStore) Insert(ctx context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.orders[order.ID] = order
	f.inserted++
	return nil
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderStore) FindByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) List(ctx context.Context) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, orderID, fromStatus, toStatus string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.OrderStatus != fromStatus {
		return false, nil
	}
	order.OrderStatus = toStatus
	return true, nil
}

func (f *fakeOrderStore) UpdatePaymentStatus(ctx context.Context, orderID string, fromStatuses []string, toStatus string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return false, nil
	}
	for _, from := range fromStatuses {
		if order.PaymentStatus == from {
			order.PaymentStatus = toStatus
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderStore) SetGatewayOrderID(ctx context.Context, orderID, gatewayOrderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return sql.ErrNoRows
	}
	order.GatewayOrderID = gatewayOrderID
	return nil
}

func (f *fakeOrderStore) InsertPaymentAttempt(ctx context.Context, attempt *entity.PaymentAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts[attempt.OrderID] = append(f.attempts[attempt.OrderID], *attempt)
	return nil
}

func (f *fakeOrderStore) FindPaymentAttempts(ctx context.Context, orderID string) ([]entity.PaymentAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.PaymentAttempt{}, f.attempts[orderID]...), nil
}

func (f *fakeOrderStore) MarkAttemptsVerified(ctx context.Context, orderID string) error {
	return nil
}

type fakeDispatchStore struct {
	mu      sync.Mutex
	records map[int64]*entity.DispatchRecord
	nextID  int64
}

func newFakeDispatchStore() *fakeDispatchStore {
	return &fakeDispatchStore{records: map[int64]*entity.DispatchRecord{}}
}

func (f *fakeDispatchStore) Insert(ctx context.Context, record *entity.DispatchRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	record.ID = f.nextID
	f.records[record.ID] = record
	return nil
}

func (f *fakeDispatchStore) FindByID(ctx context.Context, id int64) (*entity.DispatchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *record
	return &cp, nil
}

func (f *fakeDispatchStore) FindByOrderID(ctx context.Context, orderID string) (*entity.DispatchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, record := range f.records {
		if record.OrderID == orderID {
			cp := *record
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeDispatchStore) List(ctx context.Context) ([]entity.DispatchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.DispatchRecord
	for _, record := range f.records {
		out = append(out, *record)
	}
	return out, nil
}

func (f *fakeDispatchStore) Complete(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok || record.CompletionTime != nil {
		return false, nil
	}
	now := time.Now()
	record.CompletionTime = &now
	return true, nil
}

type fakePublisher struct {
	mu      sync.Mutex
	created []*model.OrderEvent
	status  []*model.OrderEvent
	payment []*model.PaymentEvent
}

func (f *fakePublisher) SendOrderCreated(event *model.OrderEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, event)
	return nil
}

func (f *fakePublisher) SendStatusChanged(event *model.OrderEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = append(f.status, event)
	return nil
}

func (f *fakePublisher) SendPaymentUpdated(event *model.PaymentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payment = append(f.payment, event)
	return nil
}

type fakeGateway struct {
	valid bool
}

func (f *fakeGateway) CreateSession(orderID string, amount int64) *model.GatewaySessionResponse {
	return &model.GatewaySessionResponse{
		GatewaySessionID: "session_test",
		Amount:           amount,
		Currency:         "INR",
		Key:              "key_test",
	}
}

func (f *fakeGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return f.valid
}
