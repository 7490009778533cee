package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

// Mocking repositories

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, offer model.Offer) (int64, error) {
	args := m.Called(ctx, offer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) FindByID(ctx context.Context, offerID int64) (model.Offer, error) {
	args := m.Called(ctx, offerID)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *MockOfferRepository) UpdateStatus(ctx context.Context, offerID int64, from model.OfferStatus, to model.OfferStatus) (bool, error) {
	args := m.Called(ctx, offerID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) ListActive(ctx context.Context) ([]repo.ActiveOfferRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repo.ActiveOfferRow), args.Error(1)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Reserve(ctx context.Context, offerID int64, qty int64) (bool, error) {
	args := m.Called(ctx, offerID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) Release(ctx context.Context, offerID int64, qty int64) error {
	args := m.Called(ctx, offerID, qty)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCode(ctx context.Context, code string) (repo.PickupRow, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(repo.PickupRow), args.Error(1)
}

func (m *MockOrderRepository) TransitionStatus(ctx context.Context, orderID int64, from model.OrderStatus, to model.OrderStatus) (bool, error) {
	args := m.Called(ctx, orderID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) MarkPickedUp(ctx context.Context, orderID int64, from model.OrderStatus, at time.Time) (bool, error) {
	args := m.Called(ctx, orderID, from, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListByConsumer(ctx context.Context, consumerID int64) ([]repo.ConsumerOrderRow, error) {
	args := m.Called(ctx, consumerID)
	return args.Get(0).([]repo.ConsumerOrderRow), args.Error(1)
}

func (m *MockOrderRepository) ListByEstablishment(ctx context.Context, establishmentID int64) ([]repo.EstablishmentOrderRow, error) {
	args := m.Called(ctx, establishmentID)
	return args.Get(0).([]repo.EstablishmentOrderRow), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p model.PaymentRecord) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID int64) (model.PaymentRecord, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	args := m.Called(ctx, paymentID, status)
	return args.Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r model.Review) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) FindByOrderID(ctx context.Context, orderID int64) (model.Review, bool, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.Review), args.Bool(1), args.Error(2)
}

type MockEstablishmentRepository struct {
	mock.Mock
}

func (m *MockEstablishmentRepository) Create(ctx context.Context, e model.Establishment) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEstablishmentRepository) FindByID(ctx context.Context, establishmentID int64) (model.Establishment, error) {
	args := m.Called(ctx, establishmentID)
	return args.Get(0).(model.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) FindByUserID(ctx context.Context, userID int64) (model.Establishment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Establishment), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

// トランザクションの代役。fnをそのまま実行して呼び出し回数を数える。
// ロールバック確認は「後続が呼ばれていないこと」で行う（AssertNotCalled）。
type stubTxRepos struct {
	offers    *MockOfferRepository
	inventory *MockInventoryRepository
	orders    *MockOrderRepository
	payments  *MockPaymentRepository
	reviews   *MockReviewRepository
}

func (s *stubTxRepos) Offers() repo.OfferRepository        { return s.offers }
func (s *stubTxRepos) Inventory() repo.InventoryRepository { return s.inventory }
func (s *stubTxRepos) Orders() repo.OrderRepository        { return s.orders }
func (s *stubTxRepos) Payments() repo.PaymentRepository    { return s.payments }
func (s *stubTxRepos) Reviews() repo.ReviewRepository      { return s.reviews }

type stubTxManager struct {
	repos *stubTxRepos
	calls int
}

func (m *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.calls++
	return fn(m.repos)
}

func newStubTxManager() *stubTxManager {
	return &stubTxManager{repos: &stubTxRepos{
		offers:    new(MockOfferRepository),
		inventory: new(MockInventoryRepository),
		orders:    new(MockOrderRepository),
		payments:  new(MockPaymentRepository),
		reviews:   new(MockReviewRepository),
	}}
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

type fixedCodeGenerator struct {
	code string
}

func (g *fixedCodeGenerator) Generate(consumerID int64, offerID int64, qty int64, now time.Time) string {
	return g.code
}

type stubSettlement struct {
	approved bool
}

func (s *stubSettlement) Settle(ctx context.Context, consumerID int64, amount decimal.Decimal) (SettlementResult, error) {
	return SettlementResult{
		Approved:    s.approved,
		Method:      model.PaymentMethodPix,
		ExternalRef: "ref-123",
	}, nil
}
