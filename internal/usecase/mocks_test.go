package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/inkatravel-api/internal/domain"
)

// MockTourRepository is a mock of TourRepository
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockTourRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockTourRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Tour, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tour), args.Error(1)
}

func (m *MockTourRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockTourRepository) SetTransportOptions(ctx context.Context, tourID string, transportIDs []string) error {
	args := m.Called(ctx, tourID, transportIDs)
	return args.Error(0)
}

// MockTransportRepository is a mock of TransportRepository
type MockTransportRepository struct {
	mock.Mock
}

func (m *MockTransportRepository) Create(ctx context.Context, transport *domain.TourTransport) error {
	args := m.Called(ctx, transport)
	return args.Error(0)
}

func (m *MockTransportRepository) Update(ctx context.Context, transport *domain.TourTransport) error {
	args := m.Called(ctx, transport)
	return args.Error(0)
}

func (m *MockTransportRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransportRepository) GetByID(ctx context.Context, id string) (*domain.TourTransport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourTransport), args.Error(1)
}

func (m *MockTransportRepository) GetBySlug(ctx context.Context, slug string) (*domain.TourTransport, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourTransport), args.Error(1)
}

func (m *MockTransportRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.TourTransport, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TourTransport), args.Error(1)
}

func (m *MockTransportRepository) List(ctx context.Context, onlyActive bool) ([]*domain.TourTransport, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TourTransport), args.Error(1)
}

func (m *MockTransportRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransportRepository) RouteCodeExists(ctx context.Context, routeCode string) (bool, error) {
	args := m.Called(ctx, routeCode)
	return args.Bool(0), args.Error(1)
}

// MockCartRepository is a mock of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetCartSummary(ctx context.Context, userID string) (*domain.CartSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartSummary), args.Error(1)
}

func (m *MockCacheRepository) SetCartSummary(ctx context.Context, summary *domain.CartSummary, ttl time.Duration) error {
	args := m.Called(ctx, summary, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteCartSummary(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCacheRepository) GetTransportRoute(ctx context.Context, routeCode string) (*domain.TransportRoute, error) {
	args := m.Called(ctx, routeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransportRoute), args.Error(1)
}

func (m *MockCacheRepository) SetTransportRoute(ctx context.Context, route *domain.TransportRoute, ttl time.Duration) error {
	args := m.Called(ctx, route, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockPreferenceRepository is a mock of PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetLanguage(ctx context.Context, userID string) (domain.Language, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Language), args.Error(1)
}

func (m *MockPreferenceRepository) SetLanguage(ctx context.Context, userID string, lang domain.Language) error {
	args := m.Called(ctx, userID, lang)
	return args.Error(0)
}

// MockDirectionsRepository is a mock of DirectionsRepository
type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) GetDrivingRoute(ctx context.Context, coordinates []domain.Coordinate) (*domain.DrivingRoute, error) {
	args := m.Called(ctx, coordinates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrivingRoute), args.Error(1)
}
