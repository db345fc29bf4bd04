package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/usecase/dto"
)

// MockRecreationResourceRepository is a mock of RecreationResourceRepository
type MockRecreationResourceRepository struct {
	mock.Mock
}

func (m *MockRecreationResourceRepository) FindByID(ctx context.Context, id string, shape domain.SelectShape) (*domain.RecreationResource, error) {
	args := m.Called(ctx, id, shape)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecreationResource), args.Error(1)
}

func (m *MockRecreationResourceRepository) FindSpatialFeatureGeometry(ctx context.Context, id string) ([]domain.SpatialFeatureGeometry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpatialFeatureGeometry), args.Error(1)
}

func (m *MockRecreationResourceRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecreationResourceRepository) UpdateActivities(ctx context.Context, id string, codes []int) error {
	args := m.Called(ctx, id, codes)
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

func (m *MockCacheRepository) GetResourceDetail(ctx context.Context, id string, sizeCodes []string) (*dto.RecreationResourceDetail, error) {
	args := m.Called(ctx, id, sizeCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecreationResourceDetail), args.Error(1)
}

func (m *MockCacheRepository) SetResourceDetail(ctx context.Context, id string, sizeCodes []string, detail *dto.RecreationResourceDetail, ttl time.Duration) error {
	args := m.Called(ctx, id, sizeCodes, detail, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateResource(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
