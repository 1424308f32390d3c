package testutil

import (
	"context"
	"sync"
	"time"
)

// MockRedisClient is an in-memory xredis.Client. Unset keys behave like a
// cache miss, matching the real client's redis.Nil handling.
type MockRedisClient struct {
	mutex  sync.Mutex
	values map[string]int64
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{values: map[string]int64{}}
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, key := range keys {
		delete(m.values, key)
	}

	return nil
}

func (m *MockRedisClient) IncrBy(ctx context.Context, key string, value int64) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] += value
	return m.values[key], nil
}

func (m *MockRedisClient) GetInt(ctx context.Context, key string) (int64, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	n, ok := m.values[key]
	return n, ok, nil
}

func (m *MockRedisClient) SetInt(ctx context.Context, key string, value int64, ttl time.Duration) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = value
	return nil
}
