package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/study-api/internal/domain"
)

// MockTopicFetcher implements service.TopicFetcher for testing
type MockTopicFetcher struct {
	// FetchTopicDataFn allows test cases to mock the FetchTopicData behavior
	FetchTopicDataFn func(ctx context.Context, topic string) (*domain.TopicData, error)

	// Default response values
	Data *domain.TopicData
	Err  error

	// Call tracking for verification
	FetchTopicDataCalls struct {
		mu sync.Mutex

		// Count tracks how many times FetchTopicData was called
		Count int

		// Topics contains all topics passed to FetchTopicData calls
		Topics []string
	}
}

// FetchTopicData implements the service.TopicFetcher interface
func (m *MockTopicFetcher) FetchTopicData(ctx context.Context, topic string) (*domain.TopicData, error) {
	m.FetchTopicDataCalls.mu.Lock()
	m.FetchTopicDataCalls.Count++
	m.FetchTopicDataCalls.Topics = append(m.FetchTopicDataCalls.Topics, topic)
	m.FetchTopicDataCalls.mu.Unlock()

	if m.FetchTopicDataFn != nil {
		return m.FetchTopicDataFn(ctx, topic)
	}

	return m.Data, m.Err
}

// CallCount returns the number of FetchTopicData calls so far.
func (m *MockTopicFetcher) CallCount() int {
	m.FetchTopicDataCalls.mu.Lock()
	defer m.FetchTopicDataCalls.mu.Unlock()
	return m.FetchTopicDataCalls.Count
}

// NewMockTopicFetcherWithData creates a MockTopicFetcher that returns the specified topic data
func NewMockTopicFetcherWithData(data *domain.TopicData) *MockTopicFetcher {
	return &MockTopicFetcher{Data: data}
}

// NewMockTopicFetcherWithError creates a MockTopicFetcher that returns the specified error
func NewMockTopicFetcherWithError(err error) *MockTopicFetcher {
	return &MockTopicFetcher{Err: err}
}

// MockTopicFetcherNotFound creates a MockTopicFetcher that reports every topic as missing
func MockTopicFetcherNotFound() *MockTopicFetcher {
	return &MockTopicFetcher{
		FetchTopicDataFn: func(_ context.Context, topic string) (*domain.TopicData, error) {
			return nil, fmt.Errorf("%w: topic %q not found on Wikipedia", domain.ErrTopicNotFound, topic)
		},
	}
}
