package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/study-api/internal/domain"
	"github.com/phrazzld/study-api/internal/generation"
)

// MockContentGenerator implements service.ContentGenerator for testing
type MockContentGenerator struct {
	// GenerateStudyContentFn allows test cases to mock the GenerateStudyContent behavior
	GenerateStudyContentFn func(ctx context.Context, topic *domain.TopicData, mode domain.Mode) (*domain.StudyContent, error)

	// Default response values
	Content *domain.StudyContent
	Err     error

	// Call tracking for verification
	GenerateStudyContentCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateStudyContent was called
		Count int

		// Topics contains all topic data passed to GenerateStudyContent calls
		Topics []*domain.TopicData

		// Modes contains all modes passed to GenerateStudyContent calls
		Modes []domain.Mode

		// Contexts contains all contexts passed to GenerateStudyContent calls
		Contexts []context.Context
	}
}

// GenerateStudyContent implements the service.ContentGenerator interface
func (m *MockContentGenerator) GenerateStudyContent(
	ctx context.Context,
	topic *domain.TopicData,
	mode domain.Mode,
) (*domain.StudyContent, error) {
	m.GenerateStudyContentCalls.mu.Lock()
	m.GenerateStudyContentCalls.Count++
	m.GenerateStudyContentCalls.Topics = append(m.GenerateStudyContentCalls.Topics, topic)
	m.GenerateStudyContentCalls.Modes = append(m.GenerateStudyContentCalls.Modes, mode)
	m.GenerateStudyContentCalls.Contexts = append(m.GenerateStudyContentCalls.Contexts, ctx)
	m.GenerateStudyContentCalls.mu.Unlock()

	if m.GenerateStudyContentFn != nil {
		return m.GenerateStudyContentFn(ctx, topic, mode)
	}

	return m.Content, m.Err
}

// CallCount returns the number of GenerateStudyContent calls so far.
func (m *MockContentGenerator) CallCount() int {
	m.GenerateStudyContentCalls.mu.Lock()
	defer m.GenerateStudyContentCalls.mu.Unlock()
	return m.GenerateStudyContentCalls.Count
}

// NewMockContentGeneratorWithContent creates a MockContentGenerator that returns the specified content
func NewMockContentGeneratorWithContent(content *domain.StudyContent) *MockContentGenerator {
	return &MockContentGenerator{
		Content: content,
	}
}

// NewMockContentGeneratorWithError creates a MockContentGenerator that returns the specified error
func NewMockContentGeneratorWithError(err error) *MockContentGenerator {
	return &MockContentGenerator{
		Err: err,
	}
}

// MockContentGeneratorThatFails creates a MockContentGenerator that simulates a failed model call
func MockContentGeneratorThatFails() *MockContentGenerator {
	return &MockContentGenerator{
		Err: &generation.Error{Stage: generation.StageSummary, Err: generation.ErrGenerationFailed},
	}
}

// MockContentGeneratorWithContentBlocked creates a MockContentGenerator that simulates content being blocked
func MockContentGeneratorWithContentBlocked() *MockContentGenerator {
	return &MockContentGenerator{
		Err: &generation.Error{Stage: generation.StageQuiz, Err: generation.ErrContentBlocked},
	}
}

// Reset resets the call tracking state
func (m *MockContentGenerator) Reset() {
	m.GenerateStudyContentCalls.mu.Lock()
	defer m.GenerateStudyContentCalls.mu.Unlock()

	m.GenerateStudyContentCalls.Count = 0
	m.GenerateStudyContentCalls.Topics = nil
	m.GenerateStudyContentCalls.Modes = nil
	m.GenerateStudyContentCalls.Contexts = nil
}
