package mocks

import (
	"context"
	"errors"
	"sync"
)

// ErrScriptExhausted is returned by MockModel when more prompts arrive than replies were scripted.
var ErrScriptExhausted = errors.New("mock model: no scripted reply left")

// ModelReply is one scripted answer from MockModel.
type ModelReply struct {
	Text string
	Err  error
}

// MockModel implements generation.Model for testing.
// Replies are consumed in order, one per GenerateText call.
type MockModel struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, prompt string) (string, error)

	// Replies are returned in order when GenerateTextFn is nil
	Replies []ModelReply

	mu      sync.Mutex
	prompts []string
}

// NewMockModel creates a MockModel that answers successive prompts with texts.
func NewMockModel(texts ...string) *MockModel {
	replies := make([]ModelReply, len(texts))
	for i, text := range texts {
		replies[i] = ModelReply{Text: text}
	}
	return &MockModel{Replies: replies}
}

// GenerateText implements the generation.Model interface
func (m *MockModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	call := len(m.prompts)
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if call >= len(m.Replies) {
		return "", ErrScriptExhausted
	}
	reply := m.Replies[call]
	return reply.Text, reply.Err
}

// Prompts returns a copy of every prompt received, in order.
func (m *MockModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// CallCount returns the number of GenerateText calls so far.
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}
