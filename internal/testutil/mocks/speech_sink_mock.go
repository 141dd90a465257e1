package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSink is a mock implementation of speech.Sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Speak(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}
