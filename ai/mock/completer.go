package mock

import "context"

// MockCompleter is a test double for ai.Completer.
// It allows custom behavior injection via function fields and records every
// prompt and temperature it receives.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, Complete returns an empty JSON object.
	CompleteFunc func(ctx context.Context, prompt string, temperature float64) (string, error)

	callCount    int
	prompts      []string
	temperatures []float64
}

// NewMockCompleter creates a mock completer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockCompleter().
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete records the request and returns the injected response.
func (m *MockCompleter) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.callCount++
	m.prompts = append(m.prompts, prompt)
	m.temperatures = append(m.temperatures, temperature)

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, temperature)
	}

	return "{}", nil
}

// CallCount returns the number of times Complete was called.
func (m *MockCompleter) CallCount() int {
	return m.callCount
}

// Prompts returns the prompts received so far, in call order.
func (m *MockCompleter) Prompts() []string {
	return m.prompts
}

// Temperatures returns the sampling temperatures received so far, in call order.
func (m *MockCompleter) Temperatures() []float64 {
	return m.temperatures
}

// Reset clears recorded calls and any injected behavior.
func (m *MockCompleter) Reset() {
	m.callCount = 0
	m.prompts = nil
	m.temperatures = nil
	m.CompleteFunc = nil
}
