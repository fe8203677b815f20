package mocks

import (
	"context"
	"sync"
)

// SentEmail records a single message delivered to the MockMailer
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer captures sent messages for assertions
type MockMailer struct {
	mu   sync.Mutex
	sent []SentEmail

	// Err, when set, is returned from every Send call
	Err error
}

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send records the message
func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of all recorded messages
func (m *MockMailer) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}
