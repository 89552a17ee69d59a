package service

import (
	"context"
	"sync"
	"sync/atomic"

	"patient-management-service/internal/models"
)

// mockSender is a PayloadSender that records every payload it is given.
type mockSender struct {
	SendFunc func(ctx context.Context, payload *models.FMSPayload) (int, error)

	mu        sync.Mutex
	payloads  []*models.FMSPayload
	callCount int32
}

var _ PayloadSender = (*mockSender)(nil)

func (m *mockSender) Send(ctx context.Context, payload *models.FMSPayload) (int, error) {
	atomic.AddInt32(&m.callCount, 1)
	m.mu.Lock()
	m.payloads = append(m.payloads, payload)
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, payload)
	}
	return 200, nil
}

func (m *mockSender) Calls() int32 {
	return atomic.LoadInt32(&m.callCount)
}

func (m *mockSender) Last() *models.FMSPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.payloads) == 0 {
		return nil
	}
	return m.payloads[len(m.payloads)-1]
}
