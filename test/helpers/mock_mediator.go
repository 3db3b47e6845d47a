package helpers

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
)

// MockMediator is a test double for the Mediator interface.
// Adapters are tested against it so that handler behavior does not leak into
// transport tests.
type MockMediator struct {
	mu        sync.Mutex
	responses map[reflect.Type]func(ctx context.Context, request common.Request) (common.Response, error)
	callLog   []common.Request
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		responses: make(map[reflect.Type]func(ctx context.Context, request common.Request) (common.Response, error)),
	}
}

// On sets the function answering requests of the same type as sample
func (m *MockMediator) On(sample common.Request, fn func(ctx context.Context, request common.Request) (common.Response, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[reflect.TypeOf(sample)] = fn
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request common.Request) (common.Response, error) {
	m.mu.Lock()
	m.callLog = append(m.callLog, request)
	fn, ok := m.responses[reflect.TypeOf(request)]
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("unsupported request type: %T", request)
	}
	return fn(ctx, request)
}

// Register is a no-op; use On to script responses
func (m *MockMediator) Register(requestType reflect.Type, handler common.RequestHandler) error {
	return nil
}

// Use is a no-op
func (m *MockMediator) Use(middleware common.Middleware) {}

// GetCallLog returns the requests that were sent
func (m *MockMediator) GetCallLog() []common.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]common.Request{}, m.callLog...)
}

// LastRequest returns the most recent request, or nil
func (m *MockMediator) LastRequest() common.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.callLog) == 0 {
		return nil
	}
	return m.callLog[len(m.callLog)-1]
}
