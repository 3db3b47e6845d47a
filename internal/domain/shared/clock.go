package shared

import "time"

// Clock abstracts the current time so timestamps can be fixed in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time in UTC
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return RealClock{}
}

// MockClock returns a controllable time
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock creates a MockClock starting at the given time (now if zero)
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &MockClock{CurrentTime: start}
}

func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance moves the mock clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}
