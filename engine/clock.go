package engine

import "time"

// Clock supplies frame timestamps. The real clock uses monotonic time so
// frame deltas survive wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

type monotonicClock struct{}

// NewClock creates the monotonic system clock
func NewClock() Clock {
	return monotonicClock{}
}

func (monotonicClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced clock for deterministic tests
type MockClock struct {
	current time.Time
}

// NewMockClock starts a mock clock at an arbitrary fixed instant
func NewMockClock() *MockClock {
	return &MockClock{current: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the mock clock forward
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
