package game

import "sync"

// mailbox queues completions of asynchronous service calls. They are
// applied on the game goroutine at the start of the next tick.
type mailbox struct {
	mu      sync.Mutex
	pending []func()
}

func (m *mailbox) post(fn func()) {
	m.mu.Lock()
	m.pending = append(m.pending, fn)
	m.mu.Unlock()
}

func (m *mailbox) drain() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// deliver wraps a completion so that it runs through the mailbox.
func deliver[T any](m *mailbox, fn func(T)) func(T) {
	return func(v T) {
		m.post(func() { fn(v) })
	}
}

// deliver2 is deliver for two-value completions.
func deliver2[A, B any](m *mailbox, fn func(A, B)) func(A, B) {
	return func(a A, b B) {
		m.post(func() { fn(a, b) })
	}
}
