package notify

import "sync"

// AcquireLoading engages the loading indicator and returns the func that
// releases it. Nested acquisitions keep the indicator engaged until the
// last one is released; calling the release func twice has no effect.
func (h *Hub) AcquireLoading() (release func()) {
	h.setLoading(+1)

	var once sync.Once
	return func() {
		once.Do(func() { h.setLoading(-1) })
	}
}

// Loading reports whether the indicator is engaged.
func (h *Hub) Loading() bool {
	h.loadingMu.Lock()
	defer h.loadingMu.Unlock()
	return h.loadingCount > 0
}

func (h *Hub) setLoading(delta int) {
	h.loadingMu.Lock()
	before := h.loadingCount > 0
	h.loadingCount += delta
	if h.loadingCount < 0 {
		h.loadingCount = 0
	}
	after := h.loadingCount > 0
	h.loadingMu.Unlock()

	if before != after {
		h.Publish(Event{Type: EventLoading, Data: LoadingState{Active: after}})
	}
}
