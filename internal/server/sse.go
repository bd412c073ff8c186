package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/notify"
	"go.uber.org/zap"
)

// keepAliveInterval spaces comment lines that keep idle proxies from closing the stream.
const keepAliveInterval = 25 * time.Second

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteComment sends a comment line, ignored by clients.
func (s *SSEWriter) WriteComment(text string) error {
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// handleEvents streams hub events. A new subscriber first receives the
// loading state and any notifications that have not yet expired.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	hub := s.ws.Hub()
	events, cancel := hub.Subscribe()
	defer cancel()

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	backlog := []notify.Event{{Type: notify.EventLoading, Data: notify.LoadingState{Active: hub.Loading()}}}
	for _, n := range hub.Recent() {
		backlog = append(backlog, notify.Event{Type: notify.EventNotification, Data: n})
	}
	for _, ev := range backlog {
		if err := sse.WriteEvent(ev.Type, ev.Data); err != nil {
			return
		}
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-s.done:
			return
		case <-keepAlive.C:
			if err := sse.WriteComment("keep-alive"); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := sse.WriteEvent(ev.Type, ev.Data); err != nil {
				s.logger.Debug("event stream closed", zap.Error(err))
				return
			}
		}
	}
}
