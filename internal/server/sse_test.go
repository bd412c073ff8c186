package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sseEvent struct {
	name string
	data string
}

func readEvent(t *testing.T, r *bufio.Reader) sseEvent {
	t.Helper()
	var ev sseEvent
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if ev.name != "" {
				return ev
			}
		case strings.HasPrefix(line, "event: "):
			ev.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			ev.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestEvents_StreamsHubEvents(t *testing.T) {
	s := newTestServer(t)
	s.ws.Save()

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)

	ev := readEvent(t, r)
	assert.Equal(t, notify.EventLoading, ev.name)
	assert.JSONEq(t, `{"active":false}`, ev.data)

	// notifications still inside their TTL are replayed
	ev = readEvent(t, r)
	assert.Equal(t, notify.EventNotification, ev.name)
	var n notify.Notification
	require.NoError(t, json.Unmarshal([]byte(ev.data), &n))
	assert.Equal(t, workspace.MsgSaved, n.Message)

	s.ws.AddSkill("Go")
	ev = readEvent(t, r)
	assert.Equal(t, notify.EventPreview, ev.name)
	assert.JSONEq(t, `{"revision":1,"template":"classic"}`, ev.data)
}

func TestEvents_EndOnShutdown(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	r := bufio.NewReader(resp.Body)
	readEvent(t, r)

	s.closeStreams()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, err := r.ReadString('\n'); err != nil {
				return
			}
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after shutdown began")
	}
}
