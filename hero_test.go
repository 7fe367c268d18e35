package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/typewriter"
)

// oneShotEnv serves a hero that types "Go" once and stops.
func oneShotEnv(t *testing.T) *testEnv {
	t.Helper()
	content := portfolio.Default()
	content.Roles = []string{"Go"}
	cfg := testConfig()
	cfg.Typewriter.Loop = false
	return newTestEnv(t, cfg, content)
}

func TestTypewriterStreamSendsSnapshotsUntilDone(t *testing.T) {
	env := oneShotEnv(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hero/typewriter", nil)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		env.router.ServeHTTP(rec, req)
	}()

	env.clock.WaitForTimers(1)
	env.clock.Advance(20 * time.Millisecond)

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not end after the engine finished")
	}

	body := rec.Body.String()
	if rec.Header().Get("Content-Type") != "text/event-stream" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	for _, want := range []string{`"displayText":"G"`, `"displayText":"Go","isCompleted":true`, "event:done"} {
		if !strings.Contains(body, want) {
			t.Errorf("stream is missing %q:\n%s", want, body)
		}
	}
	if strings.Index(body, "event:done") < strings.LastIndex(body, "event:snapshot") {
		t.Error("done event was not last")
	}
}

func TestTypewriterStreamStopsWithClient(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/hero/typewriter", nil).WithContext(ctx)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		env.router.ServeHTTP(httptest.NewRecorder(), req)
	}()

	env.clock.WaitForTimers(1)
	cancel()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("stream kept running after the client left")
	}
	if n := env.clock.Pending(); n != 0 {
		t.Errorf("engine left %d timers pending", n)
	}
}

func TestTypewriterSocket(t *testing.T) {
	env := oneShotEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/typewriter"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	env.clock.WaitForTimers(1)
	env.clock.Advance(20 * time.Millisecond)

	var texts []string
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v (got %v)", err, texts)
		}
		if msg.Data == nil {
			t.Fatalf("message %q has no data", msg.Type)
		}
		if msg.Type == "done" {
			if msg.Data.Text != "Go" || !msg.Data.Completed {
				t.Errorf("final snapshot = %+v", *msg.Data)
			}
			break
		}
		texts = append(texts, msg.Data.Text)
	}
	if got := strings.Join(texts, ","); got != ",G,Go" {
		t.Errorf("snapshots = %q, want \",G,Go\"", got)
	}
}

func TestOfferDropsOldest(t *testing.T) {
	ch := make(chan typewriter.Snapshot, 2)
	for _, text := range []string{"a", "ab", "abc"} {
		offer(ch, typewriter.Snapshot{Text: text})
	}
	if got := (<-ch).Text; got != "ab" {
		t.Errorf("first = %q, want ab", got)
	}
	if got := (<-ch).Text; got != "abc" {
		t.Errorf("second = %q, want abc", got)
	}
}
