package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// fakeConsole is an httptest stand-in for the service console.
type fakeConsole struct {
	streamRunning bool
	masterRunning bool
	statusHits    atomic.Int64
	posts         atomic.Int64
	failing       atomic.Bool
}

func (f *fakeConsole) handler() http.Handler {
	mux := http.NewServeMux()
	reply := func(w http.ResponseWriter, v any) {
		if f.failing.Load() {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("GET /api/stream/status", func(w http.ResponseWriter, r *http.Request) {
		f.statusHits.Add(1)
		reply(w, map[string]any{"running": f.streamRunning, "camera_id": 2, "camera_port": 5001})
	})
	mux.HandleFunc("GET /api/master/status", func(w http.ResponseWriter, r *http.Request) {
		f.statusHits.Add(1)
		reply(w, map[string]any{"running": f.masterRunning})
	})
	mux.HandleFunc("GET /api/urls", func(w http.ResponseWriter, r *http.Request) {
		f.statusHits.Add(1)
		reply(w, map[string]any{"stream_port": 5001, "master_port": 5050, "predict_port": 5100, "camera_id": 2})
	})
	mux.HandleFunc("POST /api/{svc}/{action}", func(w http.ResponseWriter, r *http.Request) {
		f.posts.Add(1)
		if r.PathValue("action") == "start" {
			f.streamRunning = true
		}
		reply(w, map[string]any{"ok": true, "message": "started"})
	})
	return mux
}

func testConfig(url string) Config {
	return Config{URL: url, StreamPort: 5001, MasterPort: 5050, PredictPort: 5100, PollInterval: time.Second}
}

func TestRefreshMergesStatus(t *testing.T) {
	fake := &fakeConsole{streamRunning: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL))
	client.Refresh(context.Background())

	status, ok := client.Last()
	if !ok {
		t.Fatal("Last() empty after a successful refresh")
	}
	if !status.StreamRunning || status.MasterRunning {
		t.Errorf("merged status = %+v, want stream running, master stopped", status)
	}
	if status.StreamPort != 5001 || status.MasterPort != 5050 || status.PredictPort != 5100 || status.CameraID != 2 {
		t.Errorf("ports not merged: %+v", status)
	}
	if client.Degraded() {
		t.Error("Degraded() after a successful refresh")
	}
	if got := client.StatusText(); !strings.Contains(got, "stream running") {
		t.Errorf("StatusText() = %q", got)
	}
}

func TestRefreshFailureRetainsCache(t *testing.T) {
	fake := &fakeConsole{streamRunning: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL))
	client.Refresh(context.Background())
	before, _ := client.Last()

	fake.failing.Store(true)
	client.Refresh(context.Background())

	after, ok := client.Last()
	if !ok || after != before {
		t.Errorf("failed poll altered the cache: %+v -> %+v", before, after)
	}
	if !client.Degraded() {
		t.Error("Degraded() false after a failed poll")
	}
	if got := client.StatusText(); !strings.Contains(got, "unreachable") {
		t.Errorf("StatusText() = %q, want a degraded indicator", got)
	}
}

func TestStatusTextWithoutCache(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // dead console

	client := New(testConfig(srv.URL))
	client.Refresh(context.Background())
	if got := client.StatusText(); !strings.Contains(got, "no status yet") {
		t.Errorf("StatusText() = %q, want the no-cache degraded text", got)
	}
}

func TestStartForcesRefresh(t *testing.T) {
	fake := &fakeConsole{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL))
	if err := client.Start(context.Background(), Stream); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if fake.posts.Load() != 1 {
		t.Errorf("posts = %d, want 1", fake.posts.Load())
	}
	// The forced refresh polled the three status endpoints.
	if fake.statusHits.Load() != 3 {
		t.Errorf("status hits = %d, want 3 from the forced refresh", fake.statusHits.Load())
	}
	status, ok := client.Last()
	if !ok || !status.StreamRunning {
		t.Errorf("cache after Start() = %+v, %v; want the refreshed state", status, ok)
	}
	if client.Busy() {
		t.Error("Busy() still set after Start() returned")
	}
}

func TestStartFailureReleasesBusy(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // dead console

	client := New(testConfig(srv.URL))
	if err := client.Start(context.Background(), Master); err == nil {
		t.Fatal("Start() against a dead console succeeded")
	}
	if client.Busy() {
		t.Error("Busy() must always be released, even on failure")
	}
	if !client.Degraded() {
		t.Error("the forced refresh after a failed Start() should degrade the status")
	}
}

func TestServiceURL(t *testing.T) {
	fake := &fakeConsole{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL))
	// Empty cache lazily triggers a refresh.
	got, err := client.ServiceURL(context.Background(), Master)
	if err != nil {
		t.Fatalf("ServiceURL() unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "http://127.0.0.1:") || !strings.HasSuffix(got, ":5050") {
		t.Errorf("ServiceURL(master) = %q, want the console host with port 5050", got)
	}
	if fake.statusHits.Load() == 0 {
		t.Error("empty cache did not trigger a lazy refresh")
	}
}

func TestServiceURLFallsBackToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // dead console, no cache possible

	client := New(testConfig(srv.URL))
	got, err := client.ServiceURL(context.Background(), Predict)
	if err != nil {
		t.Fatalf("ServiceURL() unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, ":5100") {
		t.Errorf("ServiceURL(predict) = %q, want the default port 5100", got)
	}
}

func TestPollerStartStop(t *testing.T) {
	fake := &fakeConsole{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL))
	poller := NewPoller(client, 10*time.Millisecond)
	poller.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	poller.Stop()

	hits := fake.statusHits.Load()
	if hits < 6 { // at least the immediate poll plus one tick
		t.Errorf("status hits = %d, want repeated polling", hits)
	}
	time.Sleep(40 * time.Millisecond)
	if got := fake.statusHits.Load(); got != hits {
		t.Errorf("poller still polling after Stop(): %d -> %d", hits, got)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("CONSOLE_URL", "http://stall:5000")
	t.Setenv("CONSOLE_POLL_INTERVAL", "2s")
	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() unexpected error: %v", err)
	}
	if cfg.URL != "http://stall:5000" || cfg.PollInterval != 2*time.Second {
		t.Errorf("ParseEnv() = %+v", cfg)
	}
	if cfg.StreamPort != 5001 || cfg.MasterPort != 5050 || cfg.PredictPort != 5100 {
		t.Errorf("default ports = %+v", cfg)
	}
}
