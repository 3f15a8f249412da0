package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Service names a sub-service the console manages.
type Service string

const (
	Stream  Service = "stream"
	Master  Service = "master"
	Predict Service = "predict"
)

// ErrBusy is returned when a start/stop is requested while another one is
// still in flight.
var ErrBusy = errors.New("console: a start/stop call is already in flight")

// Status is the merged result of one poll of the three status endpoints.
type Status struct {
	StreamRunning bool
	MasterRunning bool
	CameraID      int
	StreamPort    int
	MasterPort    int
	PredictPort   int
	At            time.Time
}

// Client polls and mutates the console's running state. It holds the last
// successful poll; a failed poll retains it and only degrades the display
// text. A timer-driven poll and a user-driven refresh may race; the later
// response overwrites the cache (last-write-wins).
type Client struct {
	cfg  Config
	http *http.Client
	busy atomic.Bool

	mu       sync.Mutex
	last     *Status // nil until the first successful poll
	degraded bool
}

// New returns a client for the console at cfg.URL.
func New(cfg Config) *Client {
	return &Client{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

type streamStatus struct {
	Running    bool `json:"running"`
	CameraID   int  `json:"camera_id"`
	CameraPort int  `json:"camera_port"`
}

type masterStatus struct {
	Running bool `json:"running"`
}

type serviceURLs struct {
	StreamPort  int `json:"stream_port"`
	MasterPort  int `json:"master_port"`
	PredictPort int `json:"predict_port"`
	CameraID    int `json:"camera_id"`
}

// Refresh polls the three status endpoints concurrently and merges the
// results into the cache. On any failure the previous cache is retained and
// the status text turns degraded; Refresh itself never fails the caller.
func (c *Client) Refresh(ctx context.Context) {
	var (
		stream streamStatus
		master masterStatus
		urls   serviceURLs
		errs   [3]error
		wg     sync.WaitGroup
	)
	wg.Add(3)
	go func() { defer wg.Done(); errs[0] = c.jget(ctx, "/api/stream/status", &stream) }()
	go func() { defer wg.Done(); errs[1] = c.jget(ctx, "/api/master/status", &master) }()
	go func() { defer wg.Done(); errs[2] = c.jget(ctx, "/api/urls", &urls) }()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := errors.Join(errs[0], errs[1], errs[2]); err != nil {
		log.Printf("console poll failed: %v", err)
		c.degraded = true
		return
	}
	c.last = &Status{
		StreamRunning: stream.Running,
		MasterRunning: master.Running,
		CameraID:      stream.CameraID,
		StreamPort:    urls.StreamPort,
		MasterPort:    urls.MasterPort,
		PredictPort:   urls.PredictPort,
		At:            time.Now(),
	}
	c.degraded = false
}

// Last returns the cached status of the last successful poll, if any.
func (c *Client) Last() (Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return Status{}, false
	}
	return *c.last, true
}

// Degraded reports whether the most recent poll failed.
func (c *Client) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}

// StatusText derives the one-line display text from the cache.
func (c *Client) StatusText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		if c.degraded {
			return "console unreachable, no status yet"
		}
		return "not polled yet"
	}
	text := fmt.Sprintf("stream %s (camera %d, port %d) | master %s (port %d)",
		onOff(c.last.StreamRunning), c.last.CameraID, c.last.StreamPort,
		onOff(c.last.MasterRunning), c.last.MasterPort)
	if c.degraded {
		text += fmt.Sprintf(" | unreachable, last seen %s", c.last.At.Format("15:04:05"))
	}
	return text
}

func onOff(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}

// Busy reports whether a start/stop call is in flight. The triggering
// control must stay disabled while it is.
func (c *Client) Busy() bool { return c.busy.Load() }

// Start asks the console to start a service, then forces a refresh strictly
// sequenced after the call resolves. The busy flag is always released,
// whatever the outcome.
func (c *Client) Start(ctx context.Context, svc Service) error {
	return c.mutate(ctx, svc, "start")
}

// Stop is the counterpart of Start.
func (c *Client) Stop(ctx context.Context, svc Service) error {
	return c.mutate(ctx, svc, "stop")
}

func (c *Client) mutate(ctx context.Context, svc Service, action string) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.busy.Store(false)

	err := c.post(ctx, fmt.Sprintf("/api/%s/%s", svc, action))
	// Forced refresh, after the mutating call resolved, success or not.
	c.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("console: %s %s: %w", action, svc, err)
	}
	return nil
}

// ServiceURL resolves http://{consoleHost}:{port} for a sub-service, using
// the cached port when a poll succeeded and the configured default
// otherwise. An empty cache lazily triggers a refresh first.
func (c *Client) ServiceURL(ctx context.Context, svc Service) (string, error) {
	if _, ok := c.Last(); !ok {
		c.Refresh(ctx)
	}
	port := c.defaultPort(svc)
	if last, ok := c.Last(); ok {
		switch svc {
		case Stream:
			port = last.StreamPort
		case Master:
			port = last.MasterPort
		case Predict:
			port = last.PredictPort
		}
	}
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("console: invalid console url %q: %w", c.cfg.URL, err)
	}
	return fmt.Sprintf("http://%s:%d", u.Hostname(), port), nil
}

func (c *Client) defaultPort(svc Service) int {
	switch svc {
	case Stream:
		return c.cfg.StreamPort
	case Master:
		return c.cfg.MasterPort
	case Predict:
		return c.cfg.PredictPort
	}
	return 0
}

// jget performs an HTTP GET and unmarshals the JSON response into data.
func (c *Client) jget(ctx context.Context, path string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v: %v", path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// post performs the mutating call and logs the ack message. Ack bodies are
// loosely shaped, so the message is extracted by path instead of a struct.
func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http POST %v: %v", path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil // ack body is optional
	}
	if jval, err := jsonpath.Get("$.message", jobj); err == nil {
		if msg, ok := jval.(string); ok {
			log.Printf("console %s: %s", path, msg)
		}
	}
	return nil
}
