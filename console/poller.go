package console

import (
	"context"
	"time"
)

// Poller refreshes a client on a fixed cadence. Unlike an always-on timer
// it is explicitly started and stopped, so tests can drive it
// deterministically and a watch command can tear it down cleanly.
type Poller struct {
	client   *Client
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewPoller returns a stopped poller refreshing client every interval.
func NewPoller(client *Client, interval time.Duration) *Poller {
	return &Poller{client: client, interval: interval}
}

// Start launches the polling loop. It refreshes once immediately, then on
// every tick until Stop is called or ctx is done. Starting a running poller
// is a no-op.
func (p *Poller) Start(ctx context.Context) {
	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		p.client.Refresh(ctx)
		for {
			select {
			case <-ticker.C:
				p.client.Refresh(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit. Stopping a stopped poller
// is a no-op. No in-flight poll is cancelled; its response may still land
// in the cache.
func (p *Poller) Stop() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.stop = nil
	p.done = nil
}
