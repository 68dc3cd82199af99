package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/interacai/flowcore/pkg/events"
)

// WSEvent is one message received over the live event stream.
type WSEvent struct {
	Type     string
	Raw      []byte
	Parsed   map[string]any
	Received time.Time
}

// WSClient collects events from the live stream in the background so
// tests can assert on them after (or while) driving the scenario over
// HTTP. Events are never consumed — WaitForEvent can be called for the
// same event twice.
type WSClient struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	doneCh chan struct{}

	mu     sync.Mutex
	events []WSEvent
}

// WSConnect dials the event stream endpoint and starts the read loop.
func WSConnect(ctx context.Context, wsURL string) (*WSClient, error) {
	dialCtx, dialCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dialCancel()

	conn, _, err := websocket.Dial(dialCtx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial failed: %w", err)
	}

	readCtx, cancel := context.WithCancel(context.Background())
	c := &WSClient{
		conn:   conn,
		cancel: cancel,
		doneCh: make(chan struct{}),
	}
	go c.readLoop(readCtx)
	return c, nil
}

func (c *WSClient) readLoop(ctx context.Context) {
	defer close(c.doneCh)
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return
		}

		evt := WSEvent{Raw: data, Received: time.Now()}
		var parsed map[string]any
		if err := json.Unmarshal(data, &parsed); err == nil {
			evt.Parsed = parsed
			if t, ok := parsed["type"].(string); ok {
				evt.Type = t
			}
		}

		c.mu.Lock()
		c.events = append(c.events, evt)
		c.mu.Unlock()
	}
}

// Subscribe asks the server to deliver a channel's events on this
// connection. The confirmation (and auto catch-up replay) arrives
// asynchronously on the event list.
func (c *WSClient) Subscribe(channel string) error {
	return c.send(events.ClientMessage{Action: "subscribe", Channel: channel})
}

// Catchup requests a replay of a channel's persisted events after
// lastEventID.
func (c *WSClient) Catchup(channel string, lastEventID int) error {
	return c.send(events.ClientMessage{Action: "catchup", Channel: channel, LastEventID: &lastEventID})
}

func (c *WSClient) send(msg events.ClientMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

// Events returns a snapshot of everything received so far.
func (c *WSClient) Events() []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]WSEvent, len(c.events))
	copy(out, c.events)
	return out
}

// EventsByType filters the received events by their type field.
func (c *WSClient) EventsByType(eventType string) []WSEvent {
	var out []WSEvent
	for _, evt := range c.Events() {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

// WaitForEvent blocks until an event of the given type arrives, fatal on
// timeout. Returns the first match.
func (c *WSClient) WaitForEvent(t *testing.T, eventType string, timeout time.Duration) WSEvent {
	t.Helper()
	return c.WaitForMatch(t, timeout, eventType, func(evt WSEvent) bool {
		return evt.Type == eventType
	})
}

// WaitForMatch blocks until an event satisfies match, fatal on timeout.
// desc names what was being waited for in the failure message.
func (c *WSClient) WaitForMatch(t *testing.T, timeout time.Duration, desc string, match func(WSEvent) bool) WSEvent {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, evt := range c.Events() {
			if match(evt) {
				return evt
			}
		}
		time.Sleep(25 * time.Millisecond)
	}

	seen := make([]string, 0, len(c.Events()))
	for _, evt := range c.Events() {
		seen = append(seen, evt.Type)
	}
	t.Fatalf("timed out waiting for %s event; received: %v", desc, seen)
	return WSEvent{}
}

// Close tears the connection down and waits for the read loop to exit.
func (c *WSClient) Close() {
	c.cancel()
	_ = c.conn.CloseNow()
	<-c.doneCh
}
