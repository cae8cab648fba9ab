package ws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/4xmen/hamgap/internal/room"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512 * 1024

	queueSize      = 256
	initialBackoff = time.Second
)

// Config carries the transport settings.
type Config struct {
	URL               string
	DialTimeout       time.Duration
	ReconnectMaxDelay time.Duration
	// InitialBackoff is the first reconnect delay. Zero means one
	// second; each retry doubles it up to ReconnectMaxDelay.
	InitialBackoff time.Duration
}

// Client maintains the WebSocket connection to the chat server. It
// registers the username after every (re)connect, decodes incoming
// frames into room events and queues outgoing chat messages. All
// events arrive on a single channel so the consumer can stay
// single-threaded.
type Client struct {
	cfg Config
	log zerolog.Logger

	events chan room.Event
	send   chan []byte

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	closeOnce sync.Once
}

func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}
	if cfg.ReconnectMaxDelay <= 0 {
		cfg.ReconnectMaxDelay = 30 * time.Second
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = initialBackoff
	}

	return &Client{
		cfg:    cfg,
		log:    log,
		events: make(chan room.Event, queueSize),
		send:   make(chan []byte, queueSize),
		done:   make(chan struct{}),
	}
}

// Events delivers decoded server frames and connection transitions.
// The channel closes when the client shuts down.
func (c *Client) Events() <-chan room.Event {
	return c.events
}

// Send queues one chat message body for transmission. Queued messages
// survive a reconnect.
func (c *Client) Send(body string) error {
	frame, err := EncodeChat(body)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case c.send <- frame:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Start connects in the background and keeps the connection alive
// until ctx is cancelled or Close is called. Call it once.
func (c *Client) Start(ctx context.Context, username string) {
	c.ctx, c.cancel = context.WithCancel(ctx)
	go c.run(username)
}

// Close tears the connection down. The event channel closes once the
// run loop has stopped.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.cancel != nil {
			c.cancel()
		}
	})
	return nil
}

func (c *Client) run(username string) {
	defer close(c.events)

	c.emit(room.ConnStateChanged{State: room.ConnConnecting})

	backoff := c.cfg.InitialBackoff
	for {
		established, err := c.session(username)
		if c.ctx.Err() != nil {
			return
		}
		if err != nil {
			c.log.Warn().Err(err).Msg("connection lost")
		}
		if established {
			backoff = c.cfg.InitialBackoff
		}

		c.emit(room.ConnStateChanged{State: room.ConnReconnecting})

		select {
		case <-c.ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > c.cfg.ReconnectMaxDelay {
			backoff = c.cfg.ReconnectMaxDelay
		}
	}
}

// session runs one connection from dial to disconnect. It reports
// whether registration went through, so the caller knows to reset the
// reconnect backoff.
func (c *Client) session(username string) (bool, error) {
	dialer := websocket.Dialer{HandshakeTimeout: c.cfg.DialTimeout}
	conn, _, err := dialer.DialContext(c.ctx, c.cfg.URL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to connect: %w", err)
	}

	frame, err := EncodeRegister(username)
	if err != nil {
		conn.Close()
		return false, err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		conn.Close()
		return false, fmt.Errorf("failed to register: %w", err)
	}

	log := c.log.With().Str("session", uuid.NewString()).Logger()
	log.Info().Str("url", c.cfg.URL).Str("username", username).Msg("connected")
	c.emit(room.ConnStateChanged{State: room.ConnOnline})

	stopWrite := make(chan struct{})
	go c.writePump(conn, stopWrite, log)

	readErr := make(chan error, 1)
	go func() { readErr <- c.readPump(conn, log) }()

	select {
	case err := <-readErr:
		close(stopWrite)
		return true, err
	case <-c.ctx.Done():
		close(stopWrite)
		conn.Close()
		<-readErr
		return true, nil
	}
}

func (c *Client) readPump(conn *websocket.Conn, log zerolog.Logger) error {
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return fmt.Errorf("read failed: %w", err)
			}
			return nil
		}
		// Any traffic proves the connection is alive, not just pongs.
		conn.SetReadDeadline(time.Now().Add(pongWait))

		ev, err := DecodeEvent(data)
		if err != nil {
			log.Debug().Err(err).Msg("skipping malformed frame")
			continue
		}
		if ev == nil {
			continue
		}
		c.emit(ev)
	}
}

func (c *Client) writePump(conn *websocket.Conn, stop <-chan struct{}, log zerolog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Debug().Err(err).Msg("write failed")
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-stop:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *Client) emit(ev room.Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Warn().Msg("event channel full, dropping")
	}
}
