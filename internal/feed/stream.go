// Package feed consumes a live draft pick stream over WebSocket.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Message operations on the wire
const (
	OpPick      = "pick"
	OpHeartbeat = "heartbeat"
)

// Message represents a frame from the draft feed
type Message struct {
	Op   string     `json:"op"`
	Pick *PickEvent `json:"pick,omitempty"`
}

// PickEvent represents a pick announced on the live feed
type PickEvent struct {
	DraftID    string `json:"draft_id"`
	PickNumber int    `json:"pick_number"`
	TeamName   string `json:"team"`
	PlayerName string `json:"player"`
	NFLTeam    string `json:"nfl_team,omitempty"`
	Position   string `json:"position"`
}

// PickHandler is called for each pick received from the feed
type PickHandler func(event PickEvent) error

// ReconnectConfig controls reconnection behavior
type ReconnectConfig struct {
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

// DefaultReconnectConfig returns default reconnection configuration
func DefaultReconnectConfig() ReconnectConfig {
	return ReconnectConfig{
		MaxRetries:        10,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 1.5,
	}
}

// StreamClient handles the WebSocket connection to a live draft feed
type StreamClient struct {
	url             string
	reconnectConfig ReconnectConfig
	logger          *logrus.Logger

	mu              sync.RWMutex
	conn            *websocket.Conn
	isConnected     bool
	handlers        []PickHandler
	lastMessageTime time.Time
	done            chan struct{}
}

// NewStreamClient creates a new draft feed client
func NewStreamClient(url string, logger *logrus.Logger) *StreamClient {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &StreamClient{
		url:             url,
		reconnectConfig: DefaultReconnectConfig(),
		logger:          logger,
		handlers:        make([]PickHandler, 0),
	}
}

// SetReconnectConfig overrides the default reconnection behavior
func (s *StreamClient) SetReconnectConfig(cfg ReconnectConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconnectConfig = cfg
}

// AddHandler registers a pick handler
func (s *StreamClient) AddHandler(handler PickHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// Connect establishes the WebSocket connection and starts the read loop
func (s *StreamClient) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isConnected {
		return fmt.Errorf("already connected")
	}

	s.logger.WithField("url", s.url).Info("Connecting to draft feed")

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, resp, err := dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to draft feed: %w", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	s.conn = conn
	s.isConnected = true
	s.lastMessageTime = time.Now()
	s.done = make(chan struct{})

	go s.readMessages(conn, s.done)

	return nil
}

// Run connects and keeps the feed alive, reconnecting with exponential
// backoff until the context is cancelled or retries are exhausted.
func (s *StreamClient) Run(ctx context.Context) error {
	backoff := s.reconnectConfig.InitialBackoff
	retries := 0

	for {
		if err := s.Connect(ctx); err != nil {
			retries++
			if retries > s.reconnectConfig.MaxRetries {
				return fmt.Errorf("draft feed gave up after %d retries: %w", retries-1, err)
			}
			s.logger.WithError(err).WithField("backoff", backoff).Warn("Feed connect failed, retrying")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			backoff = time.Duration(float64(backoff) * s.reconnectConfig.BackoffMultiplier)
			if backoff > s.reconnectConfig.MaxBackoff {
				backoff = s.reconnectConfig.MaxBackoff
			}
			continue
		}

		// Connected; reset backoff and wait for the read loop to exit
		retries = 0
		backoff = s.reconnectConfig.InitialBackoff

		s.mu.RLock()
		done := s.done
		s.mu.RUnlock()

		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()
		case <-done:
			s.logger.Warn("Draft feed disconnected, reconnecting")
		}
	}
}

// readMessages reads frames until the connection drops
func (s *StreamClient) readMessages(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	defer conn.Close()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			s.logger.WithError(err).Debug("Feed read loop ended")
			s.mu.Lock()
			s.isConnected = false
			s.mu.Unlock()
			return
		}

		s.mu.Lock()
		s.lastMessageTime = time.Now()
		handlers := s.handlers
		s.mu.Unlock()

		switch msg.Op {
		case OpHeartbeat:
			// Nothing to do beyond updating lastMessageTime
		case OpPick:
			if msg.Pick == nil {
				s.logger.Warn("Pick frame without payload")
				continue
			}
			for _, handler := range handlers {
				if err := handler(*msg.Pick); err != nil {
					s.logger.WithError(err).Error("Pick handler error")
				}
			}
		default:
			raw, _ := json.Marshal(msg)
			s.logger.WithField("frame", string(raw)).Debug("Ignoring unknown feed frame")
		}
	}
}

// IsConnected returns whether the feed is connected
func (s *StreamClient) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isConnected
}

// LastMessageTime returns the time of the last received frame
func (s *StreamClient) LastMessageTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastMessageTime
}

// Close closes the feed connection
func (s *StreamClient) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	s.isConnected = false
	return s.conn.Close()
}
