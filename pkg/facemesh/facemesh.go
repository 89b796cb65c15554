package facemesh

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type IFaceMesh interface {
	ProcessFrame(frame []byte) (*DetectionResult, error)
	IsConnected() bool
	Reconnect() error
	Close()
}

type faceMeshClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// New dials the face-mesh sidecar in the background. A failed initial dial is
// not fatal; ProcessFrame reconnects on demand.
func New() IFaceMesh {
	client := &faceMeshClient{
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Reconnect(); err != nil {
			log.Printf("Initial connection to face-mesh service failed: %v. Will retry on demand.", err)
		} else {
			log.Printf("Successfully connected to face-mesh service")
		}
	}()

	return client
}

func (c *faceMeshClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *faceMeshClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reconnectLocked()
}

func (c *faceMeshClient) reconnectLocked() error {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("FACEMESH_WS_URL")
	if url == "" {
		return errors.New("FACEMESH_WS_URL not configured")
	}

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		if err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout)); err != nil {
			log.Printf("Error sending pong to face-mesh service: %v", err)
		}
		return nil
	})

	c.conn = conn
	return nil
}

// ProcessFrame sends one encoded image frame and waits for the landmark set.
// On a broken connection it reconnects and retries the frame once.
func (c *faceMeshClient) ProcessFrame(frame []byte) (*DetectionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		if err := c.reconnectLocked(); err != nil {
			return nil, err
		}
	}

	result, err := c.exchangeLocked(frame)
	if err == nil {
		return result, nil
	}

	if reconnectErr := c.reconnectLocked(); reconnectErr != nil {
		return nil, fmt.Errorf("face-mesh exchange failed: %v, reconnect failed: %w", err, reconnectErr)
	}

	return c.exchangeLocked(frame)
}

func (c *faceMeshClient) exchangeLocked(frame []byte) (*DetectionResult, error) {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return nil, err
	}
	if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return nil, err
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return nil, err
	}
	_, message, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var result DetectionResult
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("invalid face-mesh response: %w", err)
	}

	return &result, nil
}

func (c *faceMeshClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
