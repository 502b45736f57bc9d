package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"RiskFolio/internal/domain/models"
	drepo "RiskFolio/internal/domain/repository"

	"github.com/gorilla/websocket"
)

// Client implements a PriceStream backed by a Finnhub-style trade WebSocket.
type Client struct {
	apiKey       string
	websocketURL string
	pingInterval time.Duration

	conn      *websocket.Conn
	connected bool
}

// New creates a new price stream client.
func New(apiKey, websocketURL string, pingInterval time.Duration) drepo.PriceStream {
	return &Client{
		apiKey:       apiKey,
		websocketURL: websocketURL,
		pingInterval: pingInterval,
	}
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect(ctx context.Context) error {
	u := c.websocketURL
	if c.apiKey != "" {
		u = fmt.Sprintf("%s?token=%s", c.websocketURL, c.apiKey)
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("price feed connect: %w", err)
	}
	c.conn = conn
	c.connected = true
	log.Printf("price feed: connected")
	return nil
}

// Subscribe subscribes to the given symbols.
func (c *Client) Subscribe(_ context.Context, symbols []string) error {
	if c.conn == nil || !c.connected {
		return fmt.Errorf("price feed not connected")
	}
	for _, s := range symbols {
		msg := map[string]string{"type": "subscribe", "symbol": s}
		if err := c.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", s, err)
		}
	}
	log.Printf("price feed: subscribed %d symbols", len(symbols))
	return nil
}

type wsTrade struct {
	S string  `json:"s"`
	P float64 `json:"p"`
	T int64   `json:"t"` // ms
}

type wsMessage struct {
	Type string    `json:"type"`
	Data []wsTrade `json:"data"`
}

// Read streams price ticks and errors until the context ends or the
// connection drops.
func (c *Client) Read(ctx context.Context) (<-chan *models.PriceTick, <-chan error) {
	ticks := make(chan *models.PriceTick, 256)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.conn != nil {
					_ = c.conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop
	go func() {
		defer close(ticks)
		defer close(errs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if c.conn == nil {
					errs <- fmt.Errorf("price feed conn nil")
					return
				}
				_, b, err := c.conn.ReadMessage()
				if err != nil {
					errs <- fmt.Errorf("price feed read: %w", err)
					return
				}
				var m wsMessage
				if err := json.Unmarshal(b, &m); err != nil {
					// ignore non-trade frames
					continue
				}
				if m.Type != "trade" {
					continue
				}
				for _, d := range m.Data {
					tick := &models.PriceTick{Symbol: d.S, Price: d.P, Timestamp: d.T / 1000}
					select {
					case ticks <- tick:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return ticks, errs
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	c.connected = false
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
