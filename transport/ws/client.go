package ws

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	requestTimeout = 15 * time.Second
	maxMessageSize = 4096
)

// Client wraps one websocket connection and implements contract.Connection.
// Outgoing frames go through a buffered send channel drained by a single
// write pump, which preserves per-connection write order.
type Client struct {
	id        domain.ConnectionID
	conn      *websocket.Conn
	send      chan []byte
	addr      string
	createdAt time.Time
	log       *slog.Logger
	service   contract.IGatewayService
	closeOnce sync.Once
	closed    chan struct{}
}

var _ contract.Connection = (*Client)(nil)

func NewClient(conn *websocket.Conn, service contract.IGatewayService,
	addr string, sendBufferSize int, log *slog.Logger) *Client {
	if conn != nil {
		conn.SetReadLimit(maxMessageSize)
	}
	return &Client{
		id:        domain.ConnectionID(uuid.NewString()),
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		addr:      addr,
		createdAt: time.Now(),
		log:       log,
		service:   service,
		closed:    make(chan struct{}),
	}
}

func (c *Client) ID() domain.ConnectionID { return c.id }
func (c *Client) RemoteAddr() string      { return c.addr }
func (c *Client) CreatedAt() time.Time    { return c.createdAt }

// Push enqueues a serialized frame without blocking. A full buffer means the
// client cannot keep up; the frame is dropped and the caller gets the error.
func (c *Client) Push(frame []byte) error {
	select {
	case <-c.closed:
		return errors.ErrConnectionClosed
	default:
	}
	select {
	case c.send <- frame:
		return nil
	default:
		return errors.ErrSendBufferFull
	}
}

// Serve registers the connection with the gateway and runs both pumps. It
// returns once the connection is gone and the service has been notified.
func (c *Client) Serve() {
	c.service.Connect(c)

	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.shutdown()
		c.service.Disconnect(c)
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			c.logReadError(err)
			return
		}
		c.handleFrame(raw)
	}
}

func (c *Client) handleFrame(raw []byte) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		c.log.Debug("invalid frame", "remote", c.addr, "error", err)
		return
	}

	// Bound the collaborator calls triggered by one inbound frame, so an
	// unresponsive external provider cannot wedge the read pump for good.
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch req.Type {
	case RequestLogin:
		if err := c.service.HandleLoginRequest(ctx, c); err != nil {
			c.log.Warn("login request failed", "connection", c.id, "error", err)
		}
	case RequestHeartbeat:
		// Read deadline already refreshed by the read itself.
	case RequestAuthorize:
		var body AuthorizeRequest
		if err := json.Unmarshal(req.Data, &body); err != nil {
			c.log.Debug("invalid authorize frame", "remote", c.addr, "error", err)
			return
		}
		c.service.Authorize(ctx, c, body.Token)
	case RequestPasswordLogin:
		var body PasswordLoginRequest
		if err := json.Unmarshal(req.Data, &body); err != nil {
			c.log.Debug("invalid password login frame", "remote", c.addr, "error", err)
			return
		}
		c.service.PasswordLogin(ctx, c, body.Username, body.Password)
	default:
		c.log.Debug("unknown frame type", "type", req.Type, "remote", c.addr)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.shutdown()
	}()

	for {
		select {
		case <-c.closed:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.log.Debug("write failed", "remote", c.addr, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) shutdown() {
	c.closeOnce.Do(func() {
		close(c.closed)
		_ = c.conn.Close()
	})
}

func (c *Client) logReadError(err error) {
	switch {
	case websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure):
		c.log.Debug("client disconnected", "remote", c.addr)
	case goerrors.Is(err, io.EOF):
		c.log.Debug("connection closed", "remote", c.addr)
	default:
		c.log.Debug("read error", "remote", c.addr, "error", err)
	}
}
