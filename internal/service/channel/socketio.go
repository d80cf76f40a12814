package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	handshakeTimeout = 20 * time.Second
	writeWait        = 5 * time.Second
	readLimit        = 512 * 1024
)

// Engine.IO v4 packet types and the Socket.IO packets carried in "4" messages.
const (
	packetOpen         = "0"
	packetPing         = "2"
	packetPong         = "3"
	packetConnect      = "40"
	packetDisconnect   = "41"
	packetEvent        = "42"
	packetConnectError = "44"
	packetClose        = "1"
)

var (
	ErrHandshake        = errors.New("socket.io handshake failed")
	ErrServerDisconnect = errors.New("socket.io server disconnected")
)

// SocketIO dials a Socket.IO server over the WebSocket transport, scoping the
// connection to a tenant with the tenantId query parameter.
type SocketIO struct {
	url     string
	dialer  *websocket.Dialer
	timeout time.Duration
}

func NewSocketIO(rawURL string) *SocketIO {
	return &SocketIO{
		url: rawURL,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
		},
		timeout: handshakeTimeout,
	}
}

type openPacket struct {
	SID          string `json:"sid"`
	PingInterval int    `json:"pingInterval"`
	PingTimeout  int    `json:"pingTimeout"`
}

func (s *SocketIO) Dial(ctx context.Context, tenantID string) (Conn, error) {
	endpoint, err := url.Parse(s.url)
	if err != nil {
		return nil, fmt.Errorf("invalid push url: %w", err)
	}
	query := endpoint.Query()
	query.Set("EIO", "4")
	query.Set("transport", "websocket")
	query.Set("tenantId", tenantID)
	endpoint.RawQuery = query.Encode()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ws, _, err := s.dialer.DialContext(ctx, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	conn := &socketConn{ws: ws}
	stop := context.AfterFunc(ctx, func() { _ = ws.Close() })
	defer stop()

	if err := conn.handshake(); err != nil {
		_ = ws.Close()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return conn, nil
}

type socketConn struct {
	ws         *websocket.Conn
	writeMu    sync.Mutex
	pingWindow time.Duration
	closeOnce  sync.Once
}

func (c *socketConn) handshake() error {
	c.ws.SetReadLimit(readLimit)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return err
		}
		frame := string(data)

		switch {
		case strings.HasPrefix(frame, packetConnect):
			c.extendDeadline()
			return nil
		case strings.HasPrefix(frame, packetConnectError):
			return fmt.Errorf("%w: %s", ErrHandshake, strings.TrimPrefix(frame, packetConnectError))
		case frame == packetPing:
			if err := c.write(packetPong); err != nil {
				return err
			}
		case strings.HasPrefix(frame, packetOpen):
			var open openPacket
			if err := json.Unmarshal(data[1:], &open); err != nil {
				return fmt.Errorf("%w: bad open packet: %v", ErrHandshake, err)
			}
			c.pingWindow = time.Duration(open.PingInterval+open.PingTimeout) * time.Millisecond
			if err := c.write(packetConnect); err != nil {
				return err
			}
		}
	}
}

func (c *socketConn) Receive() (Message, error) {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return Message{}, err
		}
		c.extendDeadline()
		frame := string(data)

		switch {
		case frame == packetPing:
			if err := c.write(packetPong); err != nil {
				return Message{}, err
			}
		case strings.HasPrefix(frame, packetEvent):
			msg, err := parseEvent(frame[len(packetEvent):])
			if err != nil {
				continue
			}
			return msg, nil
		case strings.HasPrefix(frame, packetDisconnect), frame == packetClose:
			return Message{}, ErrServerDisconnect
		}
	}
}

func (c *socketConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		_ = c.write(packetDisconnect)
		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		c.writeMu.Unlock()
		err = c.ws.Close()
	})
	return err
}

func (c *socketConn) write(frame string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, []byte(frame))
}

func (c *socketConn) extendDeadline() {
	if c.pingWindow > 0 {
		_ = c.ws.SetReadDeadline(time.Now().Add(c.pingWindow))
	}
}

// parseEvent decodes the body of a "42" packet: an optional namespace, an
// optional ack id and a JSON array of the event name and its arguments.
func parseEvent(body string) (Message, error) {
	if strings.HasPrefix(body, "/") {
		comma := strings.IndexByte(body, ',')
		if comma < 0 {
			return Message{}, fmt.Errorf("malformed event packet")
		}
		body = body[comma+1:]
	}
	body = strings.TrimLeft(body, "0123456789")

	var parts []json.RawMessage
	if err := json.Unmarshal([]byte(body), &parts); err != nil {
		return Message{}, fmt.Errorf("malformed event packet: %w", err)
	}
	if len(parts) == 0 {
		return Message{}, fmt.Errorf("event packet without name")
	}

	var msg Message
	if err := json.Unmarshal(parts[0], &msg.Event); err != nil {
		return Message{}, fmt.Errorf("event name: %w", err)
	}
	if len(parts) > 1 {
		msg.Payload = parts[1]
	}
	return msg, nil
}
