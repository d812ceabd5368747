package stream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"
)

// Client pulls values from a remote sequence
type Client struct {
	conn    *websocket.Conn
	kind    Kind
	session string
}

// Dial opens a sequence for seed and offset on the server at addr
func Dial(ctx context.Context, addr string, seed string, offset int64, kind Kind) (*Client, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("parse connect address: %w", err)
	}
	q := u.Query()
	q.Set("seed", seed)
	q.Set("offset", strconv.FormatInt(offset, 10))
	q.Set("kind", string(kind))
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Client{conn: conn, kind: kind}, nil
}

// Session returns the server assigned id, known after the first Pull
func (c *Client) Session() string {
	return c.session
}

// Pull requests n values; reset rewinds the remote sequence first
func (c *Client) Pull(n int, reset bool) (*Response, error) {
	if err := c.conn.WriteJSON(&Request{N: n, Reset: reset}); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	var resp Response
	if err := c.conn.ReadJSON(&resp); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.session = resp.Session
	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}
	return &resp, nil
}

func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
