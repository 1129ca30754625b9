package lbrynet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPDoer describes the HTTP client used by the lbrynet client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues JSON-RPC calls to a single lbrynet server.
type Client struct {
	server string
	client HTTPDoer
}

// NewClient constructs a client for server. A zero timeout leaves requests
// unbounded apart from ctx.
func NewClient(server string, timeout time.Duration) *Client {
	return NewClientWithDoer(server, &http.Client{Timeout: timeout})
}

// NewClientWithDoer constructs a client with a caller-supplied HTTP client.
func NewClientWithDoer(server string, doer HTTPDoer) *Client {
	server = strings.TrimSpace(server)
	if server == "" {
		server = DefaultServer
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{server: server, client: doer}
}

// Server returns the daemon address this client targets.
func (c *Client) Server() string {
	return c.server
}

// Status sends {"method": "status"} and decodes the reply.
func (c *Client) Status(ctx context.Context) (*StatusReply, error) {
	payload, err := json.Marshal(StatusRequest{Method: "status"})
	if err != nil {
		return nil, fmt.Errorf("encode status request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UnreachableError{Server: c.server, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read status reply: %w", err)
	}
	var reply StatusReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return &reply, nil
}

// Ping posts an empty request and succeeds whenever the server answers at all.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server, nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &UnreachableError{Server: c.server, Err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
