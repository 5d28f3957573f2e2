package flow

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/cibere/firefoxkb"
)

// maxMessageSize bounds a single host message. Queries are tiny; the limit
// only guards against a corrupted stream.
const maxMessageSize = 4 * 1024 * 1024

// Request is one JSON-RPC message from the host. Messages without an ID
// are notifications and expect no response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is one JSON-RPC reply to the host.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// ResponseError is the JSON-RPC error object.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes used in replies.
const (
	CodeInvalidRequest = -32600
	CodeInternalError  = -32603
)

// Ensure Conn implements firefoxkb.Launcher.
var _ firefoxkb.Launcher = (*Conn)(nil)

// Conn speaks line-delimited JSON-RPC with the host launcher over a
// reader/writer pair (stdin/stdout in production). Writes are serialized
// so replies and notifications never interleave on the stream.
type Conn struct {
	scanner *bufio.Scanner

	mu sync.Mutex
	w  io.Writer
}

// NewConn creates a Conn over the given stream pair.
func NewConn(r io.Reader, w io.Writer) *Conn {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	return &Conn{scanner: scanner, w: w}
}

// Read returns the next host request. Returns io.EOF when the host closes
// the stream.
func (c *Conn) Read() (*Request, error) {
	for c.scanner.Scan() {
		line := c.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			return nil, fmt.Errorf("failed to decode host request: %w", err)
		}
		return &req, nil
	}
	if err := c.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read host request: %w", err)
	}
	return nil, io.EOF
}

// Reply sends a success response for the given request. Notifications are
// silently not replied to.
func (c *Conn) Reply(req *Request, result any) error {
	if len(req.ID) == 0 {
		return nil
	}
	return c.write(Response{JSONRPC: "2.0", ID: req.ID, Result: result})
}

// ReplyError sends an error response for the given request.
func (c *Conn) ReplyError(req *Request, code int, message string) error {
	if len(req.ID) == 0 {
		return nil
	}
	return c.write(Response{JSONRPC: "2.0", ID: req.ID, Error: &ResponseError{Code: code, Message: message}})
}

// Notify sends a request without an ID to the host, invoking one of its
// API methods without waiting for a reply.
func (c *Conn) Notify(method string, params ...any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode notification params: %w", err)
	}
	return c.write(Request{JSONRPC: "2.0", Method: method, Params: raw})
}

// ShowMessage displays a transient notification through the host.
func (c *Conn) ShowMessage(ctx context.Context, title, subtitle string) error {
	return c.Notify("ShowMsg", title, subtitle, iconPath)
}

// OpenSettings opens the host's settings dialog for this plugin.
func (c *Conn) OpenSettings(ctx context.Context) error {
	return c.Notify("OpenSettingDialog")
}

// OpenURL opens a URL with the host's default browser.
func (c *Conn) OpenURL(ctx context.Context, url string) error {
	return c.Notify("OpenUrl", url)
}

func (c *Conn) write(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode host message: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("failed to write host message: %w", err)
	}
	return nil
}
