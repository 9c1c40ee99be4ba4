package niri

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform"
)

// EnvSocket names the environment variable niri exports with its socket path.
const EnvSocket = "NIRI_SOCKET"

var (
	// ErrNoSocket is returned when $NIRI_SOCKET is unset.
	ErrNoSocket = errors.New(EnvSocket + " not set; is niri running?")
	// ErrUnexpectedResponse is returned when a reply does not match the request.
	ErrUnexpectedResponse = errors.New("unexpected response from niri")
)

// ReplyError is an error reported by niri itself.
type ReplyError struct {
	Request string
	Message string
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("niri rejected %s: %s", e.Request, e.Message)
}

// Client is a niri IPC client. The connection is opened on first use.
type Client struct {
	path string
	log  *logger.Logger
	conn net.Conn
	r    *bufio.Reader
}

// SocketPath returns the socket path from the environment.
func SocketPath() (string, error) {
	path := os.Getenv(EnvSocket)
	if path == "" {
		return "", ErrNoSocket
	}
	return path, nil
}

// NewClient returns a client for the socket at path.
func NewClient(path string, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{path: path, log: log}
}

// SocketPath returns the socket this client talks to.
func (c *Client) SocketPath() string {
	return c.path
}

func (c *Client) connect(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.path)
	if err != nil {
		return fmt.Errorf("connect niri socket: %w", err)
	}
	c.conn = conn
	c.r = bufio.NewReader(conn)
	c.log.Debug("connected to niri", "socket", c.path)
	return nil
}

// Close closes the connection if one was opened.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.r = nil
	return err
}

// request sends one request line and returns the Ok payload of the reply.
func (c *Client) request(ctx context.Context, name string, req interface{}) (json.RawMessage, error) {
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set deadline: %w", err)
		}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", name, err)
	}
	c.log.Debug("niri request", "request", string(payload))
	if _, err := c.conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write %s request: %w", name, err)
	}

	line, err := c.r.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read %s reply: %w", name, err)
	}
	var rep reply
	if err := json.Unmarshal(line, &rep); err != nil {
		return nil, fmt.Errorf("decode %s reply: %w", name, err)
	}
	if rep.Err != nil {
		return nil, &ReplyError{Request: name, Message: *rep.Err}
	}
	if len(rep.Ok) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrUnexpectedResponse)
	}
	return rep.Ok, nil
}

// ListWindows returns all windows.
func (c *Client) ListWindows(ctx context.Context) ([]model.Window, error) {
	ok, err := c.request(ctx, requestWindows, requestWindows)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Windows *[]rawWindow `json:"Windows"`
	}
	if err := json.Unmarshal(ok, &resp); err != nil || resp.Windows == nil {
		return nil, fmt.Errorf("%s: %w", requestWindows, ErrUnexpectedResponse)
	}
	windows := make([]model.Window, 0, len(*resp.Windows))
	for _, w := range *resp.Windows {
		windows = append(windows, w.toModel())
	}
	return windows, nil
}

// ListWorkspaces returns all workspaces including hidden ones.
func (c *Client) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	ok, err := c.request(ctx, requestWorkspacesWithHidden, requestWorkspacesWithHidden)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Workspaces *[]rawWorkspace `json:"Workspaces"`
	}
	if err := json.Unmarshal(ok, &resp); err != nil || resp.Workspaces == nil {
		return nil, fmt.Errorf("%s: %w", requestWorkspacesWithHidden, ErrUnexpectedResponse)
	}
	workspaces := make([]model.Workspace, 0, len(*resp.Workspaces))
	for _, ws := range *resp.Workspaces {
		workspaces = append(workspaces, ws.toModel())
	}
	return workspaces, nil
}

// FocusWindow focuses the window with id.
func (c *Client) FocusWindow(ctx context.Context, windowID uint64) error {
	var action focusWindowAction
	action.FocusWindow.ID = windowID
	return c.action(ctx, "FocusWindow", action)
}

// MoveWindowToWorkspace moves a window to the workspace with the given id.
func (c *Client) MoveWindowToWorkspace(ctx context.Context, opts platform.MoveOptions) error {
	var action moveWindowToWorkspaceAction
	id := opts.WindowID
	action.MoveWindowToWorkspace.WindowID = &id
	action.MoveWindowToWorkspace.Reference = workspaceReference{ID: opts.WorkspaceID}
	action.MoveWindowToWorkspace.Focus = opts.Focus
	return c.action(ctx, "MoveWindowToWorkspace", action)
}

func (c *Client) action(ctx context.Context, name string, action interface{}) error {
	ok, err := c.request(ctx, name, actionRequest{Action: action})
	if err != nil {
		return err
	}
	var handled string
	if err := json.Unmarshal(ok, &handled); err != nil || handled != responseHandled {
		return fmt.Errorf("%s: %w", name, ErrUnexpectedResponse)
	}
	return nil
}

var _ platform.Compositor = (*Client)(nil)
