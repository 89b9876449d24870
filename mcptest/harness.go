// Package mcptest drives an MCP server end to end without touching real OS
// stdio. A Harness wires a server's stdin/stdout to in-process byte channels,
// runs the server's dispatch loop in a background goroutine, and exchanges
// newline-delimited JSON-RPC messages over the channels exactly as a real
// stdio client would.
//
// The harness supports one in-flight request at a time and does not correlate
// responses by id: callers must wait for each SendRequest to return before
// issuing the next.
package mcptest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	sdk "github.com/mark3labs/mcp-go/server"
)

const (
	// warmUp is how long Start waits after launching the server loop. The
	// SDK's stdio loop exposes no readiness signal, so the harness gives it
	// a moment to start reading before the first request is written.
	warmUp = 100 * time.Millisecond

	// pollInterval is the sleep between checks for response bytes.
	pollInterval = 10 * time.Millisecond

	// readChunk is the size of a single drain read. Responses larger than
	// one chunk are captured by repeated reads.
	readChunk = 4096
)

// ErrNotStarted is returned by SendRequest when the harness has no running
// session.
var ErrNotStarted = errors.New("mcptest: session not started")

// Request is a JSON-RPC call to send through the harness. The harness
// assigns the id at send time; callers only supply the method and params.
type Request struct {
	Method string
	Params any
}

type envelope struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      string `json:"id"`
}

// Harness owns one in-process client/server session. The zero value is not
// usable; construct with New.
type Harness struct {
	factory func() *sdk.MCPServer

	mu   sync.Mutex
	sess *session
}

// session holds everything a running session owns. It exists only between
// Start and Close and is always fully constructed, never partial.
type session struct {
	cancel   context.CancelFunc
	done     chan struct{}
	requests *io.PipeWriter
	serverIn *io.PipeReader
	out      *pollBuffer
}

// New returns a stopped harness. The factory is invoked once per Start so
// the same harness logic works for any server configuration.
func New(factory func() *sdk.MCPServer) *Harness {
	return &Harness{factory: factory}
}

// Start constructs the byte channels and the server, binds the server's
// stdio loop to the channel endpoints, and launches the loop in a background
// goroutine. Calling Start on a running harness is a no-op.
func (h *Harness) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sess != nil {
		return nil
	}

	serverIn, requests := io.Pipe()
	out := &pollBuffer{}

	stdio := sdk.NewStdioServer(h.factory())
	stdio.SetErrorLogger(log.New(io.Discard, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = stdio.Listen(ctx, serverIn, out)
	}()

	h.sess = &session{
		cancel:   cancel,
		done:     done,
		requests: requests,
		serverIn: serverIn,
		out:      out,
	}

	time.Sleep(warmUp)

	return nil
}

// Close signals shutdown, waits for the server loop to exit, and releases
// both channels. Calling Close on a stopped harness is a no-op.
func (h *Harness) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sess == nil {
		return nil
	}
	sess := h.sess
	h.sess = nil

	sess.cancel()

	// Closing the write end delivers EOF to the server loop's reader, which
	// is what actually unblocks it.
	if err := sess.requests.Close(); err != nil {
		return fmt.Errorf("failed to close request channel: %w", err)
	}

	<-sess.done

	if err := sess.serverIn.Close(); err != nil {
		return fmt.Errorf("failed to close server channel: %w", err)
	}

	return nil
}

// SendRequest performs one full request/response round trip: it assigns a
// fresh id, writes the request as a single JSON line, then polls the
// response channel until bytes arrive and drains everything available. The
// accumulated bytes must form exactly one JSON object.
func (h *Harness) SendRequest(req Request) (map[string]any, error) {
	h.mu.Lock()
	sess := h.sess
	h.mu.Unlock()

	if sess == nil {
		return nil, ErrNotStarted
	}

	env := envelope{
		JSONRPC: "2.0",
		Method:  req.Method,
		Params:  req.Params,
		ID:      uuid.NewString(),
	}

	line, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	line = append(line, '\n')

	if _, err := sess.requests.Write(line); err != nil {
		return nil, fmt.Errorf("failed to write request: %w", err)
	}

	for sess.out.Len() == 0 {
		time.Sleep(pollInterval)
	}

	var acc []byte
	chunk := make([]byte, readChunk)
	for {
		n := sess.out.ReadAvailable(chunk)
		if n == 0 {
			break
		}
		acc = append(acc, chunk[:n]...)
	}

	var response map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(acc), &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return response, nil
}
