package mcptest

import (
	"bytes"
	"sync"
)

// pollBuffer is the server-to-harness byte channel. The server loop writes
// complete response lines into it; the harness polls Len and drains with
// ReadAvailable. Exactly one writer and one reader by construction.
type pollBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *pollBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// Len reports how many bytes are immediately available.
func (b *pollBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Len()
}

// ReadAvailable copies up to len(p) immediately-available bytes into p. It
// never blocks; 0 means the channel is empty right now.
func (b *pollBuffer) ReadAvailable(p []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, _ := b.buf.Read(p)
	return n
}
