package mcptest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollBuffer_DrainAcrossChunks(t *testing.T) {
	var b pollBuffer

	payload := strings.Repeat("x", readChunk+100)
	n, err := b.Write([]byte(payload))
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, len(payload), b.Len())

	chunk := make([]byte, readChunk)
	var got []byte
	for {
		n := b.ReadAvailable(chunk)
		if n == 0 {
			break
		}
		got = append(got, chunk[:n]...)
	}

	assert.Equal(t, payload, string(got))
	assert.Zero(t, b.Len())
}

func TestPollBuffer_EmptyReadDoesNotBlock(t *testing.T) {
	var b pollBuffer

	chunk := make([]byte, readChunk)
	assert.Zero(t, b.ReadAvailable(chunk))
	assert.Zero(t, b.Len())
}
