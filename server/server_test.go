package server

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New())
}

func TestHandleHelloTool(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Name = HelloToolName
	request.Params.Arguments = map[string]any{"name": "Alice"}

	result, err := handleHelloTool(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Alice", text.Text)
}

func TestHandleHelloTool_MissingName(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Name = HelloToolName

	_, err := handleHelloTool(context.Background(), request)
	assert.Error(t, err)
}

func TestHandleHelloResource(t *testing.T) {
	request := mcp.ReadResourceRequest{}
	request.Params.URI = HelloResourceURI

	contents, err := handleHelloResource(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, HelloResourceURI, text.URI)
	assert.Equal(t, "text/plain", text.MIMEType)
	assert.Contains(t, text.Text, "Oh, my most esteemed and distinguished guest")
}

func TestHandleHelloPrompt(t *testing.T) {
	request := mcp.GetPromptRequest{}
	request.Params.Name = HelloPromptName
	request.Params.Arguments = map[string]string{"user": "John"}

	result, err := handleHelloPrompt(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcp.RoleAssistant, result.Messages[0].Role)

	text, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Craft an elaborate greeting")
	assert.Contains(t, text.Text, "John")
}

func TestHandleHelloPrompt_MissingUser(t *testing.T) {
	request := mcp.GetPromptRequest{}
	request.Params.Name = HelloPromptName

	_, err := handleHelloPrompt(context.Background(), request)
	assert.Error(t, err)
}
