package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	sdk "github.com/mark3labs/mcp-go/server"
)

// HelloResourceURI is the fixed URI the example resource is served under.
const HelloResourceURI = "hello://world"

const helloResourceText = "Oh, my most esteemed and distinguished guest! " +
	"It is with great honour that I welcome you to this most humble of resources."

func addHelloResource(s *sdk.MCPServer) {
	resource := mcp.NewResource(HelloResourceURI, "Hello Resource",
		mcp.WithResourceDescription("A fixed greeting, served as plain text"),
		mcp.WithMIMEType("text/plain"),
	)

	s.AddResource(resource, handleHelloResource)
}

func handleHelloResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      HelloResourceURI,
			MIMEType: "text/plain",
			Text:     helloResourceText,
		},
	}, nil
}
