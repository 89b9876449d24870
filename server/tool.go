package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	sdk "github.com/mark3labs/mcp-go/server"
)

// HelloToolName is the name the example tool is registered under.
const HelloToolName = "Hello Tool"

func addHelloTool(s *sdk.MCPServer) {
	tool := mcp.NewTool(HelloToolName,
		mcp.WithDescription("Echoes back the provided name"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name to echo back"),
		),
	)

	s.AddTool(tool, handleHelloTool)
}

func handleHelloTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(name), nil
}
