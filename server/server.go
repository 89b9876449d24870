// Package server assembles the example MCP server this template ships with.
// Everything registered here is placeholder content: swap the tool, resource
// and prompt for your own and delete whatever you do not need.
package server

import (
	sdk "github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "hello-server"
	ServerVersion = "1.0.0"
)

// New builds the example server with the Hello tool, resource and prompt
// registered. Both the stdio entry point and the test harness construct
// servers through this function.
func New() *sdk.MCPServer {
	s := sdk.NewMCPServer(
		ServerName,
		ServerVersion,
		sdk.WithToolCapabilities(false),
		sdk.WithResourceCapabilities(false, false),
		sdk.WithPromptCapabilities(false),
		sdk.WithRecovery(),
	)

	addHelloTool(s)
	addHelloResource(s)
	addHelloPrompt(s)

	return s
}
