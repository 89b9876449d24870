package mcptest

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Initialize performs the protocol handshake. Real clients send this before
// anything else; tests should too.
func (h *Harness) Initialize() (map[string]any, error) {
	return h.SendRequest(Request{
		Method: string(mcp.MethodInitialize),
		Params: map[string]any{
			"protocolVersion": mcp.LATEST_PROTOCOL_VERSION,
			"capabilities":    map[string]any{},
			"clientInfo": map[string]any{
				"name":    "mcptest",
				"version": "0.1.0",
			},
		},
	})
}

// Ping verifies connection liveness.
func (h *Harness) Ping() (map[string]any, error) {
	return h.SendRequest(Request{Method: string(mcp.MethodPing)})
}

// ListTools lists the server's tools.
func (h *Harness) ListTools() (map[string]any, error) {
	return h.SendRequest(Request{Method: string(mcp.MethodToolsList)})
}

// CallTool invokes a tool by name with the given arguments.
func (h *Harness) CallTool(name string, arguments map[string]any) (map[string]any, error) {
	return h.SendRequest(Request{
		Method: string(mcp.MethodToolsCall),
		Params: map[string]any{
			"name":      name,
			"arguments": arguments,
		},
	})
}

// ListResources lists the server's resources.
func (h *Harness) ListResources() (map[string]any, error) {
	return h.SendRequest(Request{Method: string(mcp.MethodResourcesList)})
}

// ReadResource reads the resource at uri.
func (h *Harness) ReadResource(uri string) (map[string]any, error) {
	return h.SendRequest(Request{
		Method: string(mcp.MethodResourcesRead),
		Params: map[string]any{
			"uri": uri,
		},
	})
}

// ListPrompts lists the server's prompts.
func (h *Harness) ListPrompts() (map[string]any, error) {
	return h.SendRequest(Request{Method: string(mcp.MethodPromptsList)})
}

// GetPrompt retrieves a prompt by name with the given arguments.
func (h *Harness) GetPrompt(name string, arguments map[string]string) (map[string]any, error) {
	return h.SendRequest(Request{
		Method: string(mcp.MethodPromptsGet),
		Params: map[string]any{
			"name":      name,
			"arguments": arguments,
		},
	})
}
