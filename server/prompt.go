package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	sdk "github.com/mark3labs/mcp-go/server"
)

// HelloPromptName is the name the example prompt is registered under.
const HelloPromptName = "Hello Prompt"

func addHelloPrompt(s *sdk.MCPServer) {
	prompt := mcp.NewPrompt(HelloPromptName,
		mcp.WithPromptDescription("Asks the model to greet a user by name"),
		mcp.WithArgument("user",
			mcp.ArgumentDescription("Name of the user to greet"),
			mcp.RequiredArgument(),
		),
	)

	s.AddPrompt(prompt, handleHelloPrompt)
}

func handleHelloPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	user, ok := request.Params.Arguments["user"]
	if !ok || user == "" {
		return nil, fmt.Errorf("missing required argument: user")
	}

	return mcp.NewGetPromptResult(
		"Elaborate greeting",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(fmt.Sprintf("Craft an elaborate greeting for %s.", user)),
			),
		},
	), nil
}
