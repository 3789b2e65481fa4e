package mcp

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/emmett/unstick/internal/modifiers"
)

type ReleaseModifiersArgs struct{}

type ListBackendsArgs struct{}

func (s *Server) handleReleaseModifiers(ctx context.Context, req *sdk.CallToolRequest, args ReleaseModifiersArgs) (*sdk.CallToolResult, any, error) {
	out, err := s.config.Releaser.Release(ctx)
	if err != nil {
		// Tool failures go back to the model as content, not protocol errors
		return &sdk.CallToolResult{
			IsError: true,
			Content: []sdk.Content{&sdk.TextContent{Text: err.Error()}},
		}, nil, nil
	}

	content := []sdk.Content{
		&sdk.TextContent{Text: fmt.Sprintf("Released modifiers via %s", out.Tool)},
	}
	return &sdk.CallToolResult{Content: content}, nil, nil
}

func (s *Server) handleListBackends(ctx context.Context, req *sdk.CallToolRequest, args ListBackendsArgs) (*sdk.CallToolResult, any, error) {
	statuses := modifiers.Available(s.config.Releaser.Backends())

	content := []sdk.Content{
		&sdk.TextContent{Text: fmt.Sprintf("Backends (%d):", len(statuses))},
	}
	for _, st := range statuses {
		state := "not found"
		if st.Found {
			state = st.Path
		}
		content = append(content, &sdk.TextContent{
			Text: fmt.Sprintf("- %s: %s %s (%s)", st.Backend.Name, st.Backend.Command, strings.Join(st.Backend.Args(), " "), state),
		})
	}

	return &sdk.CallToolResult{Content: content}, nil, nil
}
