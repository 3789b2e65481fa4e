package mcp

import (
	"context"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmett/unstick/internal/modifiers"
	"github.com/emmett/unstick/internal/runner"
)

func connect(t *testing.T, fake *runner.FakeCommandRunner) *sdk.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv := NewServer(Config{
		ServerName:    "unstick-test",
		ServerVersion: "test",
		Releaser:      modifiers.NewReleaser(fake),
	})

	serverTransport, clientTransport := sdk.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdk.NewClient(&sdk.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func textOf(t *testing.T, res *sdk.CallToolResult) []string {
	t.Helper()
	var texts []string
	for _, c := range res.Content {
		tc, ok := c.(*sdk.TextContent)
		require.True(t, ok, "unexpected content type %T", c)
		texts = append(texts, tc.Text)
	}
	return texts
}

func TestListTools(t *testing.T) {
	session := connect(t, &runner.FakeCommandRunner{})

	res, err := session.ListTools(context.Background(), &sdk.ListToolsParams{})
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"release_modifiers", "list_backends"}, names)
}

func TestReleaseModifiersTool(t *testing.T) {
	fake := &runner.FakeCommandRunner{Responses: map[string]runner.FakeResponse{
		modifiers.Wtype: {},
	}}
	session := connect(t, fake)

	res, err := session.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "release_modifiers",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, []string{"Released modifiers via wtype"}, textOf(t, res))
	require.Len(t, fake.Calls(), 1)
}

func TestReleaseModifiersToolFailure(t *testing.T) {
	session := connect(t, &runner.FakeCommandRunner{})

	res, err := session.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "release_modifiers",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	texts := textOf(t, res)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "wtype")
	assert.Contains(t, texts[0], "ydotool")
}

func TestListBackendsTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	session := connect(t, &runner.FakeCommandRunner{})

	res, err := session.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "list_backends",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Backends (2):",
		"- wtype: wtype -m shift -m ctrl -m logo -m alt -m altgr (not found)",
		"- ydotool: ydotool key 42:0 54:0 29:0 97:0 56:0 100:0 125:0 126:0 (not found)",
	}, textOf(t, res))
}
