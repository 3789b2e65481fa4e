package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/emmett/unstick/internal/modifiers"
)

type Config struct {
	ServerName    string
	ServerVersion string
	Releaser      *modifiers.Releaser
}

type Server struct {
	config    Config
	mcpServer *sdk.Server
}

func NewServer(cfg Config) *Server {
	if cfg.Releaser == nil {
		cfg.Releaser = modifiers.NewReleaser(nil)
	}
	s := &Server{config: cfg}

	s.mcpServer = sdk.NewServer(&sdk.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}, nil)

	s.registerTools()

	return s
}

// Start serves MCP over stdin/stdout until ctx is done or the client disconnects
func (s *Server) Start(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdk.StdioTransport{})
}

// Connect serves a single session on an arbitrary transport
func (s *Server) Connect(ctx context.Context, t sdk.Transport) (*sdk.ServerSession, error) {
	return s.mcpServer.Connect(ctx, t, nil)
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcpServer, &sdk.Tool{
		Name:        "release_modifiers",
		Description: "Release held Shift, Ctrl, Alt and Super keys before typing text (tries wtype, then ydotool)",
	}, s.handleReleaseModifiers)

	sdk.AddTool(s.mcpServer, &sdk.Tool{
		Name:        "list_backends",
		Description: "List the modifier release backends in fallback order and whether each is installed",
	}, s.handleListBackends)
}
