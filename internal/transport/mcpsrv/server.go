package mcpsrv

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/service/dispatch"
	"github.com/sandevgo/factbot/pkg/log"
)

// Server exposes the dispatcher as an MCP stdio tool so agent hosts
// can ask the same questions the REPL answers. The whole stdio
// connection shares one dispatch session, which keeps pronoun
// follow-ups working across tool calls.
type Server struct {
	dispatcher *dispatch.Dispatcher
	session    *dispatch.Session
}

func New(dispatcher *dispatch.Dispatcher) *Server {
	return &Server{
		dispatcher: dispatcher,
		session:    dispatch.NewSession(),
	}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting mcp stdio server")

	srv := server.NewMCPServer(core.BotName, core.Version)

	ask := mcp.NewTool("ask",
		mcp.WithDescription("Answer a natural-language question about presidential terms, birth dates and planetary facts scraped from Wikipedia infoboxes"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The question, e.g. 'when did abraham lincoln take office'"),
		),
	)
	srv.AddTool(ask, s.handleAsk)

	return server.ServeStdio(srv)
}

func (s *Server) Shutdown(ctx context.Context) error {
	// stdio transport ends with the process
	return nil
}

func (s *Server) handleAsk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := s.dispatcher.Dispatch(ctx, s.session, core.Tokenize(query))
	if res.Kind == core.Terminated {
		return mcp.NewToolResultText(core.MsgGoodbye), nil
	}
	return mcp.NewToolResultText(strings.Join(res.Lines(), "\n")), nil
}
