// Package mcp exposes the easel mutation catalog as a Model Context
// Protocol server.
//
// This is the stateless remote path: every tool call carries an explicit
// project_id, the persisted document is fetched, one mutation is applied
// and the result persisted. No authoring session exists here, so the
// positional layer_<N> aliases of interactive chats are rejected —
// remote callers address layers by id or name.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/easel-ai/easel"
)

// Server wraps the Studio and exposes it as an MCP Server.
type Server struct {
	studio    *easel.Studio
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(studio *easel.Studio) *Server {
	s := &Server{
		studio:    studio,
		mcpServer: server.NewMCPServer("easel-mcp", strings.TrimSpace(easel.Version)),
		logger:    studio.Logger(),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// registerTools mirrors the shared mutation catalog onto the MCP
// surface, plus storage-level project management tools.
func (s *Server) registerTools() {
	// TOOL: create_project
	s.mcpServer.AddTool(mcp.NewTool("create_project",
		mcp.WithDescription("Create a new empty animation project and return its id."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Project name")),
	), s.handleCreateProject)

	// TOOL: list_projects
	s.mcpServer.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List the ids of all stored projects."),
	), s.handleListProjects)

	// One MCP tool per catalog entry, declaring the catalog's own
	// parameter schema extended with project_id.
	for _, tool := range s.studio.Tools() {
		raw, err := json.Marshal(withProjectID(tool.Parameters))
		if err != nil {
			s.logger.Error("failed to encode tool schema", "tool", tool.Name, "err", err)
			continue
		}
		name := tool.Name
		s.mcpServer.AddTool(
			mcp.NewToolWithRawSchema(name, tool.Description, raw),
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return s.handleCatalogTool(ctx, name, request)
			},
		)
	}
}

func (s *Server) handleCreateProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	project, err := s.studio.CreateProject(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create project: %v", err)), nil
	}
	return jsonResult(map[string]any{"project_id": project.ID, "name": project.Name})
}

func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := s.studio.Projects(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list projects: %v", err)), nil
	}
	return jsonResult(map[string]any{"projects": ids})
}

func (s *Server) handleCatalogTool(ctx context.Context, tool string, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	projectID, _ := args["project_id"].(string)
	if projectID == "" {
		return mcp.NewToolResultError("project_id is required"), nil
	}
	callArgs := make(map[string]any, len(args))
	for k, v := range args {
		if k != "project_id" {
			callArgs[k] = v
		}
	}

	res, err := s.studio.Apply(ctx, projectID, tool, callArgs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err)), nil
	}
	if !res.Success {
		// Structured rejection; the caller can correct its input and retry.
		return mcp.NewToolResultError(res.Error), nil
	}
	return jsonResult(res)
}

func (s *Server) registerResources() {
	// EXPOSE: easel://projects
	s.mcpServer.AddResource(mcp.NewResource("easel://projects", "Stored Projects",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.studio.Projects(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		jsonBytes, _ := json.Marshal(ids)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "easel://projects",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

// withProjectID returns a copy of a JSON Schema object with a required
// project_id parameter folded in.
func withProjectID(schema map[string]any) map[string]any {
	props := map[string]any{}
	if p, ok := schema["properties"].(map[string]any); ok {
		for k, v := range p {
			props[k] = v
		}
	}
	props["project_id"] = map[string]any{
		"type":        "string",
		"description": "Id of the project to operate on",
	}

	required := []string{"project_id"}
	switch r := schema["required"].(type) {
	case []string:
		required = append(required, r...)
	case []any:
		for _, v := range r {
			if s, ok := v.(string); ok {
				required = append(required, s)
			}
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
