// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the Cantor planning tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/cantor/internal/models"
	"github.com/starford/cantor/internal/planservice"
	"github.com/starford/cantor/internal/setlist"
)

// Server wraps the MCP server with Cantor tools.
type Server struct {
	mcp *server.MCPServer
	svc *planservice.Service
}

// New creates a new MCP server with all Cantor tools registered.
func New(svc *planservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Cantor",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("recommend_songs",
		mcp.WithDescription("Recommend catalog songs for a theme, mood, and service type, ranked by fit."),
		mcp.WithString("theme", mcp.Description("Free-text theme, e.g. 'grace hope'")),
		mcp.WithString("mood", mcp.Description("One of: celebratory, reflective, worshipful, energetic, peaceful")),
		mcp.WithString("service_type", mcp.Description("One of: sunday_morning, sunday_evening, wednesday, special_event, rehearsal")),
		mcp.WithString("language", mcp.Description("Language code filter, e.g. 'en'")),
	), s.recommendSongs)

	s.mcp.AddTool(mcp.NewTool("generate_setlist",
		mcp.WithDescription("Generate a draft set list: an energetic opener, worship songs, and a "+
			"celebratory closer, with keys smoothed for transitions. The draft is registered in the catalog."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Set list title")),
		mcp.WithString("date", mcp.Description("Service date, RFC 3339 (e.g. 2026-09-06T10:00:00Z)")),
		mcp.WithString("service_type", mcp.Description("One of: sunday_morning, sunday_evening, wednesday, special_event, rehearsal")),
		mcp.WithString("theme", mcp.Description("Free-text theme to bias selection")),
		mcp.WithNumber("duration_minutes", mcp.Description("Target service length in minutes")),
		mcp.WithString("language", mcp.Description("Language code filter, e.g. 'en'")),
		mcp.WithNumber("max_songs", mcp.Description("Hard song cap (default: one song per four minutes)")),
	), s.generateSetList)

	s.mcp.AddTool(mcp.NewTool("analyze_chords",
		mcp.WithDescription("Analyze a chord progression: infer its key, rate its difficulty, and suggest substitutions."),
		mcp.WithString("chords", mcp.Required(), mcp.Description("Chord text, e.g. 'C - Am - F - G'")),
	), s.analyzeChords)

	s.mcp.AddTool(mcp.NewTool("schedule_musicians",
		mcp.WithDescription("Assign available musicians to required instruments for a service date."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Service date, RFC 3339")),
		mcp.WithString("instruments", mcp.Required(), mcp.Description("Comma-separated required instruments, e.g. 'piano,drums'")),
	), s.scheduleMusicians)

	s.mcp.AddTool(mcp.NewTool("search_songs",
		mcp.WithDescription("Full-text search through song titles, artists, lyrics, and themes."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchSongs)

	s.mcp.AddTool(mcp.NewTool("list_songs",
		mcp.WithDescription("List every song in the catalog with id, title, key, and genre."),
	), s.listSongs)

	// Resource: catalog seed format contract.
	s.mcp.AddResource(
		mcp.NewResource("cantor://catalog-format", "Catalog Format Contract",
			mcp.WithResourceDescription("Canonical YAML catalog seed format the planner loads."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readCatalogFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) recommendSongs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := models.SongCriteria{
		Theme:       req.GetString("theme", ""),
		Mood:        models.Mood(req.GetString("mood", "")),
		ServiceType: models.ServiceType(req.GetString("service_type", "")),
		Language:    models.Language(req.GetString("language", "")),
	}
	songs := s.svc.RecommendSongs(ctx, c)
	if len(songs) == 0 {
		return mcp.NewToolResultText("no matching songs"), nil
	}
	out, _ := json.MarshalIndent(songs, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) generateSetList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := setlist.GenerateConfig{
		Title:           title,
		ServiceType:     models.ServiceType(req.GetString("service_type", "")),
		Theme:           req.GetString("theme", ""),
		DurationMinutes: req.GetInt("duration_minutes", 0),
		Language:        models.Language(req.GetString("language", "")),
		MaxSongs:        req.GetInt("max_songs", 0),
	}
	if raw := req.GetString("date", ""); raw != "" {
		date, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", parseErr)), nil
		}
		cfg.Date = date
	}

	sl, err := s.svc.GenerateSetList(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(sl, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) analyzeChords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("chords")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(s.svc.AnalyzeChordProgression(ctx, text), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) scheduleMusicians(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
	}
	list, err := req.RequireString("instruments")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var instruments []string
	for _, in := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(in); trimmed != "" {
			instruments = append(instruments, trimmed)
		}
	}

	out, _ := json.MarshalIndent(s.svc.ScheduleMusicians(ctx, date, instruments), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchSongs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.SearchSongs(ctx, query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("no results"), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listSongs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	songs := s.svc.Songs(ctx)
	if len(songs) == 0 {
		return mcp.NewToolResultText("catalog is empty"), nil
	}
	var b strings.Builder
	for _, song := range songs {
		fmt.Fprintf(&b, "%s\t%s\t(key %s, %s)\n", song.ID, song.Title, song.Key, song.Genre)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) readCatalogFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "cantor://catalog-format",
			MIMEType: "text/markdown",
			Text:     CatalogFormatContract,
		},
	}, nil
}
