package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/cantor/internal/planservice"
	"github.com/starford/cantor/internal/scoring"
	"github.com/starford/cantor/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	svc := planservice.NewService(testutil.SeededStore(t), nil, scoring.DefaultWeights())
	return New(svc)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so dispatch to the
	// handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "recommend_songs":
		result, err = srv.recommendSongs(ctx, req)
	case "generate_setlist":
		result, err = srv.generateSetList(ctx, req)
	case "analyze_chords":
		result, err = srv.analyzeChords(ctx, req)
	case "schedule_musicians":
		result, err = srv.scheduleMusicians(ctx, req)
	case "search_songs":
		result, err = srv.searchSongs(ctx, req)
	case "list_songs":
		result, err = srv.listSongs(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestRecommendSongsTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "recommend_songs", map[string]interface{}{"theme": "grace"})
	text := resultText(r)
	if !strings.Contains(text, "amazing-grace") {
		t.Errorf("result missing top song: %q", text)
	}

	r = callTool(t, srv, "recommend_songs", map[string]interface{}{"language": "es"})
	if resultText(r) != "no matching songs" {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestGenerateSetListTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "generate_setlist", map[string]interface{}{
		"title":            "Sunday",
		"service_type":     "sunday_morning",
		"theme":            "grace",
		"duration_minutes": 25,
		"date":             "2026-09-06T10:00:00Z",
	})
	text := resultText(r)
	if !strings.Contains(text, `"created_by": "AI Assistant"`) {
		t.Errorf("result missing creator: %q", text)
	}
	if !strings.Contains(text, "amazing-grace") {
		t.Errorf("result missing opener: %q", text)
	}

	// Missing title is a tool error, not a panic.
	r = callTool(t, srv, "generate_setlist", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error result for missing title")
	}

	// Bad date is reported.
	r = callTool(t, srv, "generate_setlist", map[string]interface{}{
		"title": "t", "date": "next sunday",
	})
	if !r.IsError || !strings.Contains(resultText(r), "invalid date") {
		t.Errorf("bad date result = %q", resultText(r))
	}
}

func TestAnalyzeChordsTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "analyze_chords", map[string]interface{}{"chords": "C - Am - F - G"})
	text := resultText(r)
	if !strings.Contains(text, `"key": "C"`) {
		t.Errorf("result missing key: %q", text)
	}
	if !strings.Contains(text, `"difficulty": "easy"`) {
		t.Errorf("result missing difficulty: %q", text)
	}

	r = callTool(t, srv, "analyze_chords", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error result for missing chords")
	}
}

func TestScheduleMusiciansTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "schedule_musicians", map[string]interface{}{
		"date":        "2026-09-06T10:00:00Z",
		"instruments": "piano, Theremin",
	})
	text := resultText(r)
	if !strings.Contains(text, "m-james") {
		t.Errorf("result missing assignment: %q", text)
	}
	if !strings.Contains(text, "no musician available for Theremin") {
		t.Errorf("result missing conflict: %q", text)
	}

	r = callTool(t, srv, "schedule_musicians", map[string]interface{}{
		"date": "tomorrow", "instruments": "piano",
	})
	if !r.IsError {
		t.Error("expected error result for bad date")
	}
}

func TestSearchSongsTool_NoIndex(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "search_songs", map[string]interface{}{"query": "grace"})
	if resultText(r) != "no results" {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestListSongsTool(t *testing.T) {
	srv := testServer(t)
	text := resultText(callTool(t, srv, "list_songs", nil))
	if !strings.Contains(text, "amazing-grace") || !strings.Contains(text, "how-great-thou-art") {
		t.Errorf("list = %q", text)
	}
}

func TestCatalogFormatResource(t *testing.T) {
	srv := testServer(t)
	contents, err := srv.readCatalogFormatResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("unexpected content type %T", contents[0])
	}
	if !strings.Contains(tc.Text, "songs.yaml") {
		t.Errorf("contract missing seed file name")
	}
}
