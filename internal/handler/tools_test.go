package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sustainovate/sustainovate-backend/internal/db"
	"github.com/sustainovate/sustainovate-backend/internal/ideas"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubCompleter struct {
	text string
	err  error
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func setupRepo(t *testing.T) (*ideas.Repo, *gorm.DB) {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := d.AutoMigrate(&db.Idea{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return ideas.NewRepo(d), d
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected tool result content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return tc.Text
}

func TestChatTool(t *testing.T) {
	chat := Chat(&stubCompleter{text: "Compost more!"})

	result, err := chat(context.Background(), toolRequest(map[string]any{"prompt": "tips?"}))
	if err != nil {
		t.Fatalf("tool failed: %v", err)
	}
	if got := textOf(t, result); got != "Compost more!" {
		t.Errorf("expected completion text, got %q", got)
	}
}

func TestChatToolMissingPrompt(t *testing.T) {
	chat := Chat(&stubCompleter{text: "unused"})

	result, err := chat(context.Background(), toolRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("expected tool error result, got error: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError for missing prompt")
	}
}

func TestChatToolGatewayError(t *testing.T) {
	chat := Chat(&stubCompleter{err: errors.New("provider down")})

	if _, err := chat(context.Background(), toolRequest(map[string]any{"prompt": "hi"})); err == nil {
		t.Error("expected error when the gateway fails")
	}
}

func TestSubmitIdeaTool(t *testing.T) {
	repo, d := setupRepo(t)
	submit := SubmitIdea(repo)

	result, err := submit(context.Background(), toolRequest(map[string]any{
		"title":         "Solar Bikes",
		"category":      "Transport",
		"description":   "Bikes with solar-assisted charging",
		"impact_metric": "5t CO2/yr",
	}))
	if err != nil {
		t.Fatalf("tool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", textOf(t, result))
	}

	var stored db.Idea
	if err := d.First(&stored, "title = ?", "Solar Bikes").Error; err != nil {
		t.Fatalf("idea not persisted: %v", err)
	}
	if stored.ImpactMetric == nil || *stored.ImpactMetric != "5t CO2/yr" {
		t.Errorf("expected impact metric persisted, got %v", stored.ImpactMetric)
	}
}

func TestSubmitIdeaToolMissingField(t *testing.T) {
	repo, d := setupRepo(t)
	submit := SubmitIdea(repo)

	result, err := submit(context.Background(), toolRequest(map[string]any{
		"title":    "no description",
		"category": "Energy",
	}))
	if err != nil {
		t.Fatalf("expected tool error result, got error: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError for missing description")
	}

	var count int64
	d.Model(&db.Idea{}).Count(&count)
	if count != 0 {
		t.Errorf("repository must not be invoked on validation failure, found %d rows", count)
	}
}
