package handler

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sustainovate/sustainovate-backend/internal/ideas"
)

// Completer mirrors the webserver seam so the tools can run against a stub.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ToolFunc is the handler signature mcp-go expects for registered tools.
type ToolFunc = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Chat returns the ask_sustaina tool handler.
func Chat(ai Completer) ToolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		prompt, err := request.RequireString("prompt")
		if err != nil {
			return mcp.NewToolResultError("prompt is required"), nil
		}

		text, err := ai.Complete(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("failed to generate completion: %w", err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// SubmitIdea returns the submit_idea tool handler.
func SubmitIdea(repo *ideas.Repo) ToolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := request.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError("title is required"), nil
		}
		category, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError("category is required"), nil
		}
		description, err := request.RequireString("description")
		if err != nil {
			return mcp.NewToolResultError("description is required"), nil
		}

		sub := ideas.Submission{
			Title:       title,
			Category:    category,
			Description: description,
		}
		if v := request.GetString("impact_metric", ""); v != "" {
			sub.ImpactMetric = &v
		}
		if v := request.GetString("submitter_name", ""); v != "" {
			sub.SubmitterName = &v
		}
		if v := request.GetString("submitter_email", ""); v != "" {
			sub.SubmitterEmail = &v
		}

		id, err := repo.Insert(sub)
		if err != nil {
			return nil, fmt.Errorf("failed to save idea: %w", err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Idea submitted successfully! id=%d", id)), nil
	}
}
