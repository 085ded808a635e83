package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sustainovate/sustainovate-backend/internal/config"
	"github.com/sustainovate/sustainovate-backend/internal/db"
	"github.com/sustainovate/sustainovate-backend/internal/gemini"
	"github.com/sustainovate/sustainovate-backend/internal/handler"
	"github.com/sustainovate/sustainovate-backend/internal/ideas"
	"github.com/sustainovate/sustainovate-backend/internal/webserver"
)

func main() {
	// With --mcp the same operations are served as MCP tools over stdio
	// instead of HTTP.
	mcpMode := false
	for _, arg := range os.Args[1:] {
		if arg == "--mcp" {
			mcpMode = true
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	d, err := db.Init(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("database connected and schema checked")

	ai, err := gemini.New(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	repo := ideas.NewRepo(d)

	if mcpMode {
		serveMCP(repo, ai)
		return
	}

	srv := webserver.New(repo, ai)
	if err := srv.ListenAndServe(cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func serveMCP(repo *ideas.Repo, ai *gemini.Client) {
	s := server.NewMCPServer(
		"sustainovate-backend",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	askTool := mcp.NewTool("ask_sustaina",
		mcp.WithDescription("Ask Sustaina-Bot about eco-friendly material alternatives, sustainable processes, and green innovation ideas."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The question for Sustaina-Bot"),
		),
	)
	s.AddTool(askTool, handler.Chat(ai))

	submitTool := mcp.NewTool("submit_idea",
		mcp.WithDescription("Submit a sustainability idea to the shared idea database."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Short idea title"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Idea category, e.g. Transport or Energy"),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("What the idea is and how it works"),
		),
		mcp.WithString("impact_metric",
			mcp.Description("Expected impact, e.g. CO2 saved per year"),
		),
		mcp.WithString("submitter_name",
			mcp.Description("Name of the submitter"),
		),
		mcp.WithString("submitter_email",
			mcp.Description("Email of the submitter"),
		),
	)
	s.AddTool(submitTool, handler.SubmitIdea(repo))

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("server error: %v\n", err)
	}
}
