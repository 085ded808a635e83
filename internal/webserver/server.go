package webserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/sustainovate/sustainovate-backend/internal/ideas"
	"gorm.io/gorm"
)

// Completer generates text for a single prompt. Satisfied by *gemini.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Server holds the injected dependencies of the HTTP surface.
type Server struct {
	ideas *ideas.Repo
	ai    Completer
}

func New(repo *ideas.Repo, ai Completer) *Server {
	return &Server{ideas: repo, ai: ai}
}

// Handler builds the route table with CORS applied to every route.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/submit-idea", s.handleSubmitIdea)
	mux.HandleFunc("GET /api/ideas", s.handleListIdeas)
	mux.HandleFunc("GET /api/ideas/{id}", s.handleGetIdea)
	mux.HandleFunc("OPTIONS /api/", handleCORS)

	return corsMiddleware(mux)
}

// ListenAndServe blocks serving the API on the given port.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("backend server listening at http://localhost:%d", port)
	return http.ListenAndServe(addr, s.Handler())
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type submitIdeaRequest struct {
	Title          string  `json:"title"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	ImpactMetric   *string `json:"impactMetric"`
	SubmitterName  *string `json:"submitterName"`
	SubmitterEmail *string `json:"submitterEmail"`
}

type submitIdeaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id,omitempty"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing prompt in request body"})
		return
	}

	text, err := s.ai.Complete(r.Context(), body.Prompt)
	if err != nil {
		log.Printf("completion provider error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to communicate with the AI model."})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Text: text})
}

func (s *Server) handleSubmitIdea(w http.ResponseWriter, r *http.Request) {
	var body submitIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, submitIdeaResponse{
			Message: "Missing required fields (Title, Category, Description).",
		})
		return
	}
	if body.Title == "" || body.Category == "" || body.Description == "" {
		writeJSON(w, http.StatusBadRequest, submitIdeaResponse{
			Message: "Missing required fields (Title, Category, Description).",
		})
		return
	}

	id, err := s.ideas.Insert(ideas.Submission{
		Title:          body.Title,
		Category:       body.Category,
		Description:    body.Description,
		ImpactMetric:   body.ImpactMetric,
		SubmitterName:  body.SubmitterName,
		SubmitterEmail: body.SubmitterEmail,
	})
	if err != nil {
		log.Printf("idea submission error: %v", err)
		writeJSON(w, http.StatusInternalServerError, submitIdeaResponse{
			Message: "Internal server error while saving idea.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, submitIdeaResponse{
		Success: true,
		Message: "Idea submitted successfully!",
		ID:      id,
	})
}

func (s *Server) handleListIdeas(w http.ResponseWriter, r *http.Request) {
	result, err := s.ideas.List(r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("idea list error: %v", err)
		http.Error(w, "failed to list ideas", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetIdea(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	idea, err := s.ideas.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		log.Printf("idea get error: %v", err)
		http.Error(w, "failed to fetch idea", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, idea)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

func handleCORS(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
