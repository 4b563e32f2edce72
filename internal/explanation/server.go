// Package explanation exposes the completion endpoint the assistant talks
// to: POST /api/chat {"message"} -> {"response"}, backed by an LLM client.
package explanation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"spec-assistant/internal/llm"
)

// errorResponse is what clients get when generation fails. The status is
// non-success, so callers treat it as a service failure.
const errorResponse = "Error generating AI response."

type Server struct {
	llm          llm.Client
	systemPrompt string
	port         int
	server       *http.Server
	startTime    time.Time
}

func NewServer(client llm.Client, systemPrompt string, port int) *Server {
	return &Server{
		llm:          client,
		systemPrompt: systemPrompt,
		port:         port,
		startTime:    time.Now(),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/status", s.handleStatus)
	return mux
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:        fmt.Sprintf(":%d", s.port),
		Handler:     s.Routes(),
		ReadTimeout: 15 * time.Second,
		// Generation can be slow; give the write side room.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("Starting explanation server on http://localhost:%d", s.port)
	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	var msgs []llm.Message
	if s.systemPrompt != "" {
		msgs = append(msgs, llm.Message{Role: "system", Content: s.systemPrompt})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: req.Message})

	resp, err := s.llm.Generate(r.Context(), msgs)
	if err != nil {
		log.Printf("failed to generate explanation: %v", err)
		writeJSON(w, http.StatusInternalServerError, chatResponse{Response: errorResponse})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: strings.TrimSpace(resp.Content)})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
