// Package server is the HTTP boundary between the storefront UI and the
// conversation orchestrator: trigger endpoints in, rendered transcript out.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"spec-assistant/internal/assistant"
	"spec-assistant/internal/catalog"
	"spec-assistant/internal/chat"
	"spec-assistant/internal/prompt"
)

type Server struct {
	orch      *assistant.Orchestrator
	product   catalog.Product
	demo      catalog.Demo
	port      int
	server    *http.Server
	startTime time.Time
}

func New(orch *assistant.Orchestrator, product catalog.Product, demo catalog.Demo, port int) *Server {
	return &Server{
		orch:      orch,
		product:   product,
		demo:      demo,
		port:      port,
		startTime: time.Now(),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/product", s.handleProduct)
	mux.HandleFunc("/api/chat/messages", s.handleMessages)
	mux.HandleFunc("/api/chat/message", s.handleSubmit)
	mux.HandleFunc("/api/chat/select", s.handleSelect)
	mux.HandleFunc("/api/chat/followup", s.handleFollowUp)
	mux.HandleFunc("/api/chat/clear", s.handleClear)
	return mux
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("Starting assistant server on http://localhost:%d", s.port)
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

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"demo":    s.demo,
		"product": s.product,
	})
}

type messagesResponse struct {
	Messages         []chat.Message `json:"messages"`
	AwaitingResponse bool           `json:"awaitingResponse"`
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	msgs := s.orch.Messages()
	if msgs == nil {
		msgs = []chat.Message{}
	}
	writeJSON(w, http.StatusOK, messagesResponse{
		Messages:         msgs,
		AwaitingResponse: s.orch.AwaitingResponse(),
	})
}

type submitRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeTrigger(w, r, &req) {
		return
	}
	// Blank text is accepted and ignored; nothing reaches the transcript.
	// The turn outlives this request, hence the detached context.
	s.orch.SubmitText(context.Background(), req.Text)
	writeAccepted(w)
}

type selectRequest struct {
	Title      string `json:"title"`
	DetailText string `json:"detailText"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !decodeTrigger(w, r, &req) {
		return
	}
	if req.Title == "" || req.DetailText == "" {
		http.Error(w, "title and detailText are required", http.StatusBadRequest)
		return
	}
	s.orch.SelectSpec(context.Background(), assistant.Subject{
		Title:   req.Title,
		Details: req.DetailText,
	})
	writeAccepted(w)
}

type followUpRequest struct {
	Action string `json:"action"`
}

func (s *Server) handleFollowUp(w http.ResponseWriter, r *http.Request) {
	var req followUpRequest
	if !decodeTrigger(w, r, &req) {
		return
	}
	action := prompt.FollowUpAction(req.Action)
	if !action.Valid() {
		http.Error(w, "unknown follow-up action", http.StatusBadRequest)
		return
	}
	s.orch.SelectFollowUp(context.Background(), action)
	writeAccepted(w)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.orch.ClearConversation()
	w.WriteHeader(http.StatusNoContent)
}

func decodeTrigger(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeAccepted(w http.ResponseWriter) {
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
