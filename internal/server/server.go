// Package server is the HTTP boundary of trafficq. It exposes the predict
// endpoint consumed by the front-end chat client and forwards the raw
// question text to the query handler; all decision logic lives elsewhere.
//
// Contract:
//
//	POST /api/predict {"question": "..."}  -> 200 {"response": "..."}
//	missing "question" key or bad JSON     -> 400 {"error": "..."}
//	handler panic                          -> 500 {"error": "..."}
//
// Cross-origin requests are permitted from any origin.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/citypulse/trafficq/internal/logger"
)

// Responder answers a free-text question with a rendered reply. It never
// returns an error: user-input problems come back as text.
type Responder interface {
	HandleUserQuery(message string) string
}

// Server routes API requests to a Responder.
type Server struct {
	responder   Responder
	datasetSize int
	handler     http.Handler
}

// New builds the router with CORS, request-ID, and panic-recovery middleware.
// datasetSize is reported by the health endpoint.
func New(responder Responder, datasetSize int) *Server {
	s := &Server{
		responder:   responder,
		datasetSize: datasetSize,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(recoverer)
	r.Post("/api/predict", s.handlePredict)
	r.Get("/api/health", s.handleHealth)

	s.handler = cors.AllowAll().Handler(r)
	return s
}

// Handler returns the fully assembled HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

type predictRequest struct {
	Question *string `json:"question"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing 'question' in request body"})
		return
	}

	reply := s.responder.HandleUserQuery(*req.Question)
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": s.datasetSize,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

// requestID tags every request with a UUID and logs an access line.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := uuid.NewString()
		w.Header().Set("X-Request-ID", rid)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("%s %s rid=%s took=%v", r.Method, r.URL.Path, rid, time.Since(start))
	})
}

// recoverer converts handler panics into the 500 JSON error contract. Only
// infrastructure faults reach this path; user-input problems are answered
// with 200-level text by the responder.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic while handling %s %s: %v", r.Method, r.URL.Path, rec)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": toString(rec)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func toString(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "internal server error"
}
