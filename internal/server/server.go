package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"reelscript/internal/app"
)

// Runner abstracts the pipeline so handlers can be tested with a stub.
type Runner interface {
	Run(ctx context.Context, req app.Request) *app.Generation
}

type Server struct {
	runner Runner
}

func New(runner Runner) (*Server, error) {
	if runner == nil {
		return nil, errors.New("pipeline runner required")
	}
	return &Server{runner: runner}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generations", s.handleGenerate)
	mux.HandleFunc("/healthz", s.handleHealth)
	return logMiddleware(mux)
}

type generateRequest struct {
	Topic    string `json:"topic"`
	Duration int    `json:"duration"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
	Language string `json:"language"`
}

type generateResponse struct {
	Outline  string `json:"outline"`
	Script   string `json:"script"`
	Hashtags string `json:"hashtags"`
	Rendered string `json:"rendered"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	req := app.Request{
		Topic:    body.Topic,
		Duration: body.Duration,
		Tone:     body.Tone,
		Platform: body.Platform,
		Language: body.Language,
	}
	req.ApplyDefaults()

	// Reject bad input before any completion call goes out.
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	gen := s.runner.Run(r.Context(), req)
	if gen.Err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: gen.Err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Outline:  gen.Outline,
		Script:   gen.Script,
		Hashtags: gen.Hashtags,
		Rendered: gen.Render(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
