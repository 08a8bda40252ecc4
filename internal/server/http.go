package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/trivia"
)

// Handler wires the API routes and wraps them with CORS, request logging
// and metrics middleware. Exposed separately from New so tests can mount
// the full stack on an httptest server.
func Handler(cfg *config.App, logger zerolog.Logger, handlers *trivia.HTTPHandlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", handlers.ListCategories)
	mux.HandleFunc("GET /categories/{category_id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.Questions)
	mux.HandleFunc("POST /questions", handlers.Questions)
	mux.HandleFunc("POST /questions/create", handlers.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", handlers.PlayQuiz)

	// CORS outermost so preflights never reach the mux.
	return CORS(cfg.CORS, RequestLogger(logger, Metrics(mux)))
}

// New builds the API http.Server for the configured listen address.
func New(cfg *config.App, logger zerolog.Logger, handlers *trivia.HTTPHandlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: Handler(cfg, logger, handlers),
	}
}
