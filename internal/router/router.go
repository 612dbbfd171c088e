package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"fitness-ai-backend/internal/handlers"
	"fitness-ai-backend/internal/middleware"
)

func New(
	pageHandler *handlers.PageHandler,
	chatHandler *handlers.ChatHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (30 req/min per IP): the model call is the one
	// expensive upstream dependency.
	chatLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chat Page ────
	r.Get("/", pageHandler.Home)

	// ──── API Routes ────
	r.Route("/api", func(r chi.Router) {
		r.With(chatLimiter.Middleware).Post("/chat", chatHandler.Chat)
	})

	return r
}
