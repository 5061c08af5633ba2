package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	appChat "github.com/marketplace/dealchat/internal/application/chat"
	appDeal "github.com/marketplace/dealchat/internal/application/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
	"github.com/marketplace/dealchat/internal/domain/notification"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Server holds dependencies for HTTP handlers.
type Server struct {
	dealSvc    *appDeal.Service
	chatSvc    *appChat.Service
	sseHub     notification.SSEHub
	jwtSecret  []byte
	corsOrigin string
	checks     map[string]HealthCheck
	logger     zerolog.Logger
}

func NewServer(
	dealSvc *appDeal.Service,
	chatSvc *appChat.Service,
	sseHub notification.SSEHub,
	jwtSecret []byte,
	corsOrigin string,
	checks map[string]HealthCheck,
	logger zerolog.Logger,
) *Server {
	return &Server{
		dealSvc:    dealSvc,
		chatSvc:    chatSvc,
		sseHub:     sseHub,
		jwtSecret:  jwtSecret,
		corsOrigin: corsOrigin,
		checks:     checks,
		logger:     logger.With().Str("component", "http").Logger(),
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.corsOrigin != "" {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   []string{s.corsOrigin},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler)
	}

	r.Get("/healthz", s.healthz)

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.requireAuth)

		// event streams outlive the request timeout
		r.Get("/chats/{chatId}/events", s.chatEvents)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))

			r.Post("/request-deal", s.requestDeal)

			r.Post("/chats", s.createChat)
			r.Get("/chats", s.listChats)
			r.Get("/chats/{chatId}/deal", s.getChatDeal)
			r.Post("/chats/{chatId}/deal", s.requestChatDeal)

			r.Get("/deals/{dealId}/votes", s.getVotes)
		})
	})

	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	result := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check(r.Context()); err != nil {
			status = http.StatusServiceUnavailable
			result[name] = err.Error()
			continue
		}
		result[name] = "ok"
	}
	respondJSON(w, status, result)
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

// respondServiceError maps domain error kinds to status codes.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, market.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, market.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, market.ErrConflict):
		respondError(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, market.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Str("request_id", middleware.GetReqID(r.Context())).Msg("request failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

func contextFromRequest(r *http.Request) context.Context {
	return r.Context()
}
