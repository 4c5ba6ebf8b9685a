package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wanderkit/tripagent/pkg/trip"
	"github.com/wanderkit/tripagent/pkg/version"
)

// ChatRequest is the inbound body for the trip-planning endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// Handler serves the trip-planning HTTP API.
type Handler struct {
	planner *trip.Planner
	logger  *slog.Logger
}

// NewHandler creates the HTTP handler set over the planner.
func NewHandler(planner *trip.Planner, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		planner: planner,
		logger:  logger.With("component", "web"),
	}
}

// NewRouter wires the handler set into a router with the standard
// middleware stack.
func NewRouter(h *Handler, allowedOrigins []string, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RecoverMiddleware(logger))
	r.Use(RequestIDMiddleware(logger))
	r.Use(CORSMiddleware(allowedOrigins))

	r.HandleFunc("/chat", h.Chat).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/info", h.Info).Methods(http.MethodGet)
	return r
}

// Chat runs the trip-planning pipeline for a free-text query. Validation
// failures are rejected with HTTP 400 before the pipeline starts; pipeline
// outcomes, including geocoding failure, are expressed in the TripResult
// body with HTTP 200.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, ErrInvalidInput)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, ErrEmptyMessage)
		return
	}

	result := h.planner.Plan(r.Context(), req.Message)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// Health reports a fixed service status.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "tripagent",
		"version": version.BuildVersion,
	})
}

// infoResponse is the static service metadata payload.
var infoResponse = struct {
	Capabilities   []string `json:"capabilities"`
	ExampleQueries []string `json:"example_queries"`
}{
	Capabilities: []string{
		"Weather information for any location",
		"Tourist attractions and places to visit",
		"Combined trip planning with weather and places",
	},
	ExampleQueries: []string{
		"I'm going to go to Bangalore, let's plan my trip.",
		"What is the temperature in Paris?",
		"Tell me about the weather and places to visit in Tokyo.",
	},
}

// Info returns static metadata about the service capabilities.
func (h *Handler) Info(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infoResponse)
}
