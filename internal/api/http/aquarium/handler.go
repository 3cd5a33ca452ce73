package aquarium

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	"github.com/oshokin/aquarium/internal/logger"
	service "github.com/oshokin/aquarium/internal/service/aquarium"
	"github.com/oshokin/aquarium/internal/version"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	CreateAquarium(ctx context.Context, input service.AquariumInput) (*domain.Aquarium, error)
	ListAquariums(ctx context.Context) ([]*domain.Aquarium, error)
	GetAquarium(ctx context.Context, id int64) (*domain.Aquarium, error)
	UpdateAquarium(ctx context.Context, id int64, input service.AquariumInput) (*domain.Aquarium, error)
	DeleteAquarium(ctx context.Context, id int64) error
	AddFish(ctx context.Context, aquariumID int64, name string, species domain.Species) (*domain.Fish, error)
	FeedFishes(ctx context.Context, aquariumID int64, foodQuantity int) (*domain.Aquarium, error)
	Clean(ctx context.Context, aquariumID int64) (*domain.Aquarium, error)

	ListFish(ctx context.Context) ([]*domain.Fish, error)
	GetFish(ctx context.Context, id int64) (*domain.Fish, error)
	UpdateFish(ctx context.Context, id int64, input service.FishInput) (*domain.Fish, error)
	DeleteFish(ctx context.Context, id int64) error
}

// Handler implements the aquarium REST API.
type Handler struct {
	// router dispatches requests to the handler methods.
	router *mux.Router
	// service provides the business logic.
	service Service
}

// NewHandler wires the provided service implementation into an http.Handler.
func NewHandler(ctx context.Context, service Service) *Handler {
	h := &Handler{
		router:  mux.NewRouter(),
		service: service,
	}

	h.routes(ctx)

	return h
}

// routes registers every endpoint.
func (h *Handler) routes(ctx context.Context) {
	h.router.Use(requestContext(ctx))
	h.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, "route not found", http.StatusNotFound)
	})
	h.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	h.router.HandleFunc("/healthz", h.handleHealthCheck).Methods(http.MethodGet)

	api := h.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/aquariums", h.handleCreateAquarium).Methods(http.MethodPost)
	api.HandleFunc("/aquariums", h.handleListAquariums).Methods(http.MethodGet)
	api.HandleFunc("/aquariums/{id:[0-9]+}", h.handleGetAquarium).Methods(http.MethodGet)
	api.HandleFunc("/aquariums/{id:[0-9]+}", h.handleUpdateAquarium).Methods(http.MethodPut)
	api.HandleFunc("/aquariums/{id:[0-9]+}", h.handleDeleteAquarium).Methods(http.MethodDelete)
	api.HandleFunc("/aquariums/{id:[0-9]+}/fish", h.handleAddFish).Methods(http.MethodPost)
	api.HandleFunc("/aquariums/{id:[0-9]+}/feed", h.handleFeedFishes).Methods(http.MethodPut)
	api.HandleFunc("/aquariums/{id:[0-9]+}/clean", h.handleClean).Methods(http.MethodPut)

	api.HandleFunc("/fish", h.handleCreateFish).Methods(http.MethodPost)
	api.HandleFunc("/fish", h.handleListFish).Methods(http.MethodGet)
	api.HandleFunc("/fish/{id:[0-9]+}", h.handleGetFish).Methods(http.MethodGet)
	api.HandleFunc("/fish/{id:[0-9]+}", h.handleUpdateFish).Methods(http.MethodPut)
	api.HandleFunc("/fish/{id:[0-9]+}", h.handleDeleteFish).Methods(http.MethodDelete)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// handleHealthCheck reports that the process is up.
func (h *Handler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Short(),
	})
}

// messageResponse is returned by endpoints without a resource body.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes body with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf(ctx, "Error encoding response: %v", err)
	}
}
