package aquarium

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	service "github.com/oshokin/aquarium/internal/service/aquarium"
)

var (
	errInvalidID       = errors.New("invalid id")
	errInvalidBody     = errors.New("invalid request body")
	errInvalidQuantity = errors.New("quantity must be an integer")
)

// aquariumRequest is the body of aquarium create and update requests.
// Omitted fields keep their default or current value.
type aquariumRequest struct {
	Capacity    *int `json:"capacity"`
	Clearness   *int `json:"clearness"`
	Temperature *int `json:"temperature"`
}

func (req aquariumRequest) toInput() service.AquariumInput {
	return service.AquariumInput{
		Capacity:    req.Capacity,
		Clearness:   req.Clearness,
		Temperature: req.Temperature,
	}
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, mux.Vars(r)["id"])
	}

	return id, nil
}

// decodeBody reads a JSON body into dst, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}

	return nil
}

func (h *Handler) handleCreateAquarium(w http.ResponseWriter, r *http.Request) {
	var req aquariumRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	created, err := h.service.CreateAquarium(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (h *Handler) handleListAquariums(w http.ResponseWriter, r *http.Request) {
	aquariums, err := h.service.ListAquariums(r.Context())
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	if aquariums == nil {
		aquariums = []*domain.Aquarium{}
	}

	writeJSON(r.Context(), w, http.StatusOK, aquariums)
}

func (h *Handler) handleGetAquarium(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	found, err := h.service.GetAquarium(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, found)
}

func (h *Handler) handleUpdateAquarium(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	var req aquariumRequest
	if err = decodeBody(r, &req); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	updated, err := h.service.UpdateAquarium(r.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteAquarium(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err = h.service.DeleteAquarium(r.Context(), id); err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, messageResponse{Message: "aquarium deleted"})
}

// handleAddFish puts a new fish into the aquarium. Name and species come
// from the query string.
func (h *Handler) handleAddFish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	query := r.URL.Query()

	species, err := domain.ParseSpecies(query.Get("species"))
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	created, err := h.service.AddFish(r.Context(), id, query.Get("name"), species)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (h *Handler) handleFeedFishes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		writeJSONError(w, errInvalidQuantity.Error(), http.StatusBadRequest)

		return
	}

	fed, err := h.service.FeedFishes(r.Context(), id, quantity)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, fed)
}

func (h *Handler) handleClean(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	cleaned, err := h.service.Clean(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, cleaned)
}
