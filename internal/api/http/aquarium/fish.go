package aquarium

import (
	"net/http"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	service "github.com/oshokin/aquarium/internal/service/aquarium"
)

// createFishRequest is the body of POST /fish.
type createFishRequest struct {
	AquariumID int64          `json:"aquarium_id"`
	Name       string         `json:"name"`
	Species    domain.Species `json:"species"`
}

// updateFishRequest is the body of PUT /fish/{id}. Omitted fields are kept.
type updateFishRequest struct {
	Name    *string         `json:"name"`
	Species *domain.Species `json:"species"`
	Hunger  *int            `json:"hunger"`
	Health  *int            `json:"health"`
	Age     *int            `json:"age"`
}

func (req updateFishRequest) toInput() service.FishInput {
	return service.FishInput{
		Name:    req.Name,
		Species: req.Species,
		Hunger:  req.Hunger,
		Health:  req.Health,
		Age:     req.Age,
	}
}

// handleCreateFish adds a fish to the aquarium named in the body,
// going through the same capacity check as handleAddFish.
func (h *Handler) handleCreateFish(w http.ResponseWriter, r *http.Request) {
	var req createFishRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	if req.AquariumID <= 0 {
		writeServiceError(w, r, domain.NewValidationError("aquarium_id", "is required"))

		return
	}

	created, err := h.service.AddFish(r.Context(), req.AquariumID, req.Name, req.Species)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (h *Handler) handleListFish(w http.ResponseWriter, r *http.Request) {
	fish, err := h.service.ListFish(r.Context())
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	if fish == nil {
		fish = []*domain.Fish{}
	}

	writeJSON(r.Context(), w, http.StatusOK, fish)
}

func (h *Handler) handleGetFish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	found, err := h.service.GetFish(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, found)
}

func (h *Handler) handleUpdateFish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	var req updateFishRequest
	if err = decodeBody(r, &req); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	updated, err := h.service.UpdateFish(r.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteFish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err = h.service.DeleteFish(r.Context(), id); err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, messageResponse{Message: "fish deleted"})
}
