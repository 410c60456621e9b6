package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"findmypet/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/pets/{petID}/events", listEventsHandler(svc, log))
}

// actorResponse expone solo el tipo: la ruta es pública y el id del actor
// identificaría al dueño o a quien reclamó la mascota.
type actorResponse struct {
	Type ActorType `json:"type"`
}

type eventResponse struct {
	ID         string        `json:"id"`
	PetID      string        `json:"petId"`
	PetKind    PetKind       `json:"petKind"`
	Type       EventType     `json:"type"`
	OccurredAt time.Time     `json:"occurredAt"`
	Actor      actorResponse `json:"actor"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// listEventsHandler godoc
// @Summary      Status timeline of a pet
// @Tags         events
// @Produce      json
// @Param        petID  path      string  true  "pet id"
// @Success      200    {object}  listEventsResponse
// @Failure      400    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /pets/{petID}/events [get]
func listEventsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, messageResponse{Message: "pet id required"})
				return
			}
			log.Error("list pet events failed", map[string]any{"pet_id": petID, "err": err})
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "An error occurred while retrieving pet events"})
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, eventResponse{
				ID:         e.ID,
				PetID:      e.PetID,
				PetKind:    e.PetKind,
				Type:       e.Type,
				OccurredAt: e.OccurredAt,
				Actor:      actorResponse{Type: e.Actor.Type},
			})
		}
		writeJSON(w, http.StatusOK, listEventsResponse{Events: out})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
