package shelters

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"findmypet/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/shelters", listSheltersHandler(svc, log))
	r.Get("/shelter/{id}", getShelterHandler(svc, log))
	r.Get("/api/shelters", searchSheltersHandler(svc, log))
}

type shelterResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

type listSheltersResponse struct {
	Shelters []shelterResponse `json:"shelters"`
}

// ShelterInfo es la proyección pública (sin id) que también usan los found pets.
type ShelterInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

func ToShelterInfo(s Shelter) ShelterInfo {
	return ShelterInfo{
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Website: s.Website,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// listSheltersHandler godoc
// @Summary      List shelters
// @Tags         shelters
// @Produce      json
// @Success      200  {object}  listSheltersResponse
// @Failure      500  {object}  messageResponse
// @Router       /shelters [get]
func listSheltersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list shelters failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "An error occurred while retrieving shelters")
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, s := range items {
			out = append(out, shelterResponse{
				ID:      s.ID,
				Name:    s.Name,
				Address: s.Address,
				Phone:   s.Phone,
				Website: s.Website,
			})
		}
		writeJSON(w, http.StatusOK, listSheltersResponse{Shelters: out})
	}
}

// getShelterHandler godoc
// @Summary      Get shelter contact details
// @Tags         shelters
// @Produce      json
// @Param        id   path      string  true  "shelter id"
// @Success      200  {object}  ShelterInfo
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /shelter/{id} [get]
func getShelterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Shelter not found")
				return
			}
			log.Error("get shelter failed", map[string]any{"shelter_id": id, "err": err})
			writeError(w, http.StatusInternalServerError, "An error occurred while retrieving the shelter")
			return
		}

		writeJSON(w, http.StatusOK, ToShelterInfo(s))
	}
}

// searchSheltersHandler godoc
// @Summary      Search shelters near a point (raw provider payload)
// @Tags         shelters
// @Produce      json
// @Param        lat    query     number  true   "latitude"
// @Param        lng    query     number  true   "longitude"
// @Param        state  query     string  false  "region hint"
// @Success      200    {object}  object
// @Failure      400    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /api/shelters [get]
func searchSheltersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		raw, err := svc.SearchNearby(r.Context(), SearchInput{
			Lat:    q.Get("lat"),
			Lng:    q.Get("lng"),
			Region: q.Get("state"),
		})
		if err != nil {
			if errors.Is(err, ErrMalformedInput) {
				writeError(w, http.StatusBadRequest, "lat and lng must be valid coordinates")
				return
			}
			log.Error("shelter search failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "Error fetching shelters")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
