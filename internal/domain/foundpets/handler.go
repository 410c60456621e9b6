package foundpets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"findmypet/internal/domain/shelters"
	"findmypet/internal/middleware"
	"findmypet/internal/platform/logger"
	"findmypet/internal/ports/media"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, requireAuth func(http.Handler) http.Handler, maxUpload int64) {
	r.Post("/register-found-pet", registerHandler(svc, log, maxUpload))
	r.Get("/found-pets", listAllHandler(svc, log))
	r.With(requireAuth).Post("/found-pets/{petID}/claim", claimHandler(svc, log))
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type petResponse struct {
	ID        string           `json:"_id"`
	Location  locationResponse `json:"location"`
	Date      time.Time        `json:"date"`
	Shelter   string           `json:"shelter"`
	Picture   string           `json:"picture"`
	CreatedAt time.Time        `json:"createdAt"`
	Status    Status           `json:"status"`
	ClaimedBy string           `json:"claimedBy,omitempty"`
}

type listedResponse struct {
	petResponse
	PictureURL  *string               `json:"pictureUrl"`
	ShelterInfo *shelters.ShelterInfo `json:"shelterInfo"`
}

type listResponse struct {
	Message string           `json:"message"`
	Pets    []listedResponse `json:"pets"`
}

type registerResponse struct {
	Message    string `json:"message"`
	PetID      string `json:"petId"`
	PictureCID string `json:"pictureCid"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toResponse(p FoundPet) petResponse {
	return petResponse{
		ID:        p.ID,
		Location:  locationResponse{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude},
		Date:      p.Date,
		Shelter:   p.Shelter,
		Picture:   p.Picture,
		CreatedAt: p.CreatedAt,
		Status:    p.Status,
		ClaimedBy: p.ClaimedBy,
	}
}

// registerHandler godoc
// @Summary      Register a found pet (no account needed)
// @Tags         found-pets
// @Accept       multipart/form-data
// @Produce      json
// @Param        picture   formData  file    true  "pet photo"
// @Param        location  formData  string  true  "JSON {latitude, longitude}"
// @Param        date      formData  string  true  "RFC3339 or YYYY-MM-DD"
// @Param        shelter   formData  string  true  "shelter name"
// @Success      201  {object}  registerResponse
// @Failure      400  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /register-found-pet [post]
func registerHandler(svc *Service, log logger.Logger, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			writeError(w, http.StatusBadRequest, "Location, date, and shelter are required fields")
			return
		}

		in := RegisterInput{
			Location: r.FormValue("location"),
			Date:     r.FormValue("date"),
			Shelter:  r.FormValue("shelter"),
		}

		picture, err := formFile(r, "picture")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, "invalid picture upload")
			return
		}

		p, err := svc.Register(r.Context(), in, picture)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingField):
				if picture == nil && in.Location != "" && in.Date != "" && in.Shelter != "" {
					writeError(w, http.StatusBadRequest, "Picture file is required")
					return
				}
				writeError(w, http.StatusBadRequest, "Location, date, and shelter are required fields")
			case errors.Is(err, ErrMalformedInput):
				writeError(w, http.StatusBadRequest, "location must be a JSON object and date a valid date")
			default:
				log.Error("register found pet failed", map[string]any{"err": err})
				writeError(w, http.StatusInternalServerError, "An error occurred while registering the found pet")
			}
			return
		}

		writeJSON(w, http.StatusCreated, registerResponse{
			Message:    "Found pet registered successfully",
			PetID:      p.ID,
			PictureCID: p.Picture,
		})
	}
}

// listAllHandler godoc
// @Summary      List found pets still waiting for their owner
// @Tags         found-pets
// @Produce      json
// @Success      200  {object}  listResponse
// @Failure      500  {object}  messageResponse
// @Router       /found-pets [get]
func listAllHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			log.Error("list found pets failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "An error occurred while retrieving all found pets")
			return
		}

		pets := make([]listedResponse, 0, len(items))
		for _, it := range items {
			lr := listedResponse{
				petResponse: toResponse(it.Pet),
				PictureURL:  it.PictureURL,
			}
			if it.Shelter != nil {
				info := shelters.ToShelterInfo(*it.Shelter)
				lr.ShelterInfo = &info
			}
			pets = append(pets, lr)
		}
		writeJSON(w, http.StatusOK, listResponse{Message: "All found pets retrieved successfully", Pets: pets})
	}
}

// claimHandler godoc
// @Summary      Claim a found pet
// @Tags         found-pets
// @Produce      json
// @Security     ApiKeyAuth
// @Param        petID  path      string  true  "pet id"
// @Success      200    {object}  petResponse
// @Failure      401    {object}  messageResponse
// @Failure      403    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Failure      409    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /found-pets/{petID}/claim [post]
func claimHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		petID := chi.URLParam(r, "petID")

		p, err := svc.Claim(r.Context(), claims.UserID, petID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Found pet not found")
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "No token provided")
			case errors.Is(err, ErrConflict):
				writeError(w, http.StatusConflict, "Pet has already been claimed")
			default:
				log.Error("claim found pet failed", map[string]any{"pet_id": petID, "err": err})
				writeError(w, http.StatusInternalServerError, "An error occurred while claiming the found pet")
			}
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

func formFile(r *http.Request, field string) (*media.File, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, http.ErrMissingFile
	}
	return &media.File{
		Name:        hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
