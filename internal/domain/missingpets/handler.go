package missingpets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"findmypet/internal/middleware"
	"findmypet/internal/platform/logger"
	"findmypet/internal/ports/media"
)

// RegisterRoutes monta las rutas de mascotas perdidas. requireAuth protege las rutas del dueño.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, requireAuth func(http.Handler) http.Handler, maxUpload int64) {
	r.Get("/missing-pets", listAllHandler(svc, log))

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)
		pr.Post("/register-missing-pet", registerHandler(svc, log, maxUpload))
		pr.Get("/user-missing-pets", listOwnerHandler(svc, log))
		pr.Post("/missing-pets/{petID}/reunited", reunitedHandler(svc, log))
	})
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type petResponse struct {
	ID                string           `json:"_id"`
	Name              string           `json:"name"`
	Age               string           `json:"age"`
	Breed             string           `json:"breed"`
	Color             string           `json:"color"`
	Gender            string           `json:"gender"`
	Description       string           `json:"description"`
	LastKnownLocation locationResponse `json:"lastKnownLocation"`
	Image             string           `json:"image"`
	UserID            string           `json:"userId,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	Status            Status           `json:"status"`
}

type listedResponse struct {
	petResponse
	ImageURL *string `json:"imageUrl"`
}

type listResponse struct {
	Message string           `json:"message"`
	Pets    []listedResponse `json:"pets"`
}

type registerResponse struct {
	Message  string `json:"message"`
	PetID    string `json:"petId"`
	ImageCID string `json:"imageCid"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toResponse(p MissingPet, withOwner bool) petResponse {
	out := petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Age:         p.Age,
		Breed:       p.Breed,
		Color:       p.Color,
		Gender:      p.Gender,
		Description: p.Description,
		LastKnownLocation: locationResponse{
			Latitude:  p.LastKnownLocation.Latitude,
			Longitude: p.LastKnownLocation.Longitude,
		},
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		Status:    p.Status,
	}
	if withOwner {
		out.UserID = p.UserID
	}
	return out
}

func toListResponse(msg string, items []Listed, withOwner bool) listResponse {
	pets := make([]listedResponse, 0, len(items))
	for _, it := range items {
		pets = append(pets, listedResponse{
			petResponse: toResponse(it.Pet, withOwner),
			ImageURL:    it.ImageURL,
		})
	}
	return listResponse{Message: msg, Pets: pets}
}

// registerHandler godoc
// @Summary      Register a missing pet
// @Tags         missing-pets
// @Accept       multipart/form-data
// @Produce      json
// @Security     ApiKeyAuth
// @Param        image              formData  file    true   "pet photo"
// @Param        name               formData  string  false  "name"
// @Param        age                formData  string  false  "age"
// @Param        breed              formData  string  false  "breed"
// @Param        color              formData  string  false  "color"
// @Param        gender             formData  string  false  "gender"
// @Param        description        formData  string  false  "description"
// @Param        lastKnownLocation  formData  string  true   "JSON {latitude, longitude}"
// @Success      201  {object}  registerResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /register-missing-pet [post]
func registerHandler(svc *Service, log logger.Logger, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			if errors.Is(err, http.ErrNotMultipart) {
				writeError(w, http.StatusBadRequest, "Image file is required")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		image, err := formFile(r, "image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Image file is required")
			return
		}

		p, err := svc.Register(r.Context(), claims.UserID, RegisterInput{
			Name:              r.FormValue("name"),
			Age:               r.FormValue("age"),
			Breed:             r.FormValue("breed"),
			Color:             r.FormValue("color"),
			Gender:            r.FormValue("gender"),
			Description:       r.FormValue("description"),
			LastKnownLocation: r.FormValue("lastKnownLocation"),
		}, image)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingField):
				writeError(w, http.StatusBadRequest, "Image file is required")
			case errors.Is(err, ErrMalformedInput):
				writeError(w, http.StatusBadRequest, "lastKnownLocation must be a JSON object with latitude and longitude")
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "No token provided")
			default:
				log.Error("register missing pet failed", map[string]any{"user_id": claims.UserID, "err": err})
				writeError(w, http.StatusInternalServerError, "An error occurred while registering the missing pet")
			}
			return
		}

		writeJSON(w, http.StatusCreated, registerResponse{
			Message:  "Missing pet registered successfully",
			PetID:    p.ID,
			ImageCID: p.Image,
		})
	}
}

// listAllHandler godoc
// @Summary      List every missing pet (owner id omitted)
// @Tags         missing-pets
// @Produce      json
// @Success      200  {object}  listResponse
// @Failure      500  {object}  messageResponse
// @Router       /missing-pets [get]
func listAllHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			log.Error("list missing pets failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "An error occurred while retrieving all missing pets")
			return
		}
		writeJSON(w, http.StatusOK, toListResponse("All missing pets retrieved successfully", items, false))
	}
}

// listOwnerHandler godoc
// @Summary      List the caller's missing pets
// @Tags         missing-pets
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  listResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /user-missing-pets [get]
func listOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrForbidden) {
				writeError(w, http.StatusForbidden, "No token provided")
				return
			}
			log.Error("list owner missing pets failed", map[string]any{"user_id": claims.UserID, "err": err})
			writeError(w, http.StatusInternalServerError, "An error occurred while retrieving the user's missing pets")
			return
		}
		writeJSON(w, http.StatusOK, toListResponse("User's missing pets retrieved successfully", items, true))
	}
}

// reunitedHandler godoc
// @Summary      Mark a missing pet as reunited
// @Tags         missing-pets
// @Produce      json
// @Security     ApiKeyAuth
// @Param        petID  path      string  true  "pet id"
// @Success      200    {object}  petResponse
// @Failure      403    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Failure      409    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /missing-pets/{petID}/reunited [post]
func reunitedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		petID := chi.URLParam(r, "petID")

		p, err := svc.MarkReunited(r.Context(), claims.UserID, petID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Missing pet not found")
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "Only the owner can mark this pet as reunited")
			case errors.Is(err, ErrConflict):
				writeError(w, http.StatusConflict, "Pet is not in missing status")
			default:
				log.Error("mark reunited failed", map[string]any{"pet_id": petID, "err": err})
				writeError(w, http.StatusInternalServerError, "An error occurred while updating the missing pet")
			}
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p, true))
	}
}

// formFile lee el archivo completo del campo field. http.ErrMissingFile si no vino.
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
