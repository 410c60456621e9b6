package breeds

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"findmypet/internal/platform/logger"
	"findmypet/internal/ports/breeds"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, maxUpload int64) {
	r.Post("/predict", predictHandler(svc, log, maxUpload))
}

type messageResponse struct {
	Message string `json:"message"`
}

// predictHandler godoc
// @Summary      Predict the breed of a pet photo
// @Tags         breeds
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "pet photo"
// @Success      200   {object}  object
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /predict [post]
func predictHandler(svc *Service, log logger.Logger, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}

		var data []byte
		if f, _, err := r.FormFile("file"); err == nil {
			data, err = io.ReadAll(f)
			f.Close()
			if err != nil {
				writeError(w, http.StatusBadRequest, "could not read file")
				return
			}
		}

		out, err := svc.Predict(r.Context(), data)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingFile):
				writeError(w, http.StatusBadRequest, "No file uploaded")
			case errors.Is(err, breeds.ErrInvalidImage):
				writeError(w, http.StatusBadRequest, "File is not a supported image")
			case errors.Is(err, breeds.ErrNotConfigured):
				writeError(w, http.StatusServiceUnavailable, "Breed prediction is not available")
			default:
				log.Error("breed prediction failed", map[string]any{"err": err})
				writeError(w, http.StatusInternalServerError, "Error processing image")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}
