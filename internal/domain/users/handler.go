package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"findmypet/internal/platform/logger"
)

// RegisterRoutes monta /create_user y /login. limit (opcional) envuelve ambas rutas.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, limit func(http.Handler) http.Handler) {
	rr := r
	if limit != nil {
		rr = r.With(limit)
	}
	rr.Post("/create_user", createUserHandler(svc, log))
	rr.Post("/login", loginHandler(svc, log))
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createUserHandler godoc
// @Summary      Create a user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "email and password"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /create_user [post]
func createUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Create(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingField):
				writeError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, ErrDuplicateEmail):
				writeError(w, http.StatusBadRequest, "Email already exists")
			default:
				log.Error("create user failed", map[string]any{"err": err})
				writeError(w, http.StatusInternalServerError, "An error occurred while creating the user")
			}
			return
		}

		writeJSON(w, http.StatusCreated, createUserResponse{
			Message: "User created successfully",
			UserID:  u.ID,
		})
	}
}

// loginHandler godoc
// @Summary      Log in and obtain a bearer token (valid 24h)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "email and password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingField):
				writeError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				log.Error("login failed", map[string]any{"err": err})
				writeError(w, http.StatusInternalServerError, "An error occurred during login")
			}
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Message: "Login successful",
			Token:   res.Token,
			UserID:  res.UserID,
		})
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
