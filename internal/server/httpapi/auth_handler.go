package httpapi

import (
	"errors"
	"net/http"

	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/server/auth"
)

type AuthHandler struct {
	svc *auth.Service
	log logging.Logger
}

func NewAuthHandler(svc *auth.Service, log logging.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type identityResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	Identity identityResponse `json:"identity"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) error {
	var payload loginPayload
	if err := decodeJSON(r.Body, &payload); err != nil {
		return err
	}
	defer r.Body.Close()

	token, user, err := h.svc.Login(r.Context(), payload.Email, payload.Password)
	if errors.Is(err, auth.ErrBadCredentials) {
		return NewAPIError("invalid credentials", http.StatusUnauthorized)
	}
	if err != nil {
		return err
	}

	return writeJSON(w, loginResponse{
		Token:    token,
		Identity: identityResponse{Name: user.Name, Email: user.Email, Role: user.Role},
	}, http.StatusOK)
}

// SessionHandler reports the identity behind the presented token. requireAuth
// has already resolved it; this just echoes the result.
func (h *AuthHandler) SessionHandler(w http.ResponseWriter, r *http.Request) error {
	user := userFromRequest(r)
	return writeJSON(w, identityResponse{Name: user.Name, Email: user.Email, Role: user.Role}, http.StatusOK)
}

// LogoutHandler acknowledges the logout. Tokens are stateless, so there is
// nothing to revoke server-side; the client discards its copy.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) error {
	user := userFromRequest(r)
	h.log.Info(r.Context(), "logout", "email", user.Email)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
