package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barberbook/barberbook/internal/models"
	"github.com/barberbook/barberbook/internal/server/repositories/clients"
)

type ClientsHandler struct {
	repo clients.Repository
}

func NewClientsHandler(repo clients.Repository) *ClientsHandler {
	return &ClientsHandler{repo: repo}
}

type clientPayload struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Mobile string `json:"mobile"`
}

func (h *ClientsHandler) ListHandler(w http.ResponseWriter, r *http.Request) error {
	list, err := h.repo.List(r.Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []models.Client{}
	}
	return writeJSON(w, list, http.StatusOK)
}

func (h *ClientsHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) error {
	var payload clientPayload
	if err := decodeJSON(r.Body, &payload); err != nil {
		return err
	}
	defer r.Body.Close()

	client := models.Client{
		ID:     chi.URLParam(r, "clientID"),
		Name:   payload.Name,
		Email:  payload.Email,
		Mobile: payload.Mobile,
	}

	err := h.repo.Update(r.Context(), client)
	if errors.Is(err, clients.ErrNotFound) {
		return NewAPIError("client not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *ClientsHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) error {
	err := h.repo.Delete(r.Context(), chi.URLParam(r, "clientID"))
	if errors.Is(err, clients.ErrNotFound) {
		return NewAPIError("client not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
