// Package httpapi exposes the backend over JSON/HTTP: login and session
// endpoints for the terminal client plus the customer-record API.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barberbook/barberbook/internal/logging"
)

// APIError is an error a handler wants reported to the caller as-is, with
// the given HTTP status. Any other error becomes a logged 500.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(message string, code int) *APIError {
	return &APIError{Code: code, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// HandlerFunc is an http handler that reports failures by returning an error
// instead of writing the response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Mux adapts error-returning handlers onto a chi router.
type Mux struct {
	chi.Router
	log logging.Logger
}

func NewMux(log logging.Logger) *Mux {
	return &Mux{Router: chi.NewRouter(), log: log}
}

func (m *Mux) handler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			m.log.Error(r.Context(), "handler failed", "method", r.Method, "path", r.URL.Path, "reason", err.Error())
			apiErr = NewAPIError("internal server error", http.StatusInternalServerError)
		}

		if err := writeJSON(w, apiErr, apiErr.Code); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func (m *Mux) Get(path string, h HandlerFunc) {
	m.Router.Get(path, m.handler(h))
}

func (m *Mux) Post(path string, h HandlerFunc) {
	m.Router.Post(path, m.handler(h))
}

func (m *Mux) Put(path string, h HandlerFunc) {
	m.Router.Put(path, m.handler(h))
}

func (m *Mux) Delete(path string, h HandlerFunc) {
	m.Router.Delete(path, m.handler(h))
}

func (m *Mux) Route(path string, f func(r *Mux)) {
	m.Router.Route(path, func(r chi.Router) {
		f(&Mux{Router: r, log: m.log})
	})
}

// Group registers routes under the same path prefix with their own
// middleware stack.
func (m *Mux) Group(f func(r *Mux)) {
	m.Router.Group(func(r chi.Router) {
		f(&Mux{Router: r, log: m.log})
	})
}
