package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, v any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

// decodeJSON parses the request body into v and runs struct validation.
// Both failure modes come back as a 400 the caller can return directly.
func decodeJSON(body io.Reader, v any) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return NewAPIError("malformed request body", http.StatusBadRequest)
	}
	if err := validate.Struct(v); err != nil {
		return NewAPIError(err.Error(), http.StatusBadRequest)
	}
	return nil
}
