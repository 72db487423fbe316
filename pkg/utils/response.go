package utils

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"rajaprint-backend/internal/domain"
)

// maxBodyBytes caps decoded request bodies.
const maxBodyBytes = 1 << 20

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteSuccess writes the standard {success:true} envelope.
func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, domain.Response{Success: true, Message: message, Data: data})
}

// WriteError writes the standard {success:false} envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, domain.Response{Success: false, Message: message})
}

// DecodeJSON reads a JSON request body into v. An empty body is an error.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
}
