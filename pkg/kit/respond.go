package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	reqID := chimw.GetReqID(r.Context())
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: reqID,
	})
}

// NotFoundDetails identifies the resource a lookup missed.
type NotFoundDetails struct {
	Resource string `json:"resource"`
	ID       any    `json:"id"`
}

// WriteNotFound answers 404 with "<resource> not found".
func WriteNotFound(w http.ResponseWriter, r *http.Request, resource string, id any) {
	WriteError(w, r, http.StatusNotFound, resource+" not found", NotFoundDetails{Resource: resource, ID: id})
}
