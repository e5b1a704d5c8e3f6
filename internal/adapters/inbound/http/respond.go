package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResp is the JSON body of every non-2xx relay answer.
type ErrorResp struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrorResp{Error: message})
}
