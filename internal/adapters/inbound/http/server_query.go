package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-mcpweb/internal/domain"
)

// QueryReq is the body accepted by POST /query.
type QueryReq struct {
	Query any `json:"query"`
}

// QueryResp is the body returned by a successful POST /query.
type QueryResp struct {
	Response string `json:"response"`
}

// Query relays a natural-language query to the orchestrator.
func (api *QueryRelayServer) Query(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
	case http.MethodGet:
		respondError(w, http.StatusMethodNotAllowed, "GET method not allowed on /query. Please use POST.")
		return
	default:
		respondError(w, http.StatusMethodNotAllowed, fmt.Sprintf("%s method not allowed on /query.", r.Method))
		return
	}

	if api.ProcessQueryUCase == nil {
		respondError(w, http.StatusInternalServerError, "MCP Client not initialized")
		return
	}

	var req QueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid query")
		return
	}
	query, ok := req.Query.(string)
	if !ok || query == "" {
		respondError(w, http.StatusBadRequest, "Invalid query")
		return
	}

	api.mu.Lock()
	response, err := api.ProcessQueryUCase.Execute(r.Context(), query)
	api.mu.Unlock()
	if err != nil {
		var validationErr *domain.ValidationErr
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, "Invalid query")
			return
		}
		if api.Logger != nil {
			api.Logger.Printf("QueryRelayServer: error processing query: %v", err)
		}
		respondError(w, http.StatusInternalServerError, "Error processing query")
		return
	}

	respondJSON(w, http.StatusOK, QueryResp{Response: response})
}
