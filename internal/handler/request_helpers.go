package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HabitInventory_Go/internal/logger"
)

// URL parameter names
const (
	ParamUserID = "userID"
	ParamEggKey = "key"
	QueryType   = "type"
)

var errEmptyBody = errors.New(ErrMsgEmptyBody)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// UserItemsParams are the path and query parameters of the per-user routes
type UserItemsParams struct {
	UserID string `json:"userID" validate:"required,uuid"`
	Type   string `json:"type" validate:"omitempty,itemtype"`
}

// EggParams are the path parameters of the catalog lookup route
type EggParams struct {
	Key string `json:"key" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// readPayload reads the whole request body. The server's size limit surfaces
// here as *http.MaxBytesError.
func readPayload(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, errEmptyBody
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyBody
	}
	return data, nil
}

// respondReadError writes the response for a failed readPayload
func respondReadError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		log.Warn("Request body too large", "limit", maxBytesErr.Limit)
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge)
	case errors.Is(err, errEmptyBody):
		respondError(w, http.StatusBadRequest, ErrMsgEmptyBody)
	default:
		log.Error("Failed to read request body", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
	}
}

// userItemsParams extracts and validates the per-user parameters. On failure
// the response has already been written.
func userItemsParams(w http.ResponseWriter, r *http.Request) (UserItemsParams, bool) {
	params := UserItemsParams{
		UserID: chi.URLParam(r, ParamUserID),
		Type:   r.URL.Query().Get(QueryType),
	}
	return params, validateParams(w, r, params)
}

// validateParams validates a params struct and writes a 400 with per-field
// messages when it fails.
func validateParams(w http.ResponseWriter, r *http.Request, params interface{}) bool {
	if err := GetValidator().ValidateStruct(params); err != nil {
		logger.FromContext(r.Context()).Warn("Invalid request", "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}
