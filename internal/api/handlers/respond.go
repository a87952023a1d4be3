package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/megareality/estate/internal/api/types"
	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := types.HTTPStatus(appErr.CodeOf(err))
	body := types.FromAppError(err)
	if status == http.StatusInternalServerError {
		logger.From(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		body.Message = "Internal server error"
	}
	writeJSON(w, status, body)
}

func writeErrorStr(w http.ResponseWriter, status int, code appErr.Code, msg string) {
	writeJSON(w, status, types.APIError{Code: string(code), Message: msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.MessageResponse{Message: msg})
}

// decodeJSON reads the request body into dst. An empty body is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "Invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		writeErrorStr(w, http.StatusBadRequest, appErr.CodeInvalid, msg)
		return false
	}
	return true
}

// idParam parses the {id} route segment. Anything that is not a positive
// integer can never name a row, so it is reported as not found.
func idParam(w http.ResponseWriter, r *http.Request, entity string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		writeErrorStr(w, http.StatusNotFound, appErr.CodeNotFound, entity+" not found")
		return 0, false
	}
	return uint(id), true
}

// floatQuery parses an optional numeric query parameter.
func floatQuery(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, appErr.CodeInvalid, name+" must be a number")
		return nil, false
	}
	return &v, true
}
