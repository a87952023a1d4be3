package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/megareality/estate/internal/api/types"
	appErr "github.com/megareality/estate/pkg/errors"
)

func writeJSONError(w http.ResponseWriter, status int, code appErr.Code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.APIError{Code: string(code), Message: msg})
}
