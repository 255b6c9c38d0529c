package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
)

const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeInvalidPoll    = "INVALID_POLL"
	codeAuthRequired   = "AUTH_REQUIRED"
	codeInternal       = "INTERNAL"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, facade.Response[any]{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// writeResult writes res with okStatus on success, or with the status that
// matches its error code otherwise.
func writeResult[T any](w http.ResponseWriter, okStatus int, res facade.Response[T]) {
	if res.Success {
		writeJSON(w, okStatus, res)
		return
	}
	writeJSON(w, statusFor(res.Code), res)
}

func statusFor(code string) int {
	switch code {
	case "POLL_NOT_FOUND", "USER_NOT_FOUND":
		return http.StatusNotFound
	case "AUTH_REQUIRED", "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	case "ALREADY_COMPLETED", "USERNAME_TAKEN", "DUPLICATE_KEY":
		return http.StatusConflict
	case "INCOMPLETE_SUBMISSION", "UNKNOWN_QUESTION", "DUPLICATE_ANSWER",
		"INVALID_SINGLE_CHOICE", "INVALID_OPTION", codeInvalidPoll:
		return http.StatusUnprocessableEntity
	case codeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
