package common

import (
	"encoding/json"
	"net/http"
)

// ErrorBody represents a consistent error payload returned by the API.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes the provided value to the response writer as JSON.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError renders an error response using the canonical error shape.
func JSONError(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, map[string]any{
		"error": ErrorBody{Code: code, Message: message},
	})
}

// RenderError maps an error chain onto the canonical error shape, using the
// AppError code and status when present and a generic 500 otherwise.
func RenderError(w http.ResponseWriter, err error) {
	if app, ok := AsAppError(err); ok {
		status := app.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		message := app.Message
		if message == "" {
			message = app.Error()
		}
		JSONError(w, status, app.Code, message)
		return
	}
	JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}
