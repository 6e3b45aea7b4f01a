package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// WriteJSON serializes v with the JSON content type the dashboard expects.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encoding response: %v", err)
	}
}

// WriteError renders err as the standard error envelope. Anything that is not
// a typed *Error is coerced to the 500 envelope; the underlying cause is
// logged, never leaked to the caller.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		log.Printf("api: unexpected error: %v", err)
		apiErr = ErrServer
	}
	WriteJSON(w, apiErr.Status, apiErr)
}

// WriteMessage renders the {"message"} confirmation envelope used by all
// write operations.
func WriteMessage(w http.ResponseWriter, status int, format string, args ...any) {
	WriteJSON(w, status, map[string]string{"message": fmt.Sprintf(format, args...)})
}
