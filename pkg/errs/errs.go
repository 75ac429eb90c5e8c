// Package errs holds the error taxonomy every handler renders to the
// client as {code, message}, where code is the HTTP status name.
package errs

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func InvalidArgument(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Code: "CONFLICT", Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: msg}
}

// Write renders err as the API error body. Anything outside the
// taxonomy becomes an internal failure with a generic message.
func Write(w http.ResponseWriter, err error) {
	apiErr := new(Error)
	if !errors.As(err, &apiErr) {
		apiErr = Internal("Internal server error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	if encErr := json.NewEncoder(w).Encode(apiErr); encErr != nil {
		log.Println("errs: failed writing error response:", encErr)
	}
}
