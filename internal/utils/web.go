package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/memory-page/memoboard/internal/api"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
	"github.com/memory-page/memoboard/internal/logger"
)

// WriteJSON writes v with the given status. Every response, success or
// failure, goes through here so the {detail, data} envelope stays uniform.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteError converts an error into the failure envelope. Domain errors
// carry their own status; anything else is a 500.
func WriteError(w http.ResponseWriter, err error) {
	if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
		WriteJSON(w, e.StatusCode, api.Response{Detail: e.Message})
		return
	}
	logger.Log.Error("unexpected error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.Response{Detail: "Internal server error"})
}

// DecodeValidate decodes a JSON body and checks the struct's validate tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}
