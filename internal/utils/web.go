package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/bulletin-dev/bulletin/internal/errors"
	"github.com/bulletin-dev/bulletin/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		if e.StatusCode == http.StatusNotModified {
			// 304 carries no body
			w.WriteHeader(http.StatusNotModified)
			return
		}
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return errors.InvalidInput("Body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request validation failed", "error", err)
		return errors.InvalidInput("Required fields missing")
	}
	return nil
}

// ParseId parses a numeric path or form value into an int64 id.
func ParseId(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidInput("Expected " + name + " to be integer")
	}
	return id, nil
}
