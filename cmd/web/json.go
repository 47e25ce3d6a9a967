package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"nubhostel/internal/catalog"
	"nubhostel/internal/membership"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// A concrete category; "All" is only a filter.
	Validate.RegisterValidation("mealcategory", func(fl validator.FieldLevel) bool {
		c, err := catalog.ParseCategory(fl.Field().String())
		return err == nil && c != catalog.CategoryAll
	})

	Validate.RegisterValidation("membershiptier", func(fl validator.FieldLevel) bool {
		return membership.IsValid(fl.Field().String())
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// readJSON decodes a body of at most 1MB into data.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}
