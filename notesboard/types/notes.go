// notesboard/types/notes.go
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Note is the JSON representation of a note as seen by API consumers.
type Note struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

type ExportResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("notblank", validateNotBlank)
	return v
}

// validateNotBlank rejects empty and whitespace-only strings.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate checks that both title and content carry text once trimmed.
func (r CreateNoteRequest) Validate() error {
	return validate.Struct(r)
}
