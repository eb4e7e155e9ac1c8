// notesboard/routes/notes.go
package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"notesboard/notesboard/controllers"
	"notesboard/notesboard/types"
	"notesboard/notesboard/utils/logging"
)

const maxBodyBytes = 1 << 20

// apiError carries the message shown to API consumers separately from the
// cause, which is only logged.
type apiError struct {
	Message string
	Cause   error
}

func (e *apiError) Error() string {
	return e.Message
}

func (e *apiError) Unwrap() error {
	return e.Cause
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func handleNotesJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			message := err.Error()
			var ae *apiError
			if errors.As(err, &ae) {
				message = ae.Message
			} else if status >= http.StatusInternalServerError {
				message = http.StatusText(status)
			}
			if status >= http.StatusInternalServerError {
				logging.ErrorLogger.Error(message,
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
			}
			writeJSON(w, status, types.ErrorResponse{Message: message})
			return
		}
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, res)
	}
}

// noteFailure maps a service error onto a status code and public message.
// fallback is the message used for anything that is not the caller's fault.
func noteFailure(err error, fallback string) (any, int, error) {
	switch {
	case errors.Is(err, controllers.ErrValidation):
		return nil, http.StatusBadRequest, &apiError{Message: "title and content are required", Cause: err}
	case errors.Is(err, controllers.ErrNotFound):
		return nil, http.StatusNotFound, &apiError{Message: "Note not found", Cause: err}
	case errors.Is(err, controllers.ErrExportDisabled):
		return nil, http.StatusNotImplemented, &apiError{Message: "Note export is not configured", Cause: err}
	default:
		return nil, http.StatusInternalServerError, &apiError{Message: fallback, Cause: err}
	}
}

func NotesRoutes(ctrl *controllers.NotesController) chi.Router {
	r := chi.NewRouter()

	// List notes, newest first
	r.Get("/", handleNotesJSON(func(r *http.Request) (any, int, error) {
		notes, err := ctrl.ListNotes(r.Context())
		if err != nil {
			return noteFailure(err, "Unable to fetch notes")
		}
		return notes, http.StatusOK, nil
	}))

	// Create note
	r.Post("/", handleNotesJSON(func(r *http.Request) (any, int, error) {
		var req types.CreateNoteRequest
		body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
		// an empty body is a request with no fields
		if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, http.StatusBadRequest, &apiError{Message: "invalid request body", Cause: err}
		}
		note, err := ctrl.CreateNote(r.Context(), req)
		if err != nil {
			return noteFailure(err, "Unable to create note")
		}
		return note, http.StatusCreated, nil
	}))

	// Snapshot every note to object storage
	r.Post("/export", handleNotesJSON(func(r *http.Request) (any, int, error) {
		key, count, err := ctrl.ExportNotes(r.Context())
		if err != nil {
			return noteFailure(err, "Unable to export notes")
		}
		return types.ExportResponse{Key: key, Count: count}, http.StatusCreated, nil
	}))

	// Delete note
	r.Delete("/{id}", handleNotesJSON(func(r *http.Request) (any, int, error) {
		if err := ctrl.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
			return noteFailure(err, "Unable to delete note")
		}
		return nil, http.StatusNoContent, nil
	}))

	return r
}
