// notesboard/controllers/notes.go
package controllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notesboard/notesboard/sources/psql/dao"
	"notesboard/notesboard/sources/psql/models"
	"notesboard/notesboard/types"
	"notesboard/notesboard/utils/logging"
)

var (
	ErrValidation     = errors.New("title and content are required")
	ErrNotFound       = errors.New("note not found")
	ErrExportDisabled = errors.New("note export is not configured")
)

// StoreError wraps a failure of the underlying database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Snapshotter persists a copy of the notes somewhere outside the database.
type Snapshotter interface {
	UploadSnapshot(ctx context.Context, notes []models.Note) (string, error)
}

type NotesController struct {
	dao       *dao.NoteDAO
	snapshots Snapshotter
}

// NewNotesController builds the note service. snapshots may be nil, in which
// case ExportNotes reports ErrExportDisabled.
func NewNotesController(dao *dao.NoteDAO, snapshots Snapshotter) *NotesController {
	return &NotesController{dao: dao, snapshots: snapshots}
}

func (c *NotesController) ListNotes(ctx context.Context) ([]models.Note, error) {
	defer logging.LogDuration(ctx, "NotesController.ListNotes")()
	notes, err := c.dao.ListNotes(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return notes, nil
}

// CreateNote validates req and persists it as submitted. Only the trimmed
// value is checked; the stored text is left untouched.
func (c *NotesController) CreateNote(ctx context.Context, req types.CreateNoteRequest) (*models.Note, error) {
	defer logging.LogDuration(ctx, "NotesController.CreateNote")()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	note := &models.Note{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := c.dao.CreateNote(ctx, note); err != nil {
		return nil, &StoreError{Op: "create", Err: err}
	}
	logging.AppLogger.Info("note created", zap.String("id", note.ID.String()))
	return note, nil
}

// DeleteNote removes the note permanently. Ids that do not parse as UUIDs
// cannot name a stored note and yield ErrNotFound as well.
func (c *NotesController) DeleteNote(ctx context.Context, id string) error {
	defer logging.LogDuration(ctx, "NotesController.DeleteNote")()
	noteID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	deleted, err := c.dao.DeleteNote(ctx, noteID)
	if err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	if !deleted {
		return ErrNotFound
	}
	logging.AppLogger.Info("note deleted", zap.String("id", id))
	return nil
}

// ExportNotes uploads a snapshot of every note and returns its object key
// along with the number of notes written.
func (c *NotesController) ExportNotes(ctx context.Context) (string, int, error) {
	defer logging.LogDuration(ctx, "NotesController.ExportNotes")()
	if c.snapshots == nil {
		return "", 0, ErrExportDisabled
	}
	notes, err := c.ListNotes(ctx)
	if err != nil {
		return "", 0, err
	}
	key, err := c.snapshots.UploadSnapshot(ctx, notes)
	if err != nil {
		return "", 0, fmt.Errorf("upload snapshot: %w", err)
	}
	return key, len(notes), nil
}
