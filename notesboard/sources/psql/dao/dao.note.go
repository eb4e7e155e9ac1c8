// notesboard/sources/psql/dao/dao.note.go
package dao

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notesboard/notesboard/sources/psql/models"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

// CreateNote inserts note, filling in ID and CreatedAt when they are zero.
func (dao *NoteDAO) CreateNote(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Create(note).Error
}

// ListNotes returns every note, newest first. Ties on created_at fall back to
// id so the order is stable between calls.
func (dao *NoteDAO) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes := []models.Note{}
	err := dao.DB.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// DeleteNote hard-deletes the note with id and reports whether a row existed.
func (dao *NoteDAO) DeleteNote(ctx context.Context, id uuid.UUID) (bool, error) {
	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
