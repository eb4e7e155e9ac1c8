// notesboard/sources/psql/models/note.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is the persisted note record. The JSON tags are the wire shape the
// API returns.
type Note struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;not null;index"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
