package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by services when a record does not exist.
// Routers translate it to a 404 response.
var ErrNotFound = errors.New("record not found")

// ErrInvalid is returned by services when a request fails semantic
// validation after binding. Routers translate it to a 400 response.
var ErrInvalid = errors.New("invalid request")

// BaseModel holds the identity and audit columns shared by all entities.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;column:id;not null;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamptz;column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamptz;column:updated_at;not null" json:"updatedAt"`
}

// BeforeCreate is a GORM hook that assigns a random UUID when none is set.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID, err = uuid.NewRandom()
		if err != nil {
			return err
		}
	}
	return nil
}
