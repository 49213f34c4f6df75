package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all stored records with UUID primary keys.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entity is implemented by every stored record. The store uses it to mint
// missing identifiers and to keep creation timestamps stable across upserts.
type Entity interface {
	EntityID() uuid.UUID
	SetEntityID(id uuid.UUID)
	CreationTime() time.Time
	SetCreationTime(t time.Time)
	Touch(t time.Time)
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

func (base *BaseModel) EntityID() uuid.UUID { return base.ID }

func (base *BaseModel) SetEntityID(id uuid.UUID) { base.ID = id }

func (base *BaseModel) CreationTime() time.Time { return base.CreatedAt }

func (base *BaseModel) SetCreationTime(t time.Time) { base.CreatedAt = t }

func (base *BaseModel) Touch(t time.Time) { base.UpdatedAt = t }
