package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. AuthorID references users.id (UUID).
type PostModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	Media       string    `gorm:"type:varchar(512)"`
	Tags        []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
