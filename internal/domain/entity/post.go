package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a piece of content published by a user. Posts are owned by exactly
// one author and are removed together with the author's account.
type Post struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID // Links the post to the User who created it.
	Description string
	Media       string   // Stored file name of the attached media. Upload mechanics live elsewhere.
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
