package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns categories and posts. There is no login yet; a default user is
// created at startup and everything on the board is attributed to it. The
// password is stored as-is and must not be treated as a credential.
type User struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
