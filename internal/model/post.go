package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a single card on the board. It always belongs to one category and
// sits in exactly one status lane; SortOrder is its position within that
// lane/category scope.
type Post struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:text;index" json:"user_id"`
	CategoryID uuid.UUID `gorm:"type:text;index" json:"category_id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `json:"content"`
	Status     Status    `gorm:"type:text;not null;default:todo" json:"status"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusTodo
	}
	return nil
}

// BoardPost is the flat projection served to the admin board: a post joined
// with the names of its category and owner.
type BoardPost struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Status       Status    `json:"status"`
	CategoryID   uuid.UUID `json:"category_id"`
	SortOrder    int       `json:"sort_order"`
	UserID       uuid.UUID `json:"user_id"`
	CategoryName string    `json:"category_name"`
	UserName     string    `json:"user_name"`
}
