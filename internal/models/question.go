package models

import (
	"time"

	"github.com/lib/pq"
)

type Question struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	UserID      uint           `gorm:"not null;index" json:"userId"`
	User        User           `gorm:"foreignKey:UserID" json:"user"`
	Answers     []Answer       `gorm:"foreignKey:QuestionID" json:"answers"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type CreateQuestionRequest struct {
	Title       string   `json:"title" binding:"required,min=5,max=100"`
	Description string   `json:"description" binding:"required,min=10"`
	Tags        []string `json:"tags"`
}
