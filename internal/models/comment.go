package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	AnswerID  uint      `gorm:"not null;index" json:"answerId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
