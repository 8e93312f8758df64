package models

import "time"

type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"not null" json:"content"`
	QuestionID uint      `gorm:"not null;index" json:"questionId"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	Votes      []Vote    `gorm:"foreignKey:AnswerID" json:"votes"`
	Comments   []Comment `gorm:"foreignKey:AnswerID" json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateAnswerRequest struct {
	Content    string `json:"content" binding:"required,min=10"`
	QuestionID uint   `json:"questionId" binding:"required"`
}
