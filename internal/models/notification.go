package models

import "time"

type NotificationType string

const (
	NotificationAnswer  NotificationType = "ANSWER"
	NotificationComment NotificationType = "COMMENT"
	NotificationMention NotificationType = "MENTION"
)

// Notification is written as a side effect of answer and comment creation
// and only ever mutated by the mark-as-read operation.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"userId"`
	Type      NotificationType `gorm:"type:varchar(10);not null" json:"type"`
	Content   string           `gorm:"type:text;not null" json:"content"`
	RelatedID uint             `json:"relatedId"`
	Read      bool             `gorm:"default:false;index" json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
