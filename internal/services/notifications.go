package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stackit-dev/stackit/backend/internal/models"
)

// Notifier inserts and reads notification rows. It is handed to the other
// services so every cross-entity side effect funnels through one place.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// WithTx returns a Notifier bound to the given transaction so notification
// inserts commit or roll back together with the write that triggered them.
func (n *Notifier) WithTx(tx *gorm.DB) *Notifier {
	return &Notifier{db: tx}
}

// Notify unconditionally inserts an unread notification. No dedup, no
// batching; delivery is the poll-based List below.
func (n *Notifier) Notify(userID uint, typ models.NotificationType, content string, relatedID uint) error {
	notification := models.Notification{
		UserID:    userID,
		Type:      typ,
		Content:   content,
		RelatedID: relatedID,
	}
	if err := n.db.Create(&notification).Error; err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

// List returns a user's notifications, newest first.
func (n *Notifier) List(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := n.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags a notification as read. Only the recipient may touch it.
func (n *Notifier) MarkRead(userID, notificationID uint) (*models.Notification, error) {
	var notification models.Notification
	err := n.db.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	notification.Read = true
	if err := n.db.Save(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}
