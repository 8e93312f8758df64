package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stackit-dev/stackit/backend/internal/middleware"
	"github.com/stackit-dev/stackit/backend/internal/services"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	Question     *QuestionHandler
	Answer       *AnswerHandler
	Notification *NotificationHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	notifier := services.NewNotifier(db)

	return &Handler{
		Auth:         NewAuthHandler(services.NewUserService(db)),
		Question:     NewQuestionHandler(services.NewQuestionService(db)),
		Answer:       NewAnswerHandler(services.NewAnswerService(db, notifier)),
		Notification: NewNotificationHandler(notifier),
	}
}

func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
