package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stackit-dev/stackit/backend/internal/models"
)

// setupTestDB starts a throwaway Postgres container and returns a migrated
// GORM handle. The container is terminated when the test finishes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("stackit_test"),
		tcpostgres.WithUsername("stackit"),
		tcpostgres.WithPassword("stackit"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Vote{},
		&models.Comment{},
		&models.Notification{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, userID uint, title string) models.Question {
	t.Helper()
	question := models.Question{
		Title:       title,
		Description: "A question long enough to pass validation.",
		Tags:        []string{"testing"},
		UserID:      userID,
	}
	require.NoError(t, db.Create(&question).Error)
	return question
}

func createTestAnswer(t *testing.T, db *gorm.DB, questionID, userID uint) models.Answer {
	t.Helper()
	answer := models.Answer{
		Content:    "An answer long enough to pass validation.",
		QuestionID: questionID,
		UserID:     userID,
	}
	require.NoError(t, db.Create(&answer).Error)
	return answer
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uint, typ models.NotificationType) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ? AND type = ?", userID, typ).Find(&notifications).Error)
	return notifications
}
