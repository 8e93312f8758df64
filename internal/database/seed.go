package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stackit-dev/stackit/backend/internal/models"
)

// Seed wipes all data and repopulates the database with a small demo
// dataset so a fresh instance has something to browse.
func Seed(db *gorm.DB) error {
	log.Println("🌱 Starting database seeding...")

	// Clear existing data in FK order
	for _, model := range []interface{}{
		&models.Notification{},
		&models.Comment{},
		&models.Vote{},
		&models.Answer{},
		&models.Question{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing data: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Username: "john_doe", Email: "john@example.com", Password: string(hash)},
		{Username: "jane_smith", Email: "jane@example.com", Password: string(hash)},
		{Username: "alex_dev", Email: "alex@example.com", Password: string(hash)},
		{Username: "sarah_tech", Email: "sarah@example.com", Password: string(hash)},
		{Username: "mike_coder", Email: "mike@example.com", Password: string(hash)},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	questions := []models.Question{
		{
			Title:       "How to manage state in a large React application?",
			Description: "Our component tree is getting deep and prop drilling is painful. What are the tradeoffs between context, Redux and server state libraries?",
			Tags:        []string{"react", "state-management"},
			UserID:      users[0].ID,
		},
		{
			Title:       "When should I use goroutines vs worker pools?",
			Description: "I keep spawning a goroutine per request and it works, but I have read that unbounded concurrency can bite. When is a pool worth the complexity?",
			Tags:        []string{"go", "concurrency"},
			UserID:      users[1].ID,
		},
		{
			Title:       "Postgres unique constraint vs application-level check?",
			Description: "Is a find-then-insert check enough to keep a table free of duplicates, or do I always need a unique index as well?",
			Tags:        []string{"postgresql", "database-design"},
			UserID:      users[2].ID,
		},
	}
	if err := db.Create(&questions).Error; err != nil {
		return fmt.Errorf("seeding questions: %w", err)
	}

	answers := []models.Answer{
		{
			Content:    "Start with lifting state up and context. Reach for a dedicated store only once you can name the pain it solves.",
			QuestionID: questions[0].ID,
			UserID:     users[1].ID,
		},
		{
			Content:    "A goroutine per request is fine until the work behind it is expensive. Bound the expensive part, not the accept loop.",
			QuestionID: questions[1].ID,
			UserID:     users[2].ID,
		},
		{
			Content:    "Always add the unique index. Two concurrent requests can both pass the application check and both insert; the database is the only arbiter.",
			QuestionID: questions[2].ID,
			UserID:     users[3].ID,
		},
	}
	if err := db.Create(&answers).Error; err != nil {
		return fmt.Errorf("seeding answers: %w", err)
	}

	votes := []models.Vote{
		{Type: models.VoteUp, UserID: users[0].ID, AnswerID: answers[0].ID},
		{Type: models.VoteUp, UserID: users[2].ID, AnswerID: answers[0].ID},
		{Type: models.VoteUp, UserID: users[4].ID, AnswerID: answers[2].ID},
		{Type: models.VoteDown, UserID: users[0].ID, AnswerID: answers[1].ID},
	}
	if err := db.Create(&votes).Error; err != nil {
		return fmt.Errorf("seeding votes: %w", err)
	}

	comments := []models.Comment{
		{Content: "Agreed, premature Redux is a classic mistake.", UserID: users[4].ID, AnswerID: answers[0].ID},
		{Content: "Worth adding: errgroup with a limit covers most pool use cases.", UserID: users[0].ID, AnswerID: answers[1].ID},
	}
	if err := db.Create(&comments).Error; err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}

	log.Println("✅ Database seeded")
	return nil
}
