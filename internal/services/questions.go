package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stackit-dev/stackit/backend/internal/models"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) Create(userID uint, req models.CreateQuestionRequest) (*models.Question, error) {
	question := models.Question{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		UserID:      userID,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, fmt.Errorf("creating question: %w", err)
	}
	return &question, nil
}

// List returns every question with its author and answer stubs (ids only),
// the shape the list view needs.
func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Preload("User").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "question_id")
		}).
		Order("created_at desc").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return questions, nil
}

// Get returns one question with fully nested answers, votes and comments,
// the detail-view shape.
func (s *QuestionService) Get(id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.Preload("User").
		Preload("Answers.User").
		Preload("Answers.Votes").
		Preload("Answers.Comments.User").
		First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}
