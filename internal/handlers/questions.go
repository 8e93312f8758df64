package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stackit-dev/stackit/backend/internal/models"
	"github.com/stackit-dev/stackit/backend/internal/services"
)

type QuestionHandler struct {
	questions *services.QuestionService
}

func NewQuestionHandler(questions *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// GetQuestions returns all questions in the list-view shape: author
// username plus answer ids only, no nested votes or comments.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.questions.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	// Build each response manually so answers stay id-only stubs
	var responses []gin.H
	for _, question := range questions {
		answers := make([]gin.H, 0, len(question.Answers))
		for _, answer := range question.Answers {
			answers = append(answers, gin.H{"id": answer.ID})
		}
		responses = append(responses, gin.H{
			"id":          question.ID,
			"title":       question.Title,
			"description": question.Description,
			"tags":        question.Tags,
			"userId":      question.UserID,
			"user":        gin.H{"username": question.User.Username},
			"answers":     answers,
			"createdAt":   question.CreatedAt,
		})
	}

	// If no questions, return empty array not null
	if responses == nil {
		responses = []gin.H{}
	}

	c.JSON(http.StatusOK, responses)
}

// GetQuestion returns a single question in the detail-view shape
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	question, err := h.questions.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch question"})
		return
	}

	// Build the nested shapes manually: authors expose username only (this
	// endpoint is public), and empty relations render as [] not null
	answers := make([]gin.H, 0, len(question.Answers))
	for _, answer := range question.Answers {
		votes := answer.Votes
		if votes == nil {
			votes = []models.Vote{}
		}

		comments := make([]gin.H, 0, len(answer.Comments))
		for _, comment := range answer.Comments {
			comments = append(comments, gin.H{
				"id":        comment.ID,
				"content":   comment.Content,
				"userId":    comment.UserID,
				"user":      gin.H{"username": comment.User.Username},
				"answerId":  comment.AnswerID,
				"createdAt": comment.CreatedAt,
			})
		}

		answers = append(answers, gin.H{
			"id":         answer.ID,
			"content":    answer.Content,
			"questionId": answer.QuestionID,
			"userId":     answer.UserID,
			"user":       gin.H{"username": answer.User.Username},
			"votes":      votes,
			"comments":   comments,
			"createdAt":  answer.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          question.ID,
		"title":       question.Title,
		"description": question.Description,
		"tags":        question.Tags,
		"userId":      question.UserID,
		"user":        gin.H{"username": question.User.Username},
		"answers":     answers,
		"createdAt":   question.CreatedAt,
	})
}

// CreateQuestion creates a new question (PROTECTED - requires authentication)
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	question, err := h.questions.Create(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    question.ID,
		"title": question.Title,
	})
}
