package services

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/stackit-dev/stackit/backend/internal/models"
)

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// AnswerService owns answer creation, the vote toggle and comments,
// including the notification fan-out they trigger.
type AnswerService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewAnswerService(db *gorm.DB, notifier *Notifier) *AnswerService {
	return &AnswerService{db: db, notifier: notifier}
}

// Create inserts an answer and, in the same transaction, notifies the
// question owner and any mentioned users.
func (s *AnswerService) Create(userID uint, req models.CreateAnswerRequest) (*models.Answer, error) {
	var question models.Question
	if err := s.db.First(&question, req.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", req.QuestionID, ErrNotFound)
		}
		return nil, err
	}

	answer := models.Answer{
		Content:    req.Content,
		QuestionID: question.ID,
		UserID:     userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		notifier := s.notifier.WithTx(tx)

		// The question owner is notified even when answering their own
		// question; only mentions suppress self-notification.
		content := fmt.Sprintf("New answer to your question: %s", question.Title)
		if err := notifier.Notify(question.UserID, models.NotificationAnswer, content, answer.ID); err != nil {
			return err
		}

		return s.notifyMentions(tx, userID, req.Content, answer.ID, "an answer")
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&answer, answer.ID).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// Vote applies the toggle semantics: no prior vote inserts one, the same
// vote removes it, the opposite vote switches the row in place. Returns the
// recomputed tally for the answer.
func (s *AnswerService) Vote(userID, answerID uint, voteType models.VoteType) (*models.VoteCount, error) {
	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer %d: %w", answerID, ErrNotFound)
		}
		return nil, err
	}

	var existing models.Vote
	err := s.db.Where("user_id = ? AND answer_id = ?", userID, answerID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := models.Vote{Type: voteType, UserID: userID, AnswerID: answerID}
		createErr := s.db.Create(&vote).Error
		if createErr == nil {
			break
		}
		if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return nil, createErr
		}
		// Lost a race with a concurrent vote from the same user; the unique
		// index rejected the insert, so re-read and apply the toggle to the
		// row that won.
		if err := s.db.Where("user_id = ? AND answer_id = ?", userID, answerID).First(&existing).Error; err != nil {
			return nil, err
		}
		if err := s.toggleExisting(&existing, voteType); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := s.toggleExisting(&existing, voteType); err != nil {
			return nil, err
		}
	}

	return s.tally(answerID)
}

func (s *AnswerService) toggleExisting(existing *models.Vote, voteType models.VoteType) error {
	if existing.Type == voteType {
		// Same vote again removes it
		return s.db.Delete(existing).Error
	}
	// Opposite vote switches the row in place, keeping one row per pair
	existing.Type = voteType
	return s.db.Save(existing).Error
}

func (s *AnswerService) tally(answerID uint) (*models.VoteCount, error) {
	var count models.VoteCount
	if err := s.db.Model(&models.Vote{}).
		Where("answer_id = ? AND type = ?", answerID, models.VoteUp).
		Count(&count.Upvotes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Vote{}).
		Where("answer_id = ? AND type = ?", answerID, models.VoteDown).
		Count(&count.Downvotes).Error; err != nil {
		return nil, err
	}
	return &count, nil
}

// Comment attaches a comment to an answer and, in the same transaction,
// notifies the answer owner and any mentioned users.
func (s *AnswerService) Comment(userID, answerID uint, content string) (*models.Comment, error) {
	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer %d: %w", answerID, ErrNotFound)
		}
		return nil, err
	}

	comment := models.Comment{
		Content:  content,
		UserID:   userID,
		AnswerID: answer.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		var author models.User
		if err := tx.First(&author, userID).Error; err != nil {
			return err
		}

		notifier := s.notifier.WithTx(tx)

		notifContent := fmt.Sprintf("New comment on your answer by %s", author.Username)
		if err := notifier.Notify(answer.UserID, models.NotificationComment, notifContent, comment.ID); err != nil {
			return err
		}

		return s.notifyMentions(tx, userID, content, comment.ID, "a comment")
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// notifyMentions scans free text for @username tokens and notifies each
// mentioned user. Lookups are exact and case-sensitive, unknown names are
// ignored, duplicate mentions produce duplicate notifications, and the
// acting user never notifies themselves.
func (s *AnswerService) notifyMentions(tx *gorm.DB, actorID uint, content string, relatedID uint, context string) error {
	var actor models.User
	if err := tx.First(&actor, actorID).Error; err != nil {
		return err
	}

	notifier := s.notifier.WithTx(tx)

	for _, match := range mentionPattern.FindAllStringSubmatch(content, -1) {
		username := match[1]

		var mentioned models.User
		err := tx.Where("username = ?", username).First(&mentioned).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if mentioned.ID == actorID {
			continue
		}

		notifContent := fmt.Sprintf("You were mentioned in %s by %s", context, actor.Username)
		if err := notifier.Notify(mentioned.ID, models.NotificationMention, notifContent, relatedID); err != nil {
			return err
		}
	}
	return nil
}
