package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackit-dev/stackit/backend/internal/models"
)

func TestVote_ToggleOff(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	question := createTestQuestion(t, db, owner.ID, "Toggle question")
	answer := createTestAnswer(t, db, question.ID, owner.ID)

	count, err := svc.Vote(voter.ID, answer.ID, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Upvotes)
	assert.Equal(t, int64(0), count.Downvotes)

	// Same vote again removes it
	count, err = svc.Vote(voter.ID, answer.ID, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Upvotes)
	assert.Equal(t, int64(0), count.Downvotes)

	var rows int64
	require.NoError(t, db.Model(&models.Vote{}).Where("answer_id = ?", answer.ID).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestVote_SwitchKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	question := createTestQuestion(t, db, owner.ID, "Switch question")
	answer := createTestAnswer(t, db, question.ID, owner.ID)

	_, err := svc.Vote(voter.ID, answer.ID, models.VoteUp)
	require.NoError(t, err)

	count, err := svc.Vote(voter.ID, answer.ID, models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Upvotes)
	assert.Equal(t, int64(1), count.Downvotes)

	var votes []models.Vote
	require.NoError(t, db.Where("answer_id = ?", answer.ID).Find(&votes).Error)
	require.Len(t, votes, 1)
	assert.Equal(t, models.VoteDown, votes[0].Type)
}

func TestVote_SecondVoterCountsSeparately(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")
	question := createTestQuestion(t, db, owner.ID, "Two voters")
	answer := createTestAnswer(t, db, question.ID, owner.ID)

	_, err := svc.Vote(first.ID, answer.ID, models.VoteUp)
	require.NoError(t, err)
	count, err := svc.Vote(second.ID, answer.ID, models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Upvotes)
	assert.Equal(t, int64(1), count.Downvotes)
}

func TestVote_MissingAnswer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	voter := createTestUser(t, db, "voter")

	_, err := svc.Vote(voter.ID, 9999, models.VoteUp)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVote_NoNotificationSideEffect(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	question := createTestQuestion(t, db, owner.ID, "Quiet votes")
	answer := createTestAnswer(t, db, question.ID, owner.ID)

	_, err := svc.Vote(voter.ID, answer.ID, models.VoteUp)
	require.NoError(t, err)

	var total int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestCreateAnswer_NotifiesQuestionOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	responder := createTestUser(t, db, "responder")
	question := createTestQuestion(t, db, owner.ID, "Needs an answer")

	answer, err := svc.Create(responder.ID, models.CreateAnswerRequest{
		Content:    "Here is a sufficiently long answer.",
		QuestionID: question.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "responder", answer.User.Username)

	notifications := notificationsFor(t, db, owner.ID, models.NotificationAnswer)
	require.Len(t, notifications, 1)
	assert.Equal(t, answer.ID, notifications[0].RelatedID)
	assert.False(t, notifications[0].Read)
	assert.Contains(t, notifications[0].Content, question.Title)
}

func TestCreateAnswer_OwnQuestionStillNotifies(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	question := createTestQuestion(t, db, owner.ID, "Answering myself")

	_, err := svc.Create(owner.ID, models.CreateAnswerRequest{
		Content:    "I figured out my own question.",
		QuestionID: question.ID,
	})
	require.NoError(t, err)

	// ANSWER notifications have no self-suppression
	notifications := notificationsFor(t, db, owner.ID, models.NotificationAnswer)
	assert.Len(t, notifications, 1)
}

func TestCreateAnswer_MissingQuestion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	responder := createTestUser(t, db, "responder")

	_, err := svc.Create(responder.ID, models.CreateAnswerRequest{
		Content:    "An answer with nowhere to go.",
		QuestionID: 424242,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMentions_DuplicateMentionDuplicateNotifications(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	responder := createTestUser(t, db, "responder")
	alice := createTestUser(t, db, "alice")
	question := createTestQuestion(t, db, owner.ID, "Mention question")

	answer, err := svc.Create(responder.ID, models.CreateAnswerRequest{
		Content:    "thanks @alice and @alice",
		QuestionID: question.ID,
	})
	require.NoError(t, err)

	mentions := notificationsFor(t, db, alice.ID, models.NotificationMention)
	require.Len(t, mentions, 2)
	for _, n := range mentions {
		assert.Equal(t, answer.ID, n.RelatedID)
		assert.Contains(t, n.Content, "responder")
	}
}

func TestMentions_UnknownUsernameIgnored(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	responder := createTestUser(t, db, "responder")
	question := createTestQuestion(t, db, owner.ID, "Unknown mention")

	_, err := svc.Create(responder.ID, models.CreateAnswerRequest{
		Content:    "have you asked @unknownuser about this?",
		QuestionID: question.ID,
	})
	require.NoError(t, err)

	var mentions int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("type = ?", models.NotificationMention).
		Count(&mentions).Error)
	assert.Equal(t, int64(0), mentions)
}

func TestMentions_SelfMentionExcluded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	responder := createTestUser(t, db, "responder")
	question := createTestQuestion(t, db, owner.ID, "Self mention")

	_, err := svc.Create(responder.ID, models.CreateAnswerRequest{
		Content:    "as @responder I already tried that approach.",
		QuestionID: question.ID,
	})
	require.NoError(t, err)

	mentions := notificationsFor(t, db, responder.ID, models.NotificationMention)
	assert.Empty(t, mentions)
}

func TestComment_NotifiesAnswerOwnerAndMentions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	owner := createTestUser(t, db, "owner")
	answerer := createTestUser(t, db, "answerer")
	commenter := createTestUser(t, db, "commenter")
	alice := createTestUser(t, db, "alice")
	question := createTestQuestion(t, db, owner.ID, "Comment flow")
	answer := createTestAnswer(t, db, question.ID, answerer.ID)

	comment, err := svc.Comment(commenter.ID, answer.ID, "good point, cc @alice")
	require.NoError(t, err)
	assert.Equal(t, "commenter", comment.User.Username)

	commentNotifs := notificationsFor(t, db, answerer.ID, models.NotificationComment)
	require.Len(t, commentNotifs, 1)
	assert.Equal(t, comment.ID, commentNotifs[0].RelatedID)
	assert.Contains(t, commentNotifs[0].Content, "commenter")

	mentions := notificationsFor(t, db, alice.ID, models.NotificationMention)
	require.Len(t, mentions, 1)
	assert.Equal(t, comment.ID, mentions[0].RelatedID)
}

func TestComment_MissingAnswer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnswerService(db, NewNotifier(db))

	commenter := createTestUser(t, db, "commenter")

	_, err := svc.Comment(commenter.ID, 9999, "talking to nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
