package models

import "time"

type VoteType string

const (
	VoteUp   VoteType = "UPVOTE"
	VoteDown VoteType = "DOWNVOTE"
)

// Vote tracks a single user's vote on an answer. The composite unique
// index guarantees at most one row per (user, answer) pair even under
// concurrent voting.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      VoteType  `gorm:"type:varchar(10);not null" json:"type"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_votes_user_answer" json:"userId"`
	AnswerID  uint      `gorm:"not null;uniqueIndex:idx_votes_user_answer" json:"answerId"`
	CreatedAt time.Time `json:"createdAt"`
}

type VoteRequest struct {
	VoteType VoteType `json:"voteType" binding:"required,oneof=UPVOTE DOWNVOTE"`
}

// VoteCount is the tally returned after a vote is applied.
type VoteCount struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
}
