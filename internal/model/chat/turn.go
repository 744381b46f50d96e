package chat

import (
	"time"

	"github.com/zhouzirui/mood-companion/backend/internal/analysis/emotion"
)

// Sender identifies who authored a turn.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
)

// Turn is one entry of the append-only conversation log.
// Classification is only set on user turns that were classified.
type Turn struct {
	ID             string          `json:"id"`
	Text           string          `json:"text"`
	Sender         Sender          `json:"sender"`
	Classification *emotion.Result `json:"classification,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Session captures the lifetime of the single in-memory conversation.
type Session struct {
	ID          string    `json:"id"`
	CompanionID string    `json:"companionId"`
	CreatedAt   time.Time `json:"createdAt"`
}
