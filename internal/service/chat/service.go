package chat

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/mood-companion/backend/internal/analysis/emotion"
	"github.com/zhouzirui/mood-companion/backend/internal/model/chat"
)

// Classifier assigns an emotion to a user message. Implementations never fail.
type Classifier interface {
	Classify(ctx context.Context, text string) emotion.Result
}

// Responder picks the reply for a detected emotion. Implementations never fail.
type Responder interface {
	Select(ctx context.Context, category emotion.Category, message string) string
}

// Options configures a conversation.
type Options struct {
	CompanionID string
	Greeting    string
}

// TurnResult is what the presentation layer receives for one user message.
type TurnResult struct {
	Classification emotion.Result `json:"classification"`
	Reply          string         `json:"reply"`
	Trend          emotion.Trend  `json:"trend"`
	UserTurn       chat.Turn      `json:"userTurn"`
	ReplyTurn      chat.Turn      `json:"replyTurn"`
}

// Service owns the single in-memory conversation: the full turn log plus the
// bounded window of user classifications used for the mood trend.
type Service struct {
	classifier Classifier
	responder  Responder
	opts       Options

	// turnMu serializes turns so the log has a single writer.
	turnMu sync.Mutex

	mu      sync.RWMutex
	session chat.Session
	turns   []chat.Turn
	window  *emotion.Window
}

// NewService starts a conversation, seeding the greeting turn when one is configured.
func NewService(classifier Classifier, responder Responder, opts Options) *Service {
	s := &Service{
		classifier: classifier,
		responder:  responder,
		opts:       opts,
		window:     emotion.NewWindow(emotion.TrendWindow),
	}
	s.resetLocked()
	return s
}

// ProcessUserMessage classifies text, records it and returns the reply with the updated trend.
// The only error is a context that was already done before the turn started.
func (s *Service) ProcessUserMessage(ctx context.Context, text string) (TurnResult, error) {
	if err := ctx.Err(); err != nil {
		return TurnResult{}, err
	}

	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	classification := s.classifier.Classify(ctx, text)
	userTurn := s.appendTurn(chat.Turn{
		Text:           text,
		Sender:         chat.SenderUser,
		Classification: &classification,
	})
	s.window.Push(classification)

	reply := s.responder.Select(ctx, classification.Category, text)
	replyTurn := s.appendTurn(chat.Turn{
		Text:   reply,
		Sender: chat.SenderSystem,
	})

	trend := s.window.Trend()
	log.Printf("[chat] session=%s emotion=%s intensity=%d trend=%s", s.Session().ID, classification.Category, classification.Intensity, trend)

	return TurnResult{
		Classification: classification,
		Reply:          reply,
		Trend:          trend,
		UserTurn:       userTurn,
		ReplyTurn:      replyTurn,
	}, nil
}

// CurrentTrend returns the mood trend over the bounded history.
func (s *Service) CurrentTrend() emotion.Trend {
	return s.window.Trend()
}

// EmotionHistory returns the most recent user classifications, oldest first.
func (s *Service) EmotionHistory() []emotion.Result {
	return s.window.Results()
}

// CurrentEmotion returns the latest user classification, if any.
func (s *Service) CurrentEmotion() (emotion.Result, bool) {
	return s.window.Latest()
}

// Transcript returns a copy of the full conversation log.
func (s *Service) Transcript() []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]chat.Turn, len(s.turns))
	copy(copied, s.turns)
	return copied
}

// Session returns the current session descriptor.
func (s *Service) Session() chat.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Reset ends the current conversation and starts an empty one.
func (s *Service) Reset() chat.Session {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	s.mu.Lock()
	s.resetLocked()
	session := s.session
	s.mu.Unlock()

	log.Printf("[chat] session reset, new session=%s", session.ID)
	return session
}

func (s *Service) resetLocked() {
	s.session = chat.Session{
		ID:          uuid.NewString(),
		CompanionID: s.opts.CompanionID,
		CreatedAt:   time.Now().UTC(),
	}
	s.turns = make([]chat.Turn, 0, 16)
	s.window.Reset()

	if s.opts.Greeting != "" {
		s.turns = append(s.turns, newTurn(chat.Turn{Text: s.opts.Greeting, Sender: chat.SenderSystem}))
	}
}

func (s *Service) appendTurn(turn chat.Turn) chat.Turn {
	turn = newTurn(turn)

	s.mu.Lock()
	s.turns = append(s.turns, turn)
	s.mu.Unlock()
	return turn
}

func newTurn(turn chat.Turn) chat.Turn {
	turn.ID = uuid.NewString()
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}
	return turn
}
