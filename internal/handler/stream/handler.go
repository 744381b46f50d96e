package stream

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/zhouzirui/mood-companion/backend/internal/analysis/emotion"
	chatService "github.com/zhouzirui/mood-companion/backend/internal/service/chat"
	"github.com/zhouzirui/mood-companion/backend/pkg/utils"
)

// Handler pushes one complete chat turn to the client as Server-Sent Events.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates a new stream handler
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// StreamResponse represents a single SSE frame; Event doubles as the SSE event name.
type StreamResponse struct {
	Event     string            `json:"event"`
	SessionID string            `json:"sessionId,omitempty"`
	Content   string            `json:"content,omitempty"`
	Emotion   *emotion.Result   `json:"emotion,omitempty"`
	Metadata  *emotion.Metadata `json:"metadata,omitempty"`
	Trend     emotion.Trend     `json:"trend,omitempty"`
	Finished  bool              `json:"finished,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// HandleStreamRequest processes one user message and emits start, emotion, message, trend and end events.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	sessionID := h.chatSvc.Session().ID
	h.sendSSE(w, flusher, StreamResponse{Event: "start", SessionID: sessionID})

	result, err := h.chatSvc.ProcessUserMessage(ctx, userMessage)
	if err != nil {
		h.sendSSE(w, flusher, StreamResponse{Event: "error", Error: fmt.Sprintf("turn failed: %v", err)})
		return err
	}

	meta := result.Classification.Metadata()
	h.sendSSE(w, flusher, StreamResponse{
		Event:     "emotion",
		SessionID: sessionID,
		Emotion:   &result.Classification,
		Metadata:  &meta,
	})
	h.sendSSE(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: sessionID,
		Content:   result.Reply,
	})
	h.sendSSE(w, flusher, StreamResponse{
		Event:     "trend",
		SessionID: sessionID,
		Trend:     result.Trend,
	})
	h.sendSSE(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})

	log.Printf("[stream] completed turn for session=%s emotion=%s", sessionID, result.Classification.Category)
	return nil
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEEvent(w, flusher, response.Event, response)
}
