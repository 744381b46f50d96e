// Package reply selects the supportive reply for a detected emotion.
package reply

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	analysis "github.com/zhouzirui/mood-companion/backend/internal/analysis/emotion"
	"github.com/zhouzirui/mood-companion/backend/internal/model/persona"
	"github.com/zhouzirui/mood-companion/backend/internal/service/ai"
	emotionservice "github.com/zhouzirui/mood-companion/backend/internal/service/emotion"
)

// Config controls remote reply generation.
type Config struct {
	Enabled bool
	Timeout time.Duration
}

// Selector maps an emotion to a reply, preferring a generated one when configured.
type Selector struct {
	enabled   bool
	completer ai.Completer
	persona   persona.Persona
	timeout   time.Duration
	stats     emotionservice.Stats
}

// NewSelector creates a selector. A nil completer keeps it on canned templates.
func NewSelector(completer ai.Completer, companion persona.Persona, cfg Config) *Selector {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = emotionservice.DefaultTimeout
	}
	return &Selector{
		enabled:   cfg.Enabled && completer != nil,
		completer: completer,
		persona:   companion,
		timeout:   timeout,
	}
}

// Enabled reports whether replies are generated remotely.
func (s *Selector) Enabled() bool {
	return s != nil && s.enabled && s.completer != nil
}

// Select returns a non-empty reply; the canned template is the terminal fallback.
func (s *Selector) Select(ctx context.Context, category analysis.Category, message string) string {
	if !s.Enabled() {
		return analysis.CannedReply(category)
	}

	text, err := s.Generate(ctx, category, message)
	if err != nil {
		log.Printf("[reply] remote generation failed, use canned reply: %v", err)
		return analysis.CannedReply(category)
	}
	return text
}

// Generate asks the remote model for a short supportive reply.
func (s *Selector) Generate(ctx context.Context, category analysis.Category, message string) (string, error) {
	if !s.Enabled() {
		return "", emotionservice.ErrRemoteUnavailable
	}

	text, err := s.generate(ctx, category, message)
	s.stats.Record(err)
	return text, err
}

func (s *Selector) generate(ctx context.Context, category analysis.Category, message string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.completer.Complete(callCtx, s.buildPrompt(category, message))
	if err != nil {
		return "", fmt.Errorf("%w: %v", emotionservice.ErrRemoteCallFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty reply", emotionservice.ErrRemoteResponseUnparseable)
	}
	return text, nil
}

// Stats returns the remote outcome counters.
func (s *Selector) Stats() emotionservice.Snapshot {
	return s.stats.Snapshot()
}

// Persona returns the companion the selector speaks as.
func (s *Selector) Persona() persona.Persona {
	return s.persona
}

// buildPrompt 组合角色设定、情绪与用户原话。
func (s *Selector) buildPrompt(category analysis.Category, message string) string {
	var builder strings.Builder
	builder.WriteString("You're a supportive mental health chatbot")
	if name := strings.TrimSpace(s.persona.Name); name != "" {
		builder.WriteString(" named ")
		builder.WriteString(name)
	}
	builder.WriteString(".")
	if tone := strings.TrimSpace(s.persona.Tone); tone != "" {
		builder.WriteString(" Your tone is ")
		builder.WriteString(tone)
		builder.WriteString(".")
	}
	if hint := strings.TrimSpace(s.persona.PromptHint); hint != "" {
		builder.WriteString(" ")
		builder.WriteString(hint)
	}
	for _, rule := range s.persona.Rules {
		builder.WriteString("\n- ")
		builder.WriteString(rule)
	}

	builder.WriteString(fmt.Sprintf("\n\nUser feels %s.\n\nUser: %q\n\nWrite 1-2 supportive sentences:", category, message))
	return builder.String()
}
