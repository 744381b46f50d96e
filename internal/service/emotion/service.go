package emotion

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	analysis "github.com/zhouzirui/mood-companion/backend/internal/analysis/emotion"
	"github.com/zhouzirui/mood-companion/backend/internal/service/ai"
)

// DefaultTimeout bounds a single remote classification call.
const DefaultTimeout = 5 * time.Second

// Config 控制情绪分类服务的行为。
type Config struct {
	Enabled bool
	Timeout time.Duration
}

// Service 优先使用远程模型分类情绪，失败时回退到关键词规则。
type Service struct {
	enabled   bool
	completer ai.Completer
	timeout   time.Duration
	stats     Stats
}

// NewService creates the classification service. A nil completer keeps it on the local path.
func NewService(completer ai.Completer, cfg Config) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Service{
		enabled:   cfg.Enabled && completer != nil,
		completer: completer,
		timeout:   timeout,
	}
}

// Enabled 返回远程分类是否可用。
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.completer != nil
}

// Backend names the remote backend, or "local" when the remote path is off.
func (s *Service) Backend() string {
	if !s.Enabled() {
		return "local"
	}
	return s.completer.Name()
}

// Classify never fails: any remote problem yields the lexical result with fixed intensity.
func (s *Service) Classify(ctx context.Context, text string) analysis.Result {
	if !s.Enabled() {
		return analysis.Analyze(text)
	}

	result, err := s.ClassifyRemote(ctx, text)
	if err != nil {
		log.Printf("[emotion] remote classification failed, use fallback: %v", err)
		return analysis.Analyze(text)
	}
	return result
}

// ClassifyRemote asks the remote model for a category and reports why it could not.
// On success the intensity is derived from the text features.
func (s *Service) ClassifyRemote(ctx context.Context, text string) (analysis.Result, error) {
	if !s.Enabled() {
		return analysis.Result{}, ErrRemoteUnavailable
	}

	result, err := s.classifyRemote(ctx, text)
	s.stats.Record(err)
	return result, err
}

func (s *Service) classifyRemote(ctx context.Context, text string) (analysis.Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.completer.Complete(callCtx, buildClassificationPrompt(text))
	if err != nil {
		return analysis.Result{}, fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}
	if strings.TrimSpace(reply) == "" {
		return analysis.Result{}, fmt.Errorf("%w: empty reply", ErrRemoteResponseUnparseable)
	}

	category, ok := parseCategoryReply(reply)
	if !ok {
		return analysis.Result{}, fmt.Errorf("%w: %q", ErrRemoteResponseUnparseable, truncate(reply, 64))
	}

	return analysis.Result{
		Category:  category,
		Intensity: analysis.Score(text, category, analysis.PolicyFeature),
	}, nil
}

// Stats returns the remote outcome counters.
func (s *Service) Stats() Snapshot {
	return s.stats.Snapshot()
}

// parseCategoryReply 返回回复中出现的第一个类别名称。
func parseCategoryReply(reply string) (analysis.Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(reply))
	for _, c := range analysis.Categories() {
		if strings.Contains(normalized, c.String()) {
			return c, true
		}
	}
	return analysis.Neutral, false
}

func buildClassificationPrompt(text string) string {
	return fmt.Sprintf(classificationPrompt, text)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

const classificationPrompt = `Analyze this message's emotion. Reply ONLY with ONE word: joy, sadness, anxiety, anger, or neutral.

Message: "%s"

Reply with only the emotion word:`
