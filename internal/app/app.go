// Package app assembles the services shared by the HTTP server and the CLI.
package app

import (
	"context"
	"log"

	"github.com/zhouzirui/mood-companion/backend/internal/config"
	"github.com/zhouzirui/mood-companion/backend/internal/model/persona"
	"github.com/zhouzirui/mood-companion/backend/internal/service/ai"
	"github.com/zhouzirui/mood-companion/backend/internal/service/chat"
	emotionservice "github.com/zhouzirui/mood-companion/backend/internal/service/emotion"
	"github.com/zhouzirui/mood-companion/backend/internal/service/reply"
)

// App 持有一次进程生命周期内的全部服务实例。
type App struct {
	Personas  persona.Store
	Companion persona.Persona
	Emotion   *emotionservice.Service
	Reply     *reply.Selector
	Chat      *chat.Service
}

// New wires the services from cfg. A remote backend that fails to start is logged
// and skipped; the local path is always available.
func New(ctx context.Context, cfg *config.Config) *App {
	personaStore := persona.NewMemoryStore(persona.Seed())
	companion := persona.Resolve(personaStore, cfg.CompanionID)

	var completer ai.Completer
	if cfg.AI.Enabled() {
		c, err := ai.NewCompleter(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize %s completer: %v", cfg.AI.Provider, err)
			log.Println("continuing with keyword classification and canned replies")
		} else {
			completer = c
			log.Printf("AI completer initialized provider=%s", c.Name())
		}
	} else {
		log.Println("远程模型凭证未配置，使用本地关键词分类与预设回复")
	}

	emotionSvc := emotionservice.NewService(completer, emotionservice.Config{
		Enabled: cfg.AI.EmotionLLMEnabled,
		Timeout: cfg.AI.Timeout,
	})
	switch {
	case emotionSvc.Enabled():
		log.Println("Emotion classifier service enabled")
	case cfg.AI.EmotionLLMEnabled && completer == nil:
		log.Println("Emotion classifier requested but completer unavailable, falling back to keywords")
	case !cfg.AI.EmotionLLMEnabled:
		log.Println("Emotion classifier disabled by configuration")
	}

	selector := reply.NewSelector(completer, companion, reply.Config{
		Enabled: cfg.AI.ReplyLLMEnabled,
		Timeout: cfg.AI.Timeout,
	})

	chatSvc := chat.NewService(emotionSvc, selector, chat.Options{
		CompanionID: companion.ID,
		Greeting:    companion.OpeningLine,
	})

	return &App{
		Personas:  personaStore,
		Companion: companion,
		Emotion:   emotionSvc,
		Reply:     selector,
		Chat:      chatSvc,
	}
}
