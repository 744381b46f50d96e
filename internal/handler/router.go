package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/mood-companion/backend/internal/handler/chat"
	"github.com/zhouzirui/mood-companion/backend/internal/handler/persona"
	"github.com/zhouzirui/mood-companion/backend/internal/handler/stream"
	"github.com/zhouzirui/mood-companion/backend/internal/handler/ws"
	middlewarePkg "github.com/zhouzirui/mood-companion/backend/internal/middleware"
	personaModel "github.com/zhouzirui/mood-companion/backend/internal/model/persona"
	chatService "github.com/zhouzirui/mood-companion/backend/internal/service/chat"
	emotionService "github.com/zhouzirui/mood-companion/backend/internal/service/emotion"
	"github.com/zhouzirui/mood-companion/backend/internal/service/reply"
	"github.com/zhouzirui/mood-companion/backend/pkg/utils"
)

// Dependencies 汇总路由所需的服务实例。
type Dependencies struct {
	Personas       personaModel.Store
	Companion      personaModel.Persona
	Chat           *chatService.Service
	Emotion        *emotionService.Service
	Reply          *reply.Selector
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.AllowedOrigins))

	personaHandler := persona.New(deps.Personas, deps.Companion)
	chatHandler := chat.New(deps.Chat)
	streamHandler := stream.New(deps.Chat)
	wsHandler := ws.New(deps.Chat)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, healthResponse(deps))
	})

	r.Route("/api", func(api chi.Router) {
		personaHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		// 单轮 SSE：一次性推送分类、回复与趋势
		api.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
			userMessage := r.URL.Query().Get("message")
			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}

type componentHealth struct {
	Backend string                  `json:"backend,omitempty"`
	Enabled bool                    `json:"enabled"`
	Stats   emotionService.Snapshot `json:"stats"`
}

func healthResponse(deps Dependencies) map[string]any {
	return map[string]any{
		"status":  "ok",
		"session": deps.Chat.Session(),
		"emotion": componentHealth{
			Backend: deps.Emotion.Backend(),
			Enabled: deps.Emotion.Enabled(),
			Stats:   deps.Emotion.Stats(),
		},
		"reply": componentHealth{
			Enabled: deps.Reply.Enabled(),
			Stats:   deps.Reply.Stats(),
		},
	}
}
