package persona

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mood-companion/backend/internal/model/persona"
	"github.com/zhouzirui/mood-companion/backend/pkg/utils"
)

// Handler 陪伴角色的HTTP处理器
type Handler struct {
	personas  persona.Store
	companion persona.Persona
}

// New 创建persona处理器，companion 为当前会话使用的角色。
func New(personas persona.Store, companion persona.Persona) *Handler {
	return &Handler{
		personas:  personas,
		companion: companion,
	}
}

// RegisterRoutes 注册persona相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/companion", h.handleCurrent)
	r.Get("/companions", h.handleList)
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.companion)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.personas.List())
}
