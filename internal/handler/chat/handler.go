package chat

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mood-companion/backend/internal/analysis/emotion"
	chatService "github.com/zhouzirui/mood-companion/backend/internal/service/chat"
	"github.com/zhouzirui/mood-companion/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// TrendResponse 是情绪趋势接口的返回体。
type TrendResponse struct {
	Trend   emotion.Trend    `json:"trend"`
	Current *emotion.Result  `json:"current,omitempty"`
	History []emotion.Result `json:"history"`
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/messages", h.handleSendMessage)
	r.Get("/trend", h.handleTrend)
	r.Get("/history", h.handleHistory)
	r.Get("/transcript", h.handleTranscript)
	r.Get("/session", h.handleGetSession)
	r.Post("/session", h.handleResetSession)
	r.Get("/emotions", h.handleEmotions)
}

// handleSendMessage 处理一条用户消息并返回分类、回复与趋势
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}

	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := h.chatSvc.ProcessUserMessage(r.Context(), payload.Text)
	if err != nil {
		utils.RespondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	resp := TrendResponse{
		Trend:   h.chatSvc.CurrentTrend(),
		History: h.chatSvc.EmotionHistory(),
	}
	if current, ok := h.chatSvc.CurrentEmotion(); ok {
		resp.Current = &current
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.chatSvc.EmotionHistory())
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.chatSvc.Transcript())
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.chatSvc.Session())
}

// handleResetSession 结束当前会话并开启新会话
func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusCreated, h.chatSvc.Reset())
}

func (h *Handler) handleEmotions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, emotion.AllMetadata())
}
