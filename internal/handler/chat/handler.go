package chat

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/avatar"
	chatmodel "github.com/alexjohnson-dev/portfolio/backend/internal/model/chat"
	"github.com/alexjohnson-dev/portfolio/backend/internal/service/conversation"
	"github.com/alexjohnson-dev/portfolio/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	conversationSvc *conversation.Service
}

// New 创建聊天处理器
func New(conversationSvc *conversation.Service) *Handler {
	return &Handler{conversationSvc: conversationSvc}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/{sessionID}/messages", h.handleListMessages)
}

type chatResponse struct {
	Turn  chatmodel.Turn `json:"turn"`
	Audio *string        `json:"audio"`
}

// handleChat 处理一次对话请求
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.conversationSvc.HandleTurn(r.Context(), conversation.Request{
		SessionID: payload.SessionID,
		Message:   payload.Message,
	})
	if err != nil {
		respondTurnError(w, err)
		return
	}

	resp := chatResponse{Turn: result.Turn}
	if result.Audio != nil {
		encoded := base64.StdEncoding.EncodeToString(result.Audio)
		resp.Audio = &encoded
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

// handleListMessages 返回指定会话的历史记录
func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	turns, err := h.conversationSvc.ListTurns(r.Context(), sessionID)
	if err != nil {
		respondTurnError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, turns)
}

// respondTurnError 将管线错误映射为HTTP状态码。内部细节不外露。
func respondTurnError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, conversation.ErrSessionRequired),
		errors.Is(err, conversation.ErrMessageRequired):
		utils.RespondError(w, http.StatusBadRequest, "required field missing")
	case errors.Is(err, avatar.ErrMetadataTooLong):
		utils.RespondError(w, http.StatusBadRequest, "metadata too long")
	default:
		log.Printf("[chat] request failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to process chat message")
	}
}
