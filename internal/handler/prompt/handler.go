package prompt

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/prompt"
	"github.com/alexjohnson-dev/portfolio/backend/pkg/utils"
)

// Handler prompt管理的HTTP处理器
type Handler struct {
	prompts prompt.Store
}

// New 创建prompt处理器
func New(prompts prompt.Store) *Handler {
	return &Handler{prompts: prompts}
}

// RegisterRoutes 注册公开路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/prompts", h.handleList)
}

// RegisterAdminRoutes 注册需要管理令牌的路由
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/prompts", h.handleCreate)
	r.Put("/prompts/{id}", h.handleUpdate)
	r.Delete("/prompts/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.prompts.List())
}

type promptPayload struct {
	Text   string `json:"text"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload promptPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Text == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}

	created := h.prompts.Create(prompt.Prompt{
		Text:   payload.Text,
		Type:   payload.Type,
		Active: payload.Active,
	})
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload promptPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, ok := h.prompts.Update(id, prompt.Prompt{
		Text:   payload.Text,
		Type:   payload.Type,
		Active: payload.Active,
	})
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "prompt not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.prompts.Delete(id) {
		utils.RespondError(w, http.StatusNotFound, "prompt not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
