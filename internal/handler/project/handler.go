package project

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/project"
	"github.com/alexjohnson-dev/portfolio/backend/pkg/utils"
)

// Handler 项目展示的HTTP处理器
type Handler struct {
	projects project.Store
}

// New 创建项目处理器
func New(projects project.Store) *Handler {
	return &Handler{projects: projects}
}

// RegisterRoutes 注册公开路由。注意 featured/category 要先于 {id} 注册。
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/projects", h.handleList)
	r.Get("/projects/featured", h.handleListFeatured)
	r.Get("/projects/category/{category}", h.handleListByCategory)
	r.Get("/projects/{id}", h.handleGet)
}

// RegisterAdminRoutes 注册需要管理令牌的路由
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/projects", h.handleCreate)
	r.Put("/projects/{id}", h.handleUpdate)
	r.Delete("/projects/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.projects.List())
}

func (h *Handler) handleListFeatured(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.projects.ListFeatured())
}

func (h *Handler) handleListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	utils.RespondJSON(w, http.StatusOK, h.projects.ListByCategory(category))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, ok := h.projects.FindByID(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "project not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload project.Project
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Title == "" || payload.Description == "" || payload.Category == "" {
		utils.RespondError(w, http.StatusBadRequest, "title, description and category are required")
		return
	}

	created := h.projects.Create(payload)
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload project.Project
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, ok := h.projects.Update(id, payload)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "project not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.projects.Delete(id) {
		utils.RespondError(w, http.StatusNotFound, "project not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
