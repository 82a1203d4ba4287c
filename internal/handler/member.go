package handler

import (
	"net/http"

	"shift-roster/internal/logger"
	"shift-roster/internal/model"
	"shift-roster/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc *service.MemberService
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// GET /api/members
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if members == nil {
		members = []model.Member{}
	}
	c.JSON(http.StatusOK, members)
}

// POST /api/members  body: {"name","title","team"}
func (h *MemberHandler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Title string `json:"title" binding:"required"`
		Team  string `json:"team" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請填寫所有必填欄位"})
		return
	}
	m, err := h.svc.Create(c.Request.Context(), model.Member{Name: req.Name, Title: req.Title, Team: req.Team})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("members.create", "id", m.ID, "name", m.Name, "team", m.Team)
	c.JSON(http.StatusOK, m)
}

// PUT /api/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Title string `json:"title" binding:"required"`
		Team  string `json:"team" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "姓名、職稱與班別為必填欄位"})
		return
	}
	id := c.Param("id")
	err := h.svc.Update(c.Request.Context(), id, model.Member{Name: req.Name, Title: req.Title, Team: req.Team})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("members.delete", "id", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PUT /api/members/:id/status  body: {"status":"在職"|"離職"}
func (h *MemberHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PUT /api/members/order  body: {"ids":[...]}
func (h *MemberHandler) SaveOrder(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.SaveOrder(c.Request.Context(), req.IDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
