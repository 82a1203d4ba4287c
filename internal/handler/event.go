package handler

import (
	"errors"
	"net/http"

	"shift-roster/internal/logger"
	"shift-roster/internal/model"
	"shift-roster/internal/schedule"
	"shift-roster/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandler struct {
	events  *service.EventService
	members *service.MemberService
}

func NewEventHandler(events *service.EventService, members *service.MemberService) *EventHandler {
	return &EventHandler{events: events, members: members}
}

// eventView is an event row decorated with its list summary line.
type eventView struct {
	model.Event
	Details string `json:"details"`
}

// GET /api/events?since=YYYY-MM-DD&memberId=&eventType=
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.List(c.Request.Context(), c.Query("since"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	nameOf := service.NameOf(members)

	memberID, eventType := c.Query("memberId"), c.Query("eventType")
	views := []eventView{}
	for _, e := range events {
		if memberID != "" && e.MemberID != memberID {
			continue
		}
		if eventType != "" && e.EventType != eventType {
			continue
		}
		views = append(views, eventView{Event: e, Details: service.Details(e, nameOf)})
	}
	c.JSON(http.StatusOK, views)
}

// POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var p model.EventPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "成員、事件類型和日期為必填項"})
		return
	}
	e, err := h.events.Create(c.Request.Context(), p)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	logger.Info("events.create", "id", e.ID, "type", e.EventType, "date", e.Date)
	c.JSON(http.StatusOK, e)
}

// PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var p model.EventPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "成員、事件類型和日期為必填項"})
		return
	}
	err := h.events.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		switch {
		case isValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("events.delete", "id", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func isValidation(err error) bool {
	for _, v := range []error{
		schedule.ErrIncomplete, schedule.ErrHoursRequired, schedule.ErrReasonRequired,
		schedule.ErrExternalName, schedule.ErrRelatedMember, schedule.ErrSwapCounterpart,
		schedule.ErrUnknownType,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
