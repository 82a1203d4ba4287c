package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"shift-roster/internal/logger"
	"shift-roster/internal/model"
	"shift-roster/internal/schedule"
	"shift-roster/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	schedules *service.ScheduleService
	members   *service.MemberService
	events    *service.EventService
}

func NewScheduleHandler(schedules *service.ScheduleService, members *service.MemberService, events *service.EventService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, members: members, events: events}
}

func monthParam(c *gin.Context) (schedule.Month, bool) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year/month"})
		return schedule.Month{}, false
	}
	return schedule.Month{Year: year, Month: month}, true
}

// monthData loads everything a month view needs: the roster and the events
// touching the month.
func (h *ScheduleHandler) monthData(c *gin.Context, m schedule.Month) ([]model.Member, []model.Event, bool) {
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	events, err := h.events.List(c.Request.Context(), m.Prev().Prefix()+"-01")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return members, events, true
}

// GET /api/schedule/:year/:month — the final projected grid.
func (h *ScheduleHandler) Grid(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}
	members, events, ok := h.monthData(c, m)
	if !ok {
		return
	}
	grid, err := h.schedules.MonthGrid(c.Request.Context(), m, members, events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"year":  m.Year,
		"month": m.Month,
		"days":  m.Days(),
		"grid":  grid,
	})
}

// GET /api/schedule/:year/:month/base — stored overrides plus computed
// defaults, before events.
func (h *ScheduleHandler) BaseGrid(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.schedules.OverridesForMonth(c.Request.Context(), m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	roster := make([]schedule.Member, len(members))
	for i, mb := range members {
		roster[i] = mb.Roster()
	}
	base := schedule.Resolve(m, roster, service.Overrides(stored), nil)
	c.JSON(http.StatusOK, gin.H{"year": m.Year, "month": m.Month, "base": base, "overrides": stored})
}

// PUT /api/schedule/:year/:month/batch — apply pending base edits.
func (h *ScheduleHandler) SaveBatch(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}
	var req model.BatchScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.schedules.SaveBatch(c.Request.Context(), m, req.Changes); err != nil {
		logger.Error("schedule.save_batch failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("schedule.save_batch", "month", m.Prefix(), "changes", len(req.Changes))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/schedule/:year/:month/selectable — replay a quick-edit state
// and return which cells are currently eligible.
func (h *ScheduleHandler) Selectable(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}
	var req model.SelectableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	members, events, ok := h.monthData(c, m)
	if !ok {
		return
	}
	grid, err := h.schedules.MonthGrid(c.Request.Context(), m, members, events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ed := schedule.NewEditor(m)
	if req.Action == schedule.EventSubstitution && req.IsExternal {
		ed.StartExternalSubstitute()
	} else {
		ed.StartQuickEdit(req.Action)
	}
	if req.Source != nil {
		ed.Click(req.Source.Day, req.Source.MemberID, nil, grid)
	}

	var cells []schedule.CellRef
	for day := 1; day <= m.Days(); day++ {
		for _, mb := range members {
			if ed.Selectable(day, mb.ID, grid) {
				cells = append(cells, schedule.CellRef{Day: day, MemberID: mb.ID, Date: m.DateOf(day)})
			}
		}
	}
	if cells == nil {
		cells = []schedule.CellRef{}
	}
	c.JSON(http.StatusOK, gin.H{
		"step":       ed.Selection().Step,
		"prompt":     ed.Prompt(),
		"selectable": cells,
	})
}

// GET /api/schedule/:year/:month/highlight?day=&memberId= — the cell group
// lit by the event touching one cell.
func (h *ScheduleHandler) Highlight(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Query("day"))
	memberID := c.Query("memberId")
	if err != nil || memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day/memberId"})
		return
	}
	events, err := h.events.List(c.Request.Context(), m.Prev().Prefix()+"-01")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cells := schedule.HighlightGroup(m, service.Projections(events), day, memberID)
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

// GET /api/schedule/:year/:month/export?team= — CSV download of one team's
// month. The UTF-8 BOM keeps Excel decoding the Chinese labels correctly.
func (h *ScheduleHandler) Export(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}
	team := c.Query("team")
	if team == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team is required"})
		return
	}
	members, events, ok := h.monthData(c, m)
	if !ok {
		return
	}
	roster := make([]schedule.Member, len(members))
	for i, mb := range members {
		roster[i] = mb.Roster()
	}
	active := schedule.ActiveTeamMembers(roster, team)
	if len(active) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "目前班別沒有成員可匯出"})
		return
	}
	grid, err := h.schedules.MonthGrid(c.Request.Context(), m, members, events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := schedule.ExportRows(m, active, grid)
	filename := schedule.ExportFilename(team, m)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})
	w := csv.NewWriter(c.Writer)
	w.WriteAll(rows)
	w.Flush()
}
