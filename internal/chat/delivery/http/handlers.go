package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"smart-planner/internal/model"
	"smart-planner/internal/orchestrator"
	"smart-planner/pkg/gcalendar"
	"smart-planner/pkg/response"
)

// Chat godoc
// @Summary     Process one conversational turn
// @Description Recognizes the message's intent, routes it, drives the session workflow and returns the reply plus widget directives. Omitting session_id starts a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Turn input"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.orch.ProcessTurn(ctx, req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, orchestrator.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "orch.ProcessTurn: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChatResp(out))
}

// Reset godoc
// @Summary     Reset a session
// @Description Clears the conversation context and workflow state for a session. Idempotent.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body resetReq true "Session to reset"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.orch.Reset(ctx, req.SessionID)
	response.OK(c, nil)
}

// Context godoc
// @Summary     Get session context
// @Description Returns a read-only snapshot of a session: active intent, collected entities, history and workflow state.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} contextResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/{session_id}/context [GET]
func (h *handler) Context(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	snap, err := h.orch.Snapshot(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	response.OK(c, newContextResp(snap))
}

// ExportPlan godoc
// @Summary     Export the session's plan to Google Calendar
// @Description Creates an all-day calendar event spanning the generated plan's date range. Requires calendar credentials to be configured.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Session whose plan to export"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plan/export [POST]
func (h *handler) ExportPlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if h.calendar == nil {
		response.Error(c, ErrExportUnavailable, nil)
		return
	}

	plan, err := h.orch.LastPlan(req.SessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.orch.Snapshot(req.SessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	start, end, err := planDateSpan(snap.Entities)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	event, err := h.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     plan.Title,
		Description: planDescription(plan),
		StartTime:   start,
		EndTime:     end,
		AllDay:      true,
	})
	if err != nil {
		h.l.Errorf(ctx, "calendar.CreateEvent: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, exportResp{
		EventID:  event.ID,
		HtmlLink: event.HtmlLink,
		Summary:  event.Summary,
	})
}

// planDateSpan finds the plan's date range in the collected entities:
// a dates range, else a single event date or deadline.
func planDateSpan(entities model.Entities) (time.Time, time.Time, error) {
	if dates, ok := entities.Dates(model.SlotDates); ok {
		start, err1 := time.Parse("2006-01-02", dates.Start)
		end, err2 := time.Parse("2006-01-02", dates.End)
		if err1 == nil && err2 == nil {
			return start, end, nil
		}
	}
	for _, slot := range []model.Slot{model.SlotEventDate, model.SlotDeadline} {
		if raw, ok := entities.String(slot); ok {
			if day, err := time.Parse("2006-01-02", raw); err == nil {
				return day, day, nil
			}
		}
	}
	return time.Time{}, time.Time{}, ErrPlanNotExportable
}

func planDescription(plan *model.PlanOutput) string {
	var sb strings.Builder
	for _, section := range plan.Sections {
		sb.WriteString(fmt.Sprintf("%s\n%s\n\n", section.Heading, section.Body))
	}
	return strings.TrimSpace(sb.String())
}
