package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"schedly/models"
	"schedly/services/booking"
	"schedly/services/calendar"
	"schedly/utils"
)

// CalendarHandler exposes thin JSON views over the calendar backend and the
// slot engine, alongside the conversational surface.
type CalendarHandler struct {
	Backend calendar.Backend
	Engine  booking.SchedulingEngine
}

func NewCalendarHandler(backend calendar.Backend, engine booking.SchedulingEngine) *CalendarHandler {
	return &CalendarHandler{Backend: backend, Engine: engine}
}

// ListEventsHandler returns events in the requested date range, defaulting to
// the next seven days.
func (h *CalendarHandler) ListEventsHandler(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 7)

	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse(utils.DateLayout, s)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid start date", "expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if e := c.Query("end"); e != "" {
		parsed, err := time.Parse(utils.DateLayout, e)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end date", "expected YYYY-MM-DD")
			return
		}
		// Inclusive through the end of the day.
		end = parsed.AddDate(0, 0, 1).Add(-time.Second)
	}

	events, err := h.Backend.ListEvents(c.Request.Context(), start, end)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list events", err.Error())
		return
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// SuggestTimesHandler returns free slots for a date as computed by the
// scheduling engine.
func (h *CalendarHandler) SuggestTimesHandler(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required")
		return
	}
	date, err := time.Parse(utils.DateLayout, dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	duration := models.DefaultDurationMinutes
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "expected a positive minute count")
			return
		}
		duration = parsed
	}

	slots, err := h.Engine.Suggest(c.Request.Context(), date, duration)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to compute suggestions", err.Error())
		return
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            dateStr,
		"durationMinutes": duration,
		"slots":           slots,
	})
}
