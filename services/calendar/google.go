package calendar

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"schedly/models"
)

// GoogleBackend talks to the Google Calendar API using service-account
// credentials.
type GoogleBackend struct {
	svc        *gcal.Service
	calendarID string
	logger     *zap.Logger
}

// NewGoogleBackend authenticates against the Calendar API with the given
// service-account credentials file.
func NewGoogleBackend(ctx context.Context, credentialsFile, calendarID string, logger *zap.Logger) (*GoogleBackend, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleBackend{
		svc:        svc,
		calendarID: calendarID,
		logger:     logger,
	}, nil
}

// CheckAvailability queries the event window and reports the slot free iff no
// event falls inside it.
func (b *GoogleBackend) CheckAvailability(ctx context.Context, start time.Time, durationMinutes int) (bool, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	result, err := b.svc.Events.List(b.calendarID).
		TimeMin(start.UTC().Format(time.RFC3339)).
		TimeMax(end.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return false, wrapGoogleError("failed to query events", err)
	}

	return len(result.Items) == 0, nil
}

// CreateEvent inserts the event as-is. Availability is the caller's concern.
func (b *GoogleBackend) CreateEvent(ctx context.Context, title string, start time.Time, durationMinutes int, description string) (string, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	event := &gcal.Event{
		Summary:     title,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := b.svc.Events.Insert(b.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", wrapGoogleError("failed to insert event", err)
	}

	return created.Id, nil
}

// ListEvents fetches events in the inclusive range, sorted by start time.
func (b *GoogleBackend) ListEvents(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error) {
	result, err := b.svc.Events.List(b.calendarID).
		TimeMin(start.UTC().Format(time.RFC3339)).
		TimeMax(end.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapGoogleError("failed to list events", err)
	}

	events := make([]models.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		ev, ok := toCalendarEvent(item)
		if !ok {
			b.logger.Warn("skipping event with unparseable times", zap.String("eventID", item.Id))
			continue
		}
		events = append(events, ev)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events, nil
}

// toCalendarEvent converts a Google Calendar event into our model. All-day
// events carry a date instead of a dateTime and count as occupying the whole
// day.
func toCalendarEvent(item *gcal.Event) (models.CalendarEvent, bool) {
	if item == nil || item.Start == nil {
		return models.CalendarEvent{}, false
	}

	var start time.Time
	var duration int

	switch {
	case item.Start.DateTime != "":
		s, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return models.CalendarEvent{}, false
		}
		start = s
		duration = models.DefaultDurationMinutes
		if item.End != nil && item.End.DateTime != "" {
			if e, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
				duration = int(e.Sub(s).Minutes())
			}
		}
	case item.Start.Date != "":
		s, err := time.Parse("2006-01-02", item.Start.Date)
		if err != nil {
			return models.CalendarEvent{}, false
		}
		start = s
		duration = 24 * 60
	default:
		return models.CalendarEvent{}, false
	}

	return models.CalendarEvent{
		ID:              item.Id,
		Title:           item.Summary,
		Start:           start,
		DurationMinutes: duration,
		Description:     item.Description,
	}, true
}

// wrapGoogleError maps API failures onto the backend error taxonomy.
func wrapGoogleError(msg string, err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusBadRequest:
			return NewRejectedError(msg, err)
		}
	}
	return NewUnavailableError(msg, err)
}
