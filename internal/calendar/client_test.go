package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/emersion/go-webdav/caldav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aide/internal/config"
)

func TestEventICSRoundTrip(t *testing.T) {
	original := Event{
		UID:         "abc-123",
		Title:       "Dentist",
		Description: "Bring insurance card",
		Location:    "Main St 4",
		Start:       time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC),
	}

	cal := eventToICS(&original)
	parsed, err := parseCalendarObject(&caldav.CalendarObject{Data: cal})
	require.NoError(t, err)

	assert.Equal(t, original.UID, parsed.UID)
	assert.Equal(t, original.Title, parsed.Title)
	assert.Equal(t, original.Description, parsed.Description)
	assert.Equal(t, original.Location, parsed.Location)
	assert.True(t, original.Start.Equal(parsed.Start))
	assert.True(t, original.End.Equal(parsed.End))
	assert.False(t, parsed.AllDay)
}

func TestParseCalendarObjectNoData(t *testing.T) {
	_, err := parseCalendarObject(&caldav.CalendarObject{})
	require.Error(t, err)
}

func TestCreateEventValidation(t *testing.T) {
	c := NewClient(config.CalendarConfig{
		URL:      "https://caldav.example.com",
		Username: "u",
		Password: "p",
		Calendar: "/calendars/u/default/",
	})

	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event Event
	}{
		{"empty title", Event{Title: "  ", Start: start, End: start.Add(time.Hour)}},
		{"missing times", Event{Title: "Standup"}},
		{"start after end", Event{Title: "Standup", Start: start.Add(time.Hour), End: start}},
		{"start equals end", Event{Title: "Standup", Start: start, End: start}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateEvent(context.Background(), tt.event)
			assert.Error(t, err)
		})
	}
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewClient(config.CalendarConfig{}).IsConfigured())
	assert.True(t, NewClient(config.CalendarConfig{
		URL:      "https://caldav.example.com",
		Username: "u",
		Password: "p",
	}).IsConfigured())
}
