package calendar

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"

	"aide/internal/config"
)

// Client talks to a CalDAV server over basic auth.
type Client struct {
	baseURL      string
	username     string
	password     string
	calendarPath string
	client       *caldav.Client
}

// NewClient creates a CalDAV client from the calendar configuration.
func NewClient(cfg config.CalendarConfig) *Client {
	return &Client{
		baseURL:      cfg.URL,
		username:     cfg.Username,
		password:     cfg.Password,
		calendarPath: cfg.Calendar,
	}
}

// IsConfigured reports whether credentials are set.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.username != "" && c.password != ""
}

func (c *Client) connect() (*caldav.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	httpClient := &http.Client{
		Transport: &basicAuthTransport{
			username: c.username,
			password: c.password,
		},
		Timeout: 30 * time.Second,
	}

	client, err := caldav.NewClient(httpClient, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to CalDAV: %w", err)
	}

	c.client = client
	return client, nil
}

type basicAuthTransport struct {
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	return http.DefaultTransport.RoundTrip(req)
}

// resolveCalendarPath returns the configured calendar path, discovering
// the first calendar in the user's home set when none is configured.
func (c *Client) resolveCalendarPath(ctx context.Context) (string, error) {
	if c.calendarPath != "" {
		return c.calendarPath, nil
	}

	client, err := c.connect()
	if err != nil {
		return "", err
	}

	principal, err := client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("find principal: %w", err)
	}

	homeSet, err := client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return "", fmt.Errorf("find home set: %w", err)
	}

	cals, err := client.FindCalendars(ctx, homeSet)
	if err != nil {
		return "", fmt.Errorf("find calendars: %w", err)
	}
	if len(cals) == 0 {
		return "", fmt.Errorf("no calendars found for %s", c.username)
	}

	c.calendarPath = cals[0].Path
	return c.calendarPath, nil
}

// Upcoming returns events starting between now and now+days, sorted by
// start time.
func (c *Client) Upcoming(ctx context.Context, days int) ([]Event, error) {
	if days <= 0 {
		days = 7
	}

	client, err := c.connect()
	if err != nil {
		return nil, err
	}

	calPath, err := c.resolveCalendarPath(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	query := &caldav.CalendarQuery{
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{
				{
					Name:  "VEVENT",
					Start: now,
					End:   now.AddDate(0, 0, days),
				},
			},
		},
	}

	objects, err := client.QueryCalendar(ctx, calPath, query)
	if err != nil {
		return nil, fmt.Errorf("query calendar: %w", err)
	}

	var events []Event
	for _, obj := range objects {
		event, err := parseCalendarObject(&obj)
		if err != nil {
			continue
		}
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events, nil
}

// CreateEvent validates and uploads a new event, returning it with its
// assigned UID.
func (c *Client) CreateEvent(ctx context.Context, event Event) (*Event, error) {
	if strings.TrimSpace(event.Title) == "" {
		return nil, fmt.Errorf("event title must not be empty")
	}
	if event.Start.IsZero() || event.End.IsZero() {
		return nil, fmt.Errorf("event start and end times are required")
	}
	if !event.Start.Before(event.End) {
		return nil, fmt.Errorf("event start must be before end")
	}

	client, err := c.connect()
	if err != nil {
		return nil, err
	}

	calPath, err := c.resolveCalendarPath(ctx)
	if err != nil {
		return nil, err
	}

	if event.UID == "" {
		event.UID = uuid.NewString()
	}

	cal := eventToICS(&event)

	eventPath := calPath
	if !strings.HasSuffix(eventPath, "/") {
		eventPath += "/"
	}
	eventPath += event.UID + ".ics"

	if _, err := client.PutCalendarObject(ctx, eventPath, cal); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return &event, nil
}

// DeleteEvent removes an event by UID.
func (c *Client) DeleteEvent(ctx context.Context, uid string) error {
	client, err := c.connect()
	if err != nil {
		return err
	}

	calPath, err := c.resolveCalendarPath(ctx)
	if err != nil {
		return err
	}

	eventPath := calPath
	if !strings.HasSuffix(eventPath, "/") {
		eventPath += "/"
	}
	eventPath += uid + ".ics"

	if err := client.RemoveAll(ctx, eventPath); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

func parseCalendarObject(obj *caldav.CalendarObject) (Event, error) {
	var event Event

	if obj.Data == nil {
		return event, fmt.Errorf("no data in calendar object")
	}

	for _, comp := range obj.Data.Children {
		if comp.Name != ical.CompEvent {
			continue
		}

		if prop := comp.Props.Get(ical.PropUID); prop != nil {
			event.UID = prop.Value
		}
		if prop := comp.Props.Get(ical.PropSummary); prop != nil {
			event.Title = prop.Value
		}
		if prop := comp.Props.Get(ical.PropDescription); prop != nil {
			event.Description = prop.Value
		}
		if prop := comp.Props.Get(ical.PropLocation); prop != nil {
			event.Location = prop.Value
		}
		if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
			if t, err := prop.DateTime(time.UTC); err == nil {
				event.Start = t
			}
			if prop.Params.Get(ical.ParamValue) == string(ical.ValueDate) {
				event.AllDay = true
			}
		}
		if prop := comp.Props.Get(ical.PropDateTimeEnd); prop != nil {
			if t, err := prop.DateTime(time.UTC); err == nil {
				event.End = t
			}
		}

		break
	}

	if event.UID == "" && event.Title == "" {
		return event, fmt.Errorf("no VEVENT in calendar object")
	}

	return event, nil
}

func eventToICS(event *Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//aide//CalDAV//EN")

	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, event.UID)
	vevent.Props.SetText(ical.PropSummary, event.Title)

	if event.Description != "" {
		vevent.Props.SetText(ical.PropDescription, event.Description)
	}
	if event.Location != "" {
		vevent.Props.SetText(ical.PropLocation, event.Location)
	}

	if event.AllDay {
		vevent.Props.SetDate(ical.PropDateTimeStart, event.Start)
		if !event.End.IsZero() {
			vevent.Props.SetDate(ical.PropDateTimeEnd, event.End)
		}
	} else {
		vevent.Props.SetDateTime(ical.PropDateTimeStart, event.Start.UTC())
		if !event.End.IsZero() {
			vevent.Props.SetDateTime(ical.PropDateTimeEnd, event.End.UTC())
		}
	}

	vevent.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	cal.Children = append(cal.Children, vevent.Component)
	return cal
}
