package controllers

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"artfolio/artfolio/live"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
)

var nowFunc = time.Now

const defaultEventType = "performance"

type EventInput struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
}

type EventList struct {
	Upcoming []models.Event `json:"upcoming"`
	Past     []models.Event `json:"past"`
}

type EventsController struct {
	store store.Store
	live  live.Publisher
}

func NewEventsController(s store.Store, pub live.Publisher) *EventsController {
	if pub == nil {
		pub = live.Nop{}
	}
	return &EventsController{store: s, live: pub}
}

func (c *EventsController) AddEvent(ctx context.Context, userID string, in EventInput) (*models.Event, error) {
	title := strings.TrimSpace(in.Title)
	location := strings.TrimSpace(in.Location)
	if title == "" || in.Date == "" || location == "" {
		return nil, store.Invalid("AddEvent", "please fill in all required fields")
	}
	date, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return nil, store.Invalid("AddEvent", "date must be YYYY-MM-DD")
	}
	typ := in.Type
	if typ == "" {
		typ = defaultEventType
	}
	if !slices.Contains(models.EventTypes, typ) {
		return nil, store.Invalid("AddEvent", "unknown event type "+typ)
	}
	ev, err := c.store.CreateEvent(ctx, &models.Event{
		UserID:      userID,
		Title:       title,
		Date:        date,
		Location:    location,
		Description: in.Description,
		Type:        typ,
	})
	if err != nil {
		return nil, fail("AddEvent", err)
	}
	c.live.Publish(userID, live.EventAdded, ev)
	return ev, nil
}

// ListEvents splits the user's events around the calendar day of now.
func (c *EventsController) ListEvents(ctx context.Context, userID string, now time.Time) (EventList, error) {
	events, err := c.store.ListEvents(ctx, userID)
	if err != nil {
		return EventList{}, fail("ListEvents", err)
	}
	return splitEvents(events, now), nil
}

// RemoveEvent deletes the event if userID owns it. Missing ids succeed.
func (c *EventsController) RemoveEvent(ctx context.Context, userID, eventID string) error {
	if err := c.store.DeleteEvent(ctx, userID, eventID); err != nil {
		return fail("RemoveEvent", err)
	}
	c.live.Publish(userID, live.EventRemoved, map[string]string{"id": eventID})
	return nil
}

// splitEvents puts today and later into Upcoming (soonest first) and
// everything earlier into Past (most recent first).
func splitEvents(events []models.Event, now time.Time) EventList {
	today := now.Format(models.DateLayout)
	list := EventList{Upcoming: []models.Event{}, Past: []models.Event{}}
	for _, ev := range events {
		if ev.DateString() >= today {
			list.Upcoming = append(list.Upcoming, ev)
		} else {
			list.Past = append(list.Past, ev)
		}
	}
	sort.SliceStable(list.Upcoming, func(i, j int) bool {
		return list.Upcoming[i].DateString() < list.Upcoming[j].DateString()
	})
	sort.SliceStable(list.Past, func(i, j int) bool {
		return list.Past[i].DateString() > list.Past[j].DateString()
	})
	return list
}
