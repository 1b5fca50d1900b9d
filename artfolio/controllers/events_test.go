package controllers

import (
	"context"
	"testing"
	"time"

	"artfolio/artfolio/sources/memory"
	"artfolio/artfolio/sources/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEventValidation(t *testing.T) {
	c := NewEventsController(memory.New(), nil)
	ctx := context.Background()

	_, err := c.AddEvent(ctx, "u1", EventInput{Title: "Show", Date: "2030-01-01"})
	require.Error(t, err)
	assert.Equal(t, store.KindInvalid, store.KindOf(err))
	assert.Contains(t, err.Error(), "please fill in all required fields")

	_, err = c.AddEvent(ctx, "u1", EventInput{Title: "Show", Date: "01/02/2030", Location: "Hall"})
	assert.Equal(t, store.KindInvalid, store.KindOf(err))

	_, err = c.AddEvent(ctx, "u1", EventInput{Title: "Show", Date: "2030-01-01", Location: "Hall", Type: "party"})
	assert.Equal(t, store.KindInvalid, store.KindOf(err))

	ev, err := c.AddEvent(ctx, "u1", EventInput{Title: " Show ", Date: "2030-01-01", Location: "Hall"})
	require.NoError(t, err)
	assert.Equal(t, "performance", ev.Type)
	assert.Equal(t, "Show", ev.Title)
	assert.Equal(t, "2030-01-01", ev.DateString())
}

func TestListEventsSplitsAroundToday(t *testing.T) {
	c := NewEventsController(memory.New(), nil)
	ctx := context.Background()
	for _, d := range []string{"2024-05-01", "2024-06-20", "2024-06-15", "2024-07-01", "2024-03-10"} {
		_, err := c.AddEvent(ctx, "u1", EventInput{Title: d, Date: d, Location: "Hall", Type: "workshop"})
		require.NoError(t, err)
	}
	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	list, err := c.ListEvents(ctx, "u1", now)
	require.NoError(t, err)
	var upcoming, past []string
	for _, ev := range list.Upcoming {
		upcoming = append(upcoming, ev.DateString())
	}
	for _, ev := range list.Past {
		past = append(past, ev.DateString())
	}
	assert.Equal(t, []string{"2024-06-15", "2024-06-20", "2024-07-01"}, upcoming)
	assert.Equal(t, []string{"2024-05-01", "2024-03-10"}, past)
}

func TestRemoveEventScopedToOwner(t *testing.T) {
	c := NewEventsController(memory.New(), nil)
	ctx := context.Background()
	ev, err := c.AddEvent(ctx, "u1", EventInput{Title: "Show", Date: "2030-01-01", Location: "Hall"})
	require.NoError(t, err)

	require.NoError(t, c.RemoveEvent(ctx, "intruder", ev.ID))
	list, err := c.ListEvents(ctx, "u1", time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, list.Upcoming, 1)

	require.NoError(t, c.RemoveEvent(ctx, "u1", ev.ID))
	require.NoError(t, c.RemoveEvent(ctx, "u1", ev.ID))
	list, err = c.ListEvents(ctx, "u1", time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, list.Upcoming)
	assert.Empty(t, list.Past)
}
