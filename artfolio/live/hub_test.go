package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesOnlyThatUser(t *testing.T) {
	h := NewHub(4)
	a, leaveA := h.Subscribe("u1")
	defer leaveA()
	b, leaveB := h.Subscribe("u2")
	defer leaveB()

	h.Publish("u1", ImageSaved, map[string]string{"id": "i1"})

	msg := <-a
	assert.Equal(t, ImageSaved, msg.Type)
	assert.Equal(t, "u1", msg.UserID)
	select {
	case m := <-b:
		t.Fatalf("u2 received %v", m)
	default:
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub(1)
	ch, leave := h.Subscribe("u1")
	defer leave()

	for i := 0; i < 10; i++ {
		h.Publish("u1", EventAdded, i)
	}
	require.Len(t, ch, 1)
	assert.Equal(t, 0, (<-ch).Payload)
}

func TestLeaveClosesAndForgets(t *testing.T) {
	h := NewHub(1)
	ch, leave := h.Subscribe("u1")
	assert.Equal(t, 1, h.Subscribers("u1"))
	leave()
	leave()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers("u1"))
	h.Publish("u1", ImageDeleted, nil)
}
