package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTargetEmployee(t *testing.T) {
	h := NewHub(0)
	alice, cleanupAlice := h.Subscribe("E001")
	bob, cleanupBob := h.Subscribe("E002")
	defer cleanupAlice()
	defer cleanupBob()

	h.Publish("E001", Event{Event: "application_status", Data: "승인"})

	select {
	case ev := <-alice:
		assert.Equal(t, "E001", ev.EmployeeID)
		assert.Equal(t, "승인", ev.Data)
	default:
		t.Fatal("expected an event for E001")
	}
	assert.Len(t, bob, 0)
}

func TestHub_CleanupClosesAndForgets(t *testing.T) {
	h := NewHub(1)
	ch, cleanup := h.Subscribe("E001")
	require.Equal(t, 1, h.SubscriberCount("E001"))

	cleanup()
	cleanup()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount("E001"))
	assert.Equal(t, 0, h.TotalSubscribers())
}

func TestHub_FullBufferDropsEvent(t *testing.T) {
	h := NewHub(1)
	ch, cleanup := h.Subscribe("E001")
	defer cleanup()

	h.Publish("E001", Event{Event: "first"})
	h.Publish("E001", Event{Event: "second"})

	assert.Equal(t, "first", (<-ch).Event)
	assert.Len(t, ch, 0)
}
