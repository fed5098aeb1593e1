package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesTopicOnly(t *testing.T) {
	hub := NewHub()
	am, cleanupAm := hub.Subscribe("am")
	defer cleanupAm()
	en, cleanupEn := hub.Subscribe("en")
	defer cleanupEn()

	hub.Publish("am", Event{Event: "tick", Data: "ሰላም"})

	select {
	case ev := <-am:
		assert.Equal(t, "am", ev.Topic)
		assert.Equal(t, "tick", ev.Event)
		assert.Equal(t, "ሰላም", ev.Data)
	default:
		t.Fatal("expected event on am topic")
	}

	select {
	case ev := <-en:
		t.Fatalf("unexpected event on en topic: %+v", ev)
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("en")
	_, cleanup2 := hub.Subscribe("en")

	assert.Equal(t, 2, hub.SubscriberCount("en"))
	assert.Equal(t, []string{"en"}, hub.Topics())

	cleanup()
	cleanup() // second call is a no-op
	assert.Equal(t, 1, hub.SubscriberCount("en"))

	_, open := <-ch
	assert.False(t, open, "channel should be closed after cleanup")

	cleanup2()
	assert.Equal(t, 0, hub.TotalSubscribers())
	assert.Empty(t, hub.Topics())
}

func TestHub_FullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("am")
	defer cleanup()

	for i := 0; i < hub.bufferSize*3; i++ {
		hub.Publish("am", Event{Event: "tick", Data: i})
	}

	require.Len(t, ch, hub.bufferSize)
	first := <-ch
	assert.Equal(t, 0, first.Data)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Publish("nobody", Event{Event: "tick"})
	})
	assert.Equal(t, 0, hub.SubscriberCount("nobody"))
}
