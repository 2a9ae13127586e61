package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(4)

	delivered := hub.Publish("dashboard", Event{Name: "new_order", Payload: 1})

	assert.Equal(t, 0, delivered)
}

func TestSubscribeReceivesPublishedEvent(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe("dashboard")
	defer hub.Unsubscribe(sub)

	delivered := hub.Publish("dashboard", Event{Name: "new_order", Payload: "order-1"})

	assert.Equal(t, 1, delivered)
	event := <-sub.C
	assert.Equal(t, "new_order", event.Name)
	assert.Equal(t, "order-1", event.Payload)
}

func TestPublishIsScopedToTopic(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe("dashboard")
	defer hub.Unsubscribe(sub)

	delivered := hub.Publish("other-topic", Event{Name: "new_order"})

	assert.Equal(t, 0, delivered)
	select {
	case <-sub.C:
		t.Fatal("subscriber received event from another topic")
	default:
	}
}

func TestSlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	hub := NewHub(1)
	slow := hub.Subscribe("dashboard")
	fast := hub.Subscribe("dashboard")
	defer hub.Unsubscribe(slow)
	defer hub.Unsubscribe(fast)

	// fill the slow subscriber's buffer
	hub.Publish("dashboard", Event{Name: "first"})
	<-fast.C

	delivered := hub.Publish("dashboard", Event{Name: "second"})

	// slow one dropped, fast one got it
	assert.Equal(t, 1, delivered)
	assert.Equal(t, "second", (<-fast.C).Name)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe("dashboard")

	hub.Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers("dashboard"))

	// double unsubscribe is a no-op
	hub.Unsubscribe(sub)
}
