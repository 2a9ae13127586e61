package pubsub

import "sync"

// Event is what flows through the hub. Name is the wire event type
// ("new_order", "order_status_update"), Payload the JSON-serializable body.
type Event struct {
	Name    string
	Payload interface{}
}

// Subscription is a handle for one subscriber. Receive from C until it is
// closed by Unsubscribe.
type Subscription struct {
	topic string
	id    uint64
	C     <-chan Event
	ch    chan Event
}

// Hub is an in-process topic broadcaster. Publishing never blocks: a
// subscriber whose buffer is full misses the event instead of stalling the
// publisher.
type Hub struct {
	mu      sync.RWMutex
	subs    map[string]map[uint64]chan Event
	nextID  uint64
	bufSize int
}

func NewHub(bufSize int) *Hub {
	if bufSize <= 0 {
		bufSize = 16
	}
	return &Hub{
		subs:    make(map[string]map[uint64]chan Event),
		bufSize: bufSize,
	}
}

func (h *Hub) Subscribe(topic string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	ch := make(chan Event, h.bufSize)
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[uint64]chan Event)
	}
	h.subs[topic][h.nextID] = ch

	return &Subscription{topic: topic, id: h.nextID, C: ch, ch: ch}
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if topicSubs, ok := h.subs[sub.topic]; ok {
		if ch, ok := topicSubs[sub.id]; ok {
			delete(topicSubs, sub.id)
			close(ch)
		}
		if len(topicSubs) == 0 {
			delete(h.subs, sub.topic)
		}
	}
}

// Publish delivers the event to every current subscriber of the topic and
// returns how many actually received it.
func (h *Hub) Publish(topic string, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, ch := range h.subs[topic] {
		select {
		case ch <- event:
			delivered++
		default:
			// subscriber buffer full, drop for this one
		}
	}
	return delivered
}

// Subscribers reports the current subscriber count for a topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}
