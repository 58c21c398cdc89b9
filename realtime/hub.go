package realtime

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Event is a message pushed to course subscribers.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Notifier is the publish capability handlers depend on. Publishing is
// fire-and-forget: it never blocks and there is no delivery guarantee, so
// subscribers not connected at publish time simply miss the event.
type Notifier interface {
	Publish(courseID uint, event Event)
}

// joinMessage is what clients send to subscribe to a course channel.
type joinMessage struct {
	Event    string `json:"event"`
	CourseID uint   `json:"courseId"`
}

// subscriber buffers outgoing events for one connection. When the buffer is
// full, new events for that subscriber are dropped.
type subscriber struct {
	courseID uint
	send     chan Event
}

// Hub tracks which connections are subscribed to which course channel.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uint]map[*subscriber]struct{}
}

// Default is the hub the application publishes to.
var Default = NewHub()

func NewHub() *Hub {
	return &Hub{rooms: make(map[uint]map[*subscriber]struct{})}
}

// Publish delivers the event to every current subscriber of the course.
func (h *Hub) Publish(courseID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[courseID] {
		select {
		case sub.send <- event:
		default:
			// Slow consumer, drop the event for this subscriber.
		}
	}
}

func (h *Hub) subscribe(courseID uint) *subscriber {
	sub := &subscriber{courseID: courseID, send: make(chan Event, 8)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[courseID] == nil {
		h.rooms[courseID] = make(map[*subscriber]struct{})
	}
	h.rooms[courseID][sub] = struct{}{}
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if room, ok := h.rooms[sub.courseID]; ok {
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, sub.courseID)
		}
	}
	close(sub.send)
}

// Handle runs one websocket connection. The client sends
// {"event":"join-course","courseId":N} to subscribe to a course channel;
// joining another course replaces the previous subscription.
func (h *Hub) Handle(conn *websocket.Conn) {
	var sub *subscriber
	done := make(chan struct{})

	defer func() {
		close(done)
		h.unsubscribe(sub)
		conn.Close()
	}()

	writer := func(sub *subscriber) {
		for {
			select {
			case event, ok := <-sub.send:
				if !ok {
					return
				}
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}

	for {
		var msg joinMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Event != "join-course" {
			continue
		}
		log.Printf("Client joined course channel %d", msg.CourseID)

		h.unsubscribe(sub)
		sub = h.subscribe(msg.CourseID)
		go writer(sub)
	}
}
