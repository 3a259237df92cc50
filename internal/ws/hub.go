package ws

import (
	"log"
	"sync"
)

type message struct {
	topic   string
	payload []byte
}

// Hub fans messages out to connected clients. A client with an empty topic
// receives everything; otherwise only messages for its topic.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan message
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	stopped    bool
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan message, 1024),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.broadcast:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				if c.topic == "" || c.topic == msg.topic {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			var slow []*Client
			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					slow = append(slow, client)
				}
			}
			for _, c := range slow {
				h.remove(c)
			}

			if h.logger != nil {
				h.logger.Printf("WS broadcast | topic=%s clients=%d dropped=%d", msg.topic, len(targets), len(slow))
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	if client == nil {
		return
	}
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	if h.logger != nil {
		h.logger.Printf("WS disconnected | total_clients=%d", total)
	}
}

// Stop ends Run and closes every client's send channel.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() {
		h.mutex.Lock()
		h.stopped = true
		h.mutex.Unlock()
		close(h.done)
	})
}

// Register adds the client under the hub lock. Once the hub is stopped the
// client's send channel is closed right away so its pumps exit; clients
// added before Stop are closed by Run.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	if h.stopped {
		h.mutex.Unlock()
		close(client.send)
		return
	}
	h.clients[client] = true
	total := len(h.clients)
	h.mutex.Unlock()

	if h.logger != nil {
		h.logger.Printf("WS connected | topic=%q total_clients=%d", client.topic, total)
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast never blocks; when the queue is full the message is dropped.
func (h *Hub) Broadcast(topic string, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message{topic: topic, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS broadcast dropped | reason=buffer_full")
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
