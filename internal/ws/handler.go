package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// StudentLookup reports whether a student id exists.
type StudentLookup func(id string) bool

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	known    StudentLookup
	logger   *log.Logger
}

// NewHandler accepts browser origins from allowedOrigins ("*" allows any).
// Requests without an Origin header are always accepted. known may be nil,
// in which case any student_id is subscribed to.
func NewHandler(hub *Hub, allowedOrigins []string, known StudentLookup, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	origins := append([]string(nil), allowedOrigins...)
	h := &Handler{hub: hub, known: known, logger: logger}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r.Header.Get("Origin"), origins)
		},
	}
	return h
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}

// HandleStudentsWS streams student events. ?student_id= narrows the stream
// to one student, which must exist.
func (h *Handler) HandleStudentsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	if !strings.EqualFold(c.Get(fiber.HeaderUpgrade), "websocket") {
		return fiber.ErrUpgradeRequired
	}

	topic := strings.TrimSpace(c.Query("student_id"))
	if topic != "" && h.known != nil && !h.known(topic) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	upgrade := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("WS upgrade error | topic=%q error=%v", topic, err)
			return
		}

		client := NewClient(h.hub, conn, topic)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return upgrade(c)
}
