package ws

import (
	"log"
	"net/http"
	"sync"

	"babylone/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Notification is what subscribed clients receive when an order changes or
// the staff sends a message.
type Notification struct {
	OrderID string `json:"orderId,omitempty"`
	Status  string `json:"status,omitempty"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message"`
}

type subscription struct {
	conn    *websocket.Conn
	orderID string // "" subscribes to everything (admin screens)
}

type outbound struct {
	orderID string // "" reaches every client
	payload Notification
}

// NotifyHub fans order notifications out to websocket subscribers. Delivery is
// best-effort: a full queue or dead connection never blocks the sender.
type NotifyHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> connections
	broadcast  chan outbound
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan outbound, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *NotifyHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.orderID] == nil {
				h.clients[sub.orderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.orderID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.orderID][sub.conn]; ok {
				delete(h.clients[sub.orderID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			if msg.orderID == "" {
				for _, conns := range h.clients {
					h.send(conns, msg.payload)
				}
			} else {
				// order-scoped messages also reach the catch-all subscribers
				h.send(h.clients[msg.orderID], msg.payload)
				h.send(h.clients[""], msg.payload)
			}
			h.mu.Unlock()
		}
	}
}

func (h *NotifyHub) send(conns map[*websocket.Conn]bool, n Notification) {
	for conn := range conns {
		if err := conn.WriteJSON(n); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

// NotifyOrder queues a status/message push for one order. Fire-and-forget:
// if the hub is saturated the notification is dropped, not the caller.
func (h *NotifyHub) NotifyOrder(orderID, message string, status entity.OrderStatus) {
	n := Notification{OrderID: orderID, Message: message}
	if status != "" {
		n.Status = string(status)
		n.Label = status.Label()
	}
	select {
	case h.broadcast <- outbound{orderID: orderID, payload: n}:
	default:
		log.Printf("notify hub full, dropped notification for %s", orderID)
	}
}

// Broadcast queues a message for every connected client.
func (h *NotifyHub) Broadcast(message string) {
	select {
	case h.broadcast <- outbound{payload: Notification{Message: message}}:
	default:
		log.Print("notify hub full, dropped broadcast")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id — live status for one order.
func (h *NotifyHub) HandleOrderSocket(c *gin.Context) {
	h.subscribe(c, c.Param("id"))
}

// WS route: /ws/notifications — admin catch-all feed.
func (h *NotifyHub) HandleFeedSocket(c *gin.Context) {
	h.subscribe(c, "")
}

func (h *NotifyHub) subscribe(c *gin.Context, orderID string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, orderID: orderID}
	h.register <- sub

	// push-only socket; the read loop just notices the close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
