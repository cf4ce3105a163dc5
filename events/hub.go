package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

// Event types pushed to the staff dashboard.
const (
	EventReservationUpdate = "reservation_update"
	EventOrderUpdate       = "order_update"
	EventLoyaltyUpdate     = "loyalty_update"
	EventStaffNotif        = "staff_notification"
	EventSettingsUpdate    = "settings_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds all connected dashboard clients (staff, admin, rider).
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient removes and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastReservationUpdate pushes a reservation change to all clients.
func BroadcastReservationUpdate(reservation models.Reservation) {
	broadcast(Message{
		Event: EventReservationUpdate,
		Data:  reservation,
	})
}

// BroadcastOrderUpdate pushes an order change to all clients.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastLoyaltyUpdate announces a customer's new point total/tier.
func BroadcastLoyaltyUpdate(customerID uint, points int64, tier string) {
	broadcast(Message{
		Event: EventLoyaltyUpdate,
		Data: map[string]interface{}{
			"customer_id": customerID,
			"points":      points,
			"tier":        tier,
		},
	})
}

// BroadcastStaffNotification sends a plain text message to staff.
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

func broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("failed to encode broadcast message: %v", err)
		}
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
