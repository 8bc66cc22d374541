package server

import (
	"log"
	"sync"

	"euchre-sim/internal/game"
	"euchre-sim/internal/protocol"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

const broadcastBuffer = 256

// Hub manages spectator connections and fans table events out to them.
type Hub struct {
	clients        map[*Client]bool
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	broadcast      chan []byte
	clientMu       sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		broadcast:      make(chan []byte, broadcastBuffer),
	}
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString() // Assign a unique ID upon registration
			log.Printf("Client %s (%s) connected", client.ID, client.conn.RemoteAddr())
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()

		case client := <-h.unregister:
			h.clientMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Client %s disconnected", client.ID)
			}
			h.clientMu.Unlock()

		case message := <-h.broadcast:
			h.broadcastToAll(message)

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	return len(h.clients)
}

// Publish queues a message for every spectator. It never blocks; when the
// queue is full the message is dropped.
func (h *Hub) Publish(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		log.Printf("Broadcast queue full, dropping message")
	}
}

// Observer returns a game observer that publishes each event to spectators.
func (h *Hub) Observer() game.Observer {
	return func(e game.Event) {
		msg, err := protocol.FromEvent(e)
		if err != nil {
			log.Printf("Game %s: cannot publish %s: %v", e.GameID, e.Kind, err)
			return
		}
		h.Publish(msg)
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case protocol.TypePing:
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendToClient(client, pongMsg)
	default:
		log.Printf("Received unknown message type '%s' from client %s", msg.Type, client.ID)
		h.sendToClient(client, protocol.NewError("Unknown message type."))
	}
}

func (h *Hub) broadcastToAll(message []byte) {
	h.clientMu.RLock()
	clientsToSend := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clientsToSend = append(clientsToSend, c)
	}
	h.clientMu.RUnlock()

	for _, client := range clientsToSend {
		h.sendToClient(client, message)
	}
}

// sendToClient does a non-blocking send and drops clients that cannot keep up.
func (h *Hub) sendToClient(client *Client, message []byte) {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- message:
	default:
		log.Printf("Failed to send message to client %s (channel full), initiating cleanup.", client.ID)
		// Use a goroutine to avoid deadlock, Run is the caller
		go func() { h.unregister <- client }()
	}
}
