package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/makeasinger/briefgen/internal/model"
)

const (
	sendBuffer   = 16
	pingInterval = 30 * time.Second
	renderLimit  = 5 * time.Second
)

// Previewer renders a form snapshot
type Previewer interface {
	Generate(ctx context.Context, form *model.FormInput) (*model.GenerateResponse, error)
}

// Client represents one preview session
type Client struct {
	SessionID string
	Send      chan []byte
}

// NewClient creates a client with a fresh session id
func NewClient() *Client {
	return &Client{
		SessionID: uuid.New().String(),
		Send:      make(chan []byte, sendBuffer),
	}
}

// Hub maintains active preview sessions
type Hub struct {
	previewer Previewer
	logger    *zap.Logger

	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a new Hub
func NewHub(previewer Previewer, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		previewer:  previewer,
		logger:     logger,
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop; it returns after Stop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = client
			h.mu.Unlock()
			h.logger.Debug("Preview session opened", zap.String("session", client.SessionID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.SessionID]; ok {
				delete(h.clients, client.SessionID)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Debug("Preview session closed", zap.String("session", client.SessionID))

		case <-h.done:
			// Send channels stay open; readers may still be answering.
			h.mu.Lock()
			clear(h.clients)
			h.mu.Unlock()
			return
		}
	}
}

// Stop ends Run and forgets every session
func (h *Hub) Stop() {
	close(h.done)
}

// Register adds a new client
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ActiveSessions reports the number of open preview sessions
func (h *Hub) ActiveSessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleMessage answers one inbound frame on client.Send
func (h *Hub) HandleMessage(ctx context.Context, client *Client, raw []byte) {
	var msg model.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.sendError(client, "INVALID_MESSAGE", "Message is not valid JSON")
		return
	}

	switch msg.Type {
	case model.WSMessageTypePing:
		h.send(client, model.WSMessage{Type: model.WSMessageTypePong})

	case model.WSMessageTypePreview:
		var preview model.WSPreviewMessage
		if err := json.Unmarshal(raw, &preview); err != nil || preview.Form == nil {
			h.sendError(client, "INVALID_MESSAGE", "Preview requires a form")
			return
		}

		ctx, cancel := context.WithTimeout(ctx, renderLimit)
		defer cancel()

		result, err := h.previewer.Generate(ctx, preview.Form)
		if err != nil {
			h.logger.Warn("Preview failed", zap.String("session", client.SessionID), zap.Error(err))
			h.sendError(client, "SERVICE_ERROR", err.Error())
			return
		}

		h.send(client, model.WSResultMessage{
			Type:      model.WSMessageTypeResult,
			SessionID: client.SessionID,
			Seq:       preview.Seq,
			Result:    result,
		})

	default:
		h.sendError(client, "UNKNOWN_TYPE", "Unknown message type "+msg.Type)
	}
}

func (h *Hub) sendError(client *Client, code, message string) {
	h.send(client, model.WSErrorMessage{
		Type:      model.WSMessageTypeError,
		SessionID: client.SessionID,
		Error: model.WSError{
			Code:    code,
			Message: message,
		},
	})
}

func (h *Hub) send(client *Client, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to marshal message", zap.Error(err))
		return
	}

	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Preview session backlogged, dropping message", zap.String("session", client.SessionID))
	}
}

// HandleConnection handles a WebSocket connection
func (h *Hub) HandleConnection(c *websocket.Conn) {
	client := NewClient()

	h.Register(client)
	defer h.Unregister(client)

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case message, ok := <-client.Send:
				if !ok {
					c.WriteMessage(websocket.CloseMessage, []byte{})
					return
				}
				if err := c.WriteMessage(websocket.TextMessage, message); err != nil {
					return
				}

			case <-ticker.C:
				if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("WebSocket error", zap.String("session", client.SessionID), zap.Error(err))
			}
			break
		}

		h.HandleMessage(context.Background(), client, message)
	}
}
