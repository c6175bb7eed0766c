package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"predial-server/internal/infra/async"
	"predial-server/internal/infra/httpserver"
	"predial-server/internal/maintenance/usecases"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin validation belongs to the gateway in front of this service.
		return true
	},
}

type eventsClient struct {
	conn          *websocket.Conn
	condominiumID string
}

// WorkOrderEventsController streams creation and status-change events to
// websocket clients. Each client only receives events of the condominium it
// subscribed to.
type WorkOrderEventsController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]string
	clientsMux sync.RWMutex
	register   chan eventsClient
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewWorkOrderEventsController(broker async.InternalBroker) *WorkOrderEventsController {
	ctx, cancel := context.WithCancel(context.Background())

	controller := &WorkOrderEventsController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]string),
		register:   make(chan eventsClient),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go controller.run()

	return controller
}

var _ httpserver.Controller = (*WorkOrderEventsController)(nil)

func (c *WorkOrderEventsController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios/{id}/os/events", c.handleWebSocket())
}

func (c *WorkOrderEventsController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := strings.TrimSpace(r.PathValue("id"))
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("work order events client connected",
			slog.String("condominium_id", condominiumID),
			slog.String("remote_addr", r.RemoteAddr))

		c.register <- eventsClient{conn: conn, condominiumID: condominiumID}

		go c.handlePingPong(conn)
		go c.handleClient(conn)
	}
}

func (c *WorkOrderEventsController) handleClient(conn *websocket.Conn) {
	defer func() {
		c.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (c *WorkOrderEventsController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *WorkOrderEventsController) run() {
	subscription, err := c.broker.Subscribe(usecases.WorkOrderEventsTopic)
	if err != nil {
		slog.Error("subscribing to work order events", slog.String("error", err.Error()))
		return
	}
	defer c.broker.Unsubscribe(usecases.WorkOrderEventsTopic, subscription)

	for {
		select {
		case <-c.ctx.Done():
			return

		case client := <-c.register:
			c.clientsMux.Lock()
			c.clients[client.conn] = client.condominiumID
			total := len(c.clients)
			c.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", total))

		case conn := <-c.unregister:
			c.clientsMux.Lock()
			if _, ok := c.clients[conn]; ok {
				delete(c.clients, conn)
				conn.Close()
			}
			total := len(c.clients)
			c.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", total))

		case brokerMsg, ok := <-subscription.Receiver:
			if !ok {
				return
			}
			event, ok := brokerMsg.Value.(usecases.WorkOrderEvent)
			if !ok {
				continue
			}
			c.broadcast(event)
		}
	}
}

func (c *WorkOrderEventsController) broadcast(event usecases.WorkOrderEvent) {
	c.clientsMux.Lock()
	defer c.clientsMux.Unlock()

	for conn, condominiumID := range c.clients {
		if condominiumID != event.CondominiumID {
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(event); err != nil {
			slog.Error("writing to websocket client", slog.String("error", err.Error()))
			conn.Close()
			delete(c.clients, conn)
		}
	}
}

func (c *WorkOrderEventsController) Shutdown() {
	slog.Info("shutting down work order events controller")
	c.cancel()

	c.clientsMux.Lock()
	for conn := range c.clients {
		conn.Close()
	}
	c.clientsMux.Unlock()
}
