package http

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/bcaffe88/cardapio-completo/src/internal/gateway/broadcast"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/usecase"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

// wsFrame is the envelope every dashboard frame uses.
type wsFrame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// WSController streams order events to dashboard clients. Each connection
// gets a snapshot of current orders, then live deltas from the hub until it
// disconnects.
type WSController struct {
	Log          log.Log
	Broadcaster  *broadcast.Broadcaster
	OrderUseCase *usecase.OrderUseCase
}

func NewWSController(broadcaster *broadcast.Broadcaster, orderUseCase *usecase.OrderUseCase, logger log.Log) *WSController {
	return &WSController{
		Log:          logger,
		Broadcaster:  broadcaster,
		OrderUseCase: orderUseCase,
	}
}

// Upgrade rejects plain HTTP requests on the websocket route.
func (c *WSController) Upgrade() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (c *WSController) OrdersStream() fiber.Handler {
	return websocket.New(c.stream)
}

func (c *WSController) stream(conn *websocket.Conn) {
	defer conn.Close()

	snapshot := c.OrderUseCase.InitialOrders(context.Background())
	if snapshot.Error == nil {
		if err := conn.WriteJSON(wsFrame{Event: model.EventInitialOrders, Data: snapshot.Data}); err != nil {
			c.Log.Error("WSController.stream", "Failed to send initial snapshot", "error", err.Error())
			return
		}
	} else {
		c.Log.Error("WSController.stream", "Failed to load initial snapshot", "error", snapshot.Error.Error())
	}

	sub := c.Broadcaster.Subscribe()
	defer c.Broadcaster.Unsubscribe(sub)

	// Reads are only used to notice the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(wsFrame{Event: event.Name, Data: event.Payload}); err != nil {
				c.Log.Info("WSController.stream", "Client write failed, closing", "error", err.Error())
				return
			}
		case <-done:
			return
		}
	}
}
