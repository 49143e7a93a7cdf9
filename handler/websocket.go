package handler

import (
	"context"
	"log"

	"quentinhas/helper"

	"github.com/gofiber/contrib/websocket"
)

// OrderEventsWebsocket forwards order events to an admin screen until either side closes.
func OrderEventsWebsocket(c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, unsubscribe := helper.Events.Subscribe(ctx)
	defer unsubscribe()
	defer c.Close()

	// the reader only exists to notice the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(ev); err != nil {
				log.Printf("Websocket write failed: %v", err)
				return
			}
		}
	}
}
