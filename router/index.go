package router

import (
	"quentinhas/handler"
	"quentinhas/middleware"
	"quentinhas/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	v1.Get("/cardapio", handler.GetMenu)
	v1.Get("/pix/qrcode", handler.PixQRCode)

	pedido := v1.Group("/pedido")
	pedido.Post("/", handler.CreateSession)
	pedido.Get("/:session", handler.GetSession)
	pedido.Put("/:session/datas", validate.SelectDates(), handler.SelectDates)
	pedido.Put("/:session/itens", validate.SetQuantity(), handler.SetQuantity)
	pedido.Post("/:session/finalizar", validate.Checkout(), handler.Checkout)
	pedido.Delete("/:session", handler.DeleteSession)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)

	admin := v1.Group("/admin", middleware.Protected())
	admin.Get("/pedidos/pendentes", handler.GetPendingOrders)
	admin.Post("/pedidos/:id/aprovar", validate.OrderId("id"), handler.ApproveOrder)
	admin.Post("/pedidos/:id/entregar", validate.OrderId("id"), handler.DeliverOrder)
	admin.Get("/pedidos/:id/notificacao", validate.OrderId("id"), handler.GetNotification)
	admin.Get("/entregas", handler.GetDeliveries)
	admin.Get("/relatorio", handler.GetReport)
	admin.Get("/prazos", handler.GetDeadlines)
	admin.Put("/prazos/:date", validate.EventDate("date"), validate.Deadline(), handler.SaveDeadline)

	admin.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	admin.Get("/ws", websocket.New(handler.OrderEventsWebsocket))
}
