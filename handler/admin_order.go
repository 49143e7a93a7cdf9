package handler

import (
	"log"

	"quentinhas/constants"
	"quentinhas/database"
	"quentinhas/helper"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func orderList(c *fiber.Ctx, orders []model.Order, warnings []string) error {
	views := []model.OrderView{}
	if err := copier.Copy(&views, &orders); err != nil {
		return errorStatus(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       views,
		TotalCount: int64(len(views)),
		Warnings:   warnings,
	})
}

func GetPendingOrders(c *fiber.Ctx) error {
	filterInput := new(model.PendingFilter)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	orders, warnings, err := database.Orders.Snapshot(c.UserContext())
	if err != nil {
		return errorStatus(c, err)
	}
	return orderList(c, helper.FilterPending(orders, *filterInput), warnings)
}

func GetDeliveries(c *fiber.Ctx) error {
	filterInput := new(model.DeliveryFilter)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if filterInput.Date == "" {
		filterInput.Date = today()
	}
	filterInput.SortBy = sortKeys(c.Query("ordenar"))

	orders, warnings, err := database.Orders.Snapshot(c.UserContext())
	if err != nil {
		return errorStatus(c, err)
	}
	return orderList(c, helper.FilterDeliveries(orders, *filterInput), warnings)
}

func ApproveOrder(c *fiber.Ctx) error {
	id := c.Locals("orderId").(string)

	if err := helper.ApproveOrder(c.UserContext(), database.Orders, id); err != nil {
		return errorStatus(c, err)
	}
	admin := helper.GetAdminFromToken(c)
	log.Printf("Order #%s approved by %s", id, admin.Username)

	return notificationResponse(c, id)
}

func DeliverOrder(c *fiber.Ctx) error {
	id := c.Locals("orderId").(string)

	if err := helper.MarkDelivered(c.UserContext(), database.Orders, id); err != nil {
		return errorStatus(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id, "delivered": constants.DELIVERED_YES})
}

func GetNotification(c *fiber.Ctx) error {
	return notificationResponse(c, c.Locals("orderId").(string))
}

// notificationResponse re-reads the sheet so the message reflects the stored row.
func notificationResponse(c *fiber.Ctx, id string) error {
	orders, _, err := database.Orders.Snapshot(c.UserContext())
	if err != nil {
		return errorStatus(c, err)
	}
	order, ok := helper.FindOrder(orders, id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, nil)
	}

	n := helper.NotificationFor(order)
	if qr, err := utils.QRCodeDataURI(n.Link, 256); err == nil {
		n.QRCode = qr
	} else {
		log.Printf("QR code for #%s: %v", id, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, n)
}
