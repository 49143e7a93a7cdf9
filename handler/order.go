package handler

import (
	"log"

	"quentinhas/constants"
	"quentinhas/database"
	"quentinhas/helper"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMenu(c *fiber.Ctx) error {
	catalog := helper.CurrentCatalog()
	avail, warnings, err := helper.Availability(c.UserContext(), database.Deadlines, catalog)
	if err != nil {
		return errorStatus(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.MenuResponse{
		Items:      catalog.Items,
		Dates:      avail,
		SideDishes: constants.SIDE_DISHES,
		Warnings:   warnings,
	})
}

func sessionResponse(c *fiber.Ctx, status int, s *model.Session) error {
	catalog := helper.CurrentCatalog()
	avail, _, err := helper.Availability(c.UserContext(), database.Deadlines, catalog)
	if err != nil {
		return errorStatus(c, err)
	}
	return utils.SuccessResponse(c, status, model.SessionResponse{
		Session: s,
		Quote:   helper.BuildQuote(s, catalog),
		Dates:   avail,
	})
}

func CreateSession(c *fiber.Ctx) error {
	s := helper.NewSession()
	if err := helper.Sessions.Save(c.UserContext(), s); err != nil {
		return errorStatus(c, err)
	}
	return sessionResponse(c, fiber.StatusCreated, s)
}

func GetSession(c *fiber.Ctx) error {
	s, err := loadSession(c)
	if err != nil {
		return errorStatus(c, err)
	}
	return sessionResponse(c, fiber.StatusOK, s)
}

func SelectDates(c *fiber.Ctx) error {
	input := c.Locals("inputSelectDates").(model.SelectDatesInput)

	s, err := loadSession(c)
	if err != nil {
		return errorStatus(c, err)
	}
	avail, _, err := helper.Availability(c.UserContext(), database.Deadlines, helper.CurrentCatalog())
	if err != nil {
		return errorStatus(c, err)
	}
	if err := helper.SelectDates(s, input.Dates, avail); err != nil {
		return errorStatus(c, err)
	}
	if err := helper.Sessions.Save(c.UserContext(), s); err != nil {
		return errorStatus(c, err)
	}
	return sessionResponse(c, fiber.StatusOK, s)
}

func SetQuantity(c *fiber.Ctx) error {
	input := c.Locals("inputSetQuantity").(model.SetQuantityInput)

	s, err := loadSession(c)
	if err != nil {
		return errorStatus(c, err)
	}
	if err := helper.SetQuantity(s, helper.CurrentCatalog(), input.Date, input.Item, input.Qty); err != nil {
		return errorStatus(c, err)
	}
	if err := helper.Sessions.Save(c.UserContext(), s); err != nil {
		return errorStatus(c, err)
	}
	return sessionResponse(c, fiber.StatusOK, s)
}

func Checkout(c *fiber.Ctx) error {
	input := c.Locals("inputCheckout").(model.CheckoutInput)
	ctx := c.UserContext()

	s, err := loadSession(c)
	if err != nil {
		return errorStatus(c, err)
	}
	catalog := helper.CurrentCatalog()
	avail, _, err := helper.Availability(ctx, database.Deadlines, catalog)
	if err != nil {
		return errorStatus(c, err)
	}

	result, err := helper.Checkout(ctx, database.Orders, s, catalog, avail, input)
	if err != nil {
		return errorStatus(c, err)
	}
	if err := helper.Sessions.Save(ctx, s); err != nil {
		// orders are already written, only the cart reset is lost
		log.Printf("Save session %s after checkout: %v", s.ID, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func DeleteSession(c *fiber.Ctx) error {
	if err := helper.Sessions.Delete(c.UserContext(), c.Params("session")); err != nil {
		return errorStatus(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PixQRCode renders the Pix key as a PNG for payment apps.
func PixQRCode(c *fiber.Ctx) error {
	raw, err := utils.GenerateQRCode(helper.PaymentInfo(constants.PAYMENT_PIX).PixKey, 256)
	if err != nil {
		return errorStatus(c, err)
	}
	c.Type("png")
	return c.Send(raw)
}
