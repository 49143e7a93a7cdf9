package validate

import (
	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
)

func SelectDates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SelectDatesInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputSelectDates", input)
		return c.Next()
	}
}

func SetQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetQuantityInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputSetQuantity", input)
		return c.Next()
	}
}

// Checkout only checks the shape of the form; name and phone rules live in helper.BuildOrders.
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCheckout", input)
		return c.Next()
	}
}
