package validate

import (
	"errors"
	"strings"
	"time"

	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// OrderId checks the order identifier route param.
func OrderId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params(key))
		if id == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing order id"))
		}

		c.Locals("orderId", id)
		return c.Next()
	}
}

// EventDate checks an ISO date route param.
func EventDate(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Params(key)
		if _, err := time.Parse(utils.ISODate, date); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("eventDate", date)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		if input.Username == "" || input.Password == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}
