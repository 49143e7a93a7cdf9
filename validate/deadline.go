package validate

import (
	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
)

func Deadline() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.DeadlineInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputDeadline", input)
		return c.Next()
	}
}
