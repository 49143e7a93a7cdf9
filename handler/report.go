package handler

import (
	"time"

	"quentinhas/constants"
	"quentinhas/database"
	"quentinhas/helper"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
)

// GetReport aggregates approved orders of ?data= (default today). Always recomputed.
func GetReport(c *fiber.Ctx) error {
	date := c.Query("data", today())
	if _, err := time.Parse(utils.ISODate, date); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	report, warnings, err := helper.DailyReport(c.UserContext(), database.Orders, date)
	if err != nil {
		return errorStatus(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"report":   report,
		"warnings": warnings,
	})
}
