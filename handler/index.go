package handler

import (
	"errors"
	"log"
	"strings"

	"quentinhas/constants"
	"quentinhas/helper"
	"quentinhas/model"
	"quentinhas/repository"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps domain errors onto responses. Nothing here is fatal.
func errorStatus(c *fiber.Ctx, err error) error {
	var ve helper.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, ve.Message, err)
	case errors.Is(err, helper.ErrNoDatesSelected):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_DATES_SELECTED, err)
	case errors.Is(err, helper.ErrSessionNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SESSION_NOT_FOUND, err)
	case errors.Is(err, repository.ErrOrderNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	case errors.Is(err, repository.ErrOrderNotApproved):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_NOT_APPROVED, err)
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func today() string {
	return helper.Now().In(helper.Location()).Format(utils.ISODate)
}

func sortKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func loadSession(c *fiber.Ctx) (*model.Session, error) {
	return helper.Sessions.Get(c.UserContext(), c.Params("session"))
}
