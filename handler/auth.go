package handler

import (
	"errors"
	"time"

	"quentinhas/constants"
	"quentinhas/helper"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("inputLogin").(model.LoginInput)

	if err := helper.Admin.Authenticate(input.Username, input.Password); err != nil {
		if errors.Is(err, helper.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{Username: input.Username})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message":     "login success",
		"username":    input.Username,
		"accessToken": token,
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "logout success"})
}
