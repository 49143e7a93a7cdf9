package handler

import (
	"quentinhas/database"
	"quentinhas/helper"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetDeadlines lists one entry per event date, with the stored row when there is one.
func GetDeadlines(c *fiber.Ctx) error {
	ctx := c.UserContext()
	catalog := helper.CurrentCatalog()

	configs, err := database.Deadlines.All(ctx)
	if err != nil {
		return errorStatus(c, err)
	}
	avail, warnings := helper.ResolveAvailability(catalog.Dates, configs, helper.Now(), helper.Location())

	stored := make(map[string]model.DeadlineConfig, len(configs))
	for _, cfg := range configs {
		stored[cfg.EventDate] = cfg
	}

	views := make([]model.DeadlineView, 0, len(avail))
	for _, a := range avail {
		view := model.DeadlineView{EventDate: a.Date, Label: a.Label}
		if cfg, ok := stored[a.Date]; ok {
			if err := copier.CopyWithOption(&view, &cfg, copier.Option{IgnoreEmpty: true}); err != nil {
				return errorStatus(c, err)
			}
		}
		view.Status = a.Status
		view.Deadline = a.Deadline
		views = append(views, view)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       views,
		TotalCount: int64(len(views)),
		Warnings:   warnings,
	})
}

func SaveDeadline(c *fiber.Ctx) error {
	input := c.Locals("inputDeadline").(model.DeadlineInput)
	eventDate := c.Locals("eventDate").(string)

	cfg, err := helper.SaveDeadline(c.UserContext(), database.Deadlines, helper.CurrentCatalog(), eventDate, input)
	if err != nil {
		return errorStatus(c, err)
	}

	var view model.DeadlineView
	if err := copier.Copy(&view, &cfg); err != nil {
		return errorStatus(c, err)
	}
	avail, _ := helper.ResolveAvailability([]model.EventDate{{Date: cfg.EventDate, Label: cfg.Label}}, []model.DeadlineConfig{cfg}, helper.Now(), helper.Location())
	view.Status = avail[0].Status
	view.Deadline = avail[0].Deadline
	return utils.SuccessResponse(c, fiber.StatusOK, view)
}
