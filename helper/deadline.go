package helper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/repository"
	"quentinhas/utils"
)

var timeLayouts = []string{"15:04", "15:04:05"}

// DefaultDeadline is used when a stored deadline cannot be read: 22:00 on the eve of the event.
func DefaultDeadline(eventDate string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(utils.ISODate, eventDate, loc)
	if err != nil {
		return time.Time{}, err
	}
	return d.AddDate(0, 0, -1).Add(22 * time.Hour), nil
}

func parseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("hora inválida %q", s)
}

// ParseDeadline combines prazo_data and prazo_hora in loc.
func ParseDeadline(cfg model.DeadlineConfig, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(utils.ISODate, strings.TrimSpace(cfg.Date), loc)
	if err != nil {
		return time.Time{}, ConfigFormatError{EventDate: cfg.EventDate, Value: cfg.Date, Err: err}
	}
	clock, err := parseClock(cfg.Time)
	if err != nil {
		return time.Time{}, ConfigFormatError{EventDate: cfg.EventDate, Value: cfg.Time, Err: err}
	}
	return day.Add(clock), nil
}

// ResolveAvailability decides, per event date, whether ordering is open.
// Dates without a deadline stay selectable and are reported as undefined.
func ResolveAvailability(dates []model.EventDate, configs []model.DeadlineConfig, now time.Time, loc *time.Location) ([]model.DateAvailability, []string) {
	byDate := make(map[string]model.DeadlineConfig, len(configs))
	for _, cfg := range configs {
		byDate[cfg.EventDate] = cfg
	}

	var warnings []string
	result := make([]model.DateAvailability, 0, len(dates))
	for _, d := range dates {
		avail := model.DateAvailability{EventDate: d}
		cfg, ok := byDate[d.Date]
		if !ok {
			avail.Status = model.DEADLINE_UNDEFINED
			avail.Selectable = true
			result = append(result, avail)
			continue
		}

		deadline, err := ParseDeadline(cfg, loc)
		if err != nil {
			fallback, ferr := DefaultDeadline(d.Date, loc)
			if ferr != nil {
				// the event date itself is broken; keep it open rather than guess
				warnings = append(warnings, err.Error())
				avail.Status = model.DEADLINE_UNDEFINED
				avail.Selectable = true
				result = append(result, avail)
				continue
			}
			warnings = append(warnings, fmt.Sprintf("%s: %s", constants.INVALID_DEADLINE_FORMAT, err))
			deadline = fallback
		}

		avail.Deadline = utils.Ptr(deadline.In(loc).Format(utils.BRDateTime))
		if now.After(deadline) {
			avail.Status = model.DEADLINE_CLOSED
		} else {
			avail.Status = model.DEADLINE_OPEN
			avail.Selectable = true
		}
		result = append(result, avail)
	}
	return result, warnings
}

// Availability loads the Config sheet and resolves every catalog date against Now.
func Availability(ctx context.Context, deadlines *repository.DeadlineRepository, catalog Catalog) ([]model.DateAvailability, []string, error) {
	configs, err := deadlines.All(ctx)
	if err != nil {
		return nil, nil, err
	}
	avail, warnings := ResolveAvailability(catalog.Dates, configs, Now(), Location())
	for _, w := range warnings {
		log.Printf("Deadline warning: %s", w)
	}
	return avail, warnings, nil
}

func isSelectable(avail []model.DateAvailability, date string) (model.DateAvailability, bool) {
	for _, a := range avail {
		if a.Date == date {
			return a, a.Selectable
		}
	}
	return model.DateAvailability{}, false
}

// SaveDeadline validates an admin form and upserts it into the Config sheet.
func SaveDeadline(ctx context.Context, deadlines *repository.DeadlineRepository, catalog Catalog, eventDate string, input model.DeadlineInput) (model.DeadlineConfig, error) {
	ed, ok := catalog.Date(eventDate)
	if !ok {
		return model.DeadlineConfig{}, newValidationError("eventDate", fmt.Sprintf("data de evento desconhecida: %s", eventDate))
	}
	cfg := model.DeadlineConfig{
		EventDate: eventDate,
		Date:      strings.TrimSpace(input.Date),
		Time:      strings.TrimSpace(input.Time),
		Label:     strings.TrimSpace(input.Label),
	}
	if cfg.Label == "" {
		cfg.Label = ed.Label
	}
	if _, err := ParseDeadline(cfg, Location()); err != nil {
		return model.DeadlineConfig{}, newValidationError("time", err.Error())
	}
	if err := deadlines.Upsert(ctx, cfg); err != nil {
		return model.DeadlineConfig{}, err
	}
	log.Printf("Deadline for %s set to %s %s", cfg.EventDate, cfg.Date, cfg.Time)
	return cfg, nil
}
