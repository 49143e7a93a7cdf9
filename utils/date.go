package utils

import (
	"fmt"
	"time"
)

const (
	ISODate    = "2006-01-02"
	BRDate     = "02/01/2006"
	BRDateTime = "02/01/2006 15:04"
)

var weekdaysPT = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

func WeekdayPT(d time.Weekday) string {
	return weekdaysPT[d]
}

// DateLabel renders an ISO date as "Sábado (02/08/2025)".
func DateLabel(iso string) (string, error) {
	d, err := time.Parse(ISODate, iso)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", iso, err)
	}
	return fmt.Sprintf("%s (%s)", WeekdayPT(d.Weekday()), d.Format(BRDate)), nil
}

// ISOToBR turns "2025-08-02" into "02/08/2025", returning the input untouched when it does not parse.
func ISOToBR(iso string) string {
	d, err := time.Parse(ISODate, iso)
	if err != nil {
		return iso
	}
	return d.Format(BRDate)
}
