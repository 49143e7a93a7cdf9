package helper

import (
	"log"
	"sync"
	"time"

	"quentinhas/config"
)

// Now is the clock used by intake and deadlines; tests replace it.
var Now = time.Now

var (
	locOnce  sync.Once
	location *time.Location
)

// Location is the event's time zone, from TIMEZONE (default America/Fortaleza).
func Location() *time.Location {
	locOnce.Do(func() {
		name := config.ConfigOr("TIMEZONE", "America/Fortaleza")
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("Unknown TIMEZONE %q, using UTC-3: %v", name, err)
			loc = time.FixedZone("BRT", -3*3600)
		}
		location = loc
	})
	return location
}
