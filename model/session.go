package model

import "time"

// Session holds one customer's cart between requests. Cart is keyed by date then item name.
type Session struct {
	ID            string                    `json:"id"`
	SelectedDates []string                  `json:"selectedDates"`
	Cart          map[string]map[string]int `json:"cart"`
	Submitted     bool                      `json:"submitted"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

type SessionResponse struct {
	Session *Session           `json:"session"`
	Quote   Quote              `json:"quote"`
	Dates   []DateAvailability `json:"dates"`
}
