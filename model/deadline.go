package model

// DeadlineConfig is one row of the Config sheet.
type DeadlineConfig struct {
	EventDate string `json:"eventDate"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Label     string `json:"label"`
}

type DeadlineInput struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Time  string `json:"time" validate:"required"`
	Label string `json:"label" validate:"omitempty,max=100"`
}

type DeadlineView struct {
	EventDate string  `json:"eventDate"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Label     string  `json:"label"`
	Status    string  `json:"status"`
	Deadline  *string `json:"deadline,omitempty"`
}
