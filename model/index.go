package model

import "time"

type TokenClaim struct {
	Username string `json:"username"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResponseCustom struct {
	Rows       any      `json:"rows"`
	TotalCount int64    `json:"totalCount"`
	Warnings   []string `json:"warnings,omitempty"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
