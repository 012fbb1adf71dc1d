package models

import "time"

// SettingEntry: строка таблицы site_settings. Булевы значения хранятся строками "true"/"false".
type SettingEntry struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// swagger:model SettingRequest
type SettingRequest struct {
	Key         string `json:"key"         validate:"required,max=100" example:"contact_email"`
	Value       string `json:"value"       validate:"max=4000"          example:"me@example.com"`
	Description string `json:"description" validate:"max=500"`
}
