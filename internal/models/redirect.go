package models

import "time"

type Redirect struct {
	ID        string    `json:"id"`
	FromPath  string    `json:"from_path"`
	ToPath    string    `json:"to_path"`
	Permanent bool      `json:"permanent"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// swagger:model RedirectRequest
type RedirectRequest struct {
	FromPath  string `json:"from_path" validate:"required,abspath,max=255" example:"/blog"`
	ToPath    string `json:"to_path"   validate:"required,redirect_target,max=2048" example:"/research"`
	Permanent bool   `json:"permanent"`
	Enabled   *bool  `json:"enabled"`
}
