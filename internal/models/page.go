package models

import "time"

type Page struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Body            *string   `json:"body,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RenderedPage отдаётся публично; markdown уже превращён в безопасный HTML.
type RenderedPage struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	BodyHTML        string    `json:"body_html"`
	MetaDescription string    `json:"meta_description,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// swagger:model PageRequest
type PageRequest struct {
	Slug            string `json:"slug"             validate:"required,slug,max=120" example:"uses"`
	Title           string `json:"title"            validate:"required,max=255"      example:"What I use"`
	Body            string `json:"body"             validate:"max=200000"`
	MetaDescription string `json:"meta_description" validate:"max=300"`
	Published       bool   `json:"published"`
}
