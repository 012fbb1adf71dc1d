package models

import "time"

// NavigationItem: строка таблицы navigation_items.
type NavigationItem struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Path         string    `json:"path"`
	ParentID     *string   `json:"parent_id"`
	Visible      bool      `json:"visible"`
	Icon         string    `json:"icon,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsTopLevel: элемент без родителя.
func (n NavigationItem) IsTopLevel() bool {
	return n.ParentID == nil || *n.ParentID == ""
}

// NavNode: элемент меню с вложенными подпунктами, как его рендерит шапка сайта.
type NavNode struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Path     string    `json:"path"`
	Icon     string    `json:"icon,omitempty"`
	Active   bool      `json:"active,omitempty"`
	Subpages []NavNode `json:"subpages"`
}

// swagger:model NavigationItemRequest
type NavigationItemRequest struct {
	Label        string  `json:"label"         validate:"required,max=100"      example:"Projects"`
	Path         string  `json:"path"          validate:"required,abspath,max=255" example:"/projects"`
	ParentID     *string `json:"parent_id"     validate:"omitempty,uuid"`
	Visible      *bool   `json:"visible"`
	Icon         string  `json:"icon"          validate:"max=50"                 example:"folder"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
}
