package models

import (
	"strings"
	"time"

	"github.com/emrekoca/recipebox/internal/apperr"
)

type Recipe struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Category     string    `json:"category"`
	OwnerID      int64     `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" ||
		strings.TrimSpace(r.Ingredients) == "" ||
		strings.TrimSpace(r.Instructions) == "" {
		return apperr.New(apperr.Validation, "Missing required fields")
	}
	return nil
}
