package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StringList is a []string stored as a JSON array in a single TEXT column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Game is a catalog record. OwnerID is nil for games added without an
// account; when set, (OwnerID, Title) is unique.
type Game struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	ReleaseYear int        `db:"release_year" json:"release_year"`
	Genre       string     `db:"genre" json:"genre"`
	Description string     `db:"description" json:"description"`
	Platform    StringList `db:"platform" json:"platform"`
	Image       string     `db:"image" json:"image,omitempty"`
	OwnerID     *string    `db:"owner_id" json:"owner_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// CreateGameRequest carries the fields of a new game. Every rule is
// checked; violations are collected rather than short-circuited.
type CreateGameRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=100"`
	ReleaseYear int      `json:"release_year" validate:"required,release_year"`
	Genre       string   `json:"genre" validate:"required,gamegenre"`
	Description string   `json:"description" validate:"required,min=10,max=1000"`
	Platform    []string `json:"platform" validate:"required,min=1,unique,dive,gameplatform"`
	Image       string   `json:"image" validate:"omitempty,httpurl"`
	OwnerID     *string  `json:"owner_id" validate:"omitempty,uuid"`
}

// Normalize trims surrounding whitespace so the length bounds apply to
// the meaningful text.
func (r *CreateGameRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Genre = strings.TrimSpace(r.Genre)
	r.Description = strings.TrimSpace(r.Description)
	r.Image = strings.TrimSpace(r.Image)
	for i, p := range r.Platform {
		r.Platform[i] = strings.TrimSpace(p)
	}
}

// UpdateGameRequest is a partial patch: nil fields are left untouched,
// supplied fields are validated with the same rules as create.
type UpdateGameRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=2,max=100"`
	ReleaseYear *int     `json:"release_year" validate:"omitempty,release_year"`
	Genre       *string  `json:"genre" validate:"omitempty,gamegenre"`
	Description *string  `json:"description" validate:"omitempty,min=10,max=1000"`
	Platform    []string `json:"platform" validate:"omitempty,min=1,unique,dive,gameplatform"`
	Image       *string  `json:"image" validate:"omitempty,httpurl"`
}

// Empty reports whether the patch carries no fields at all.
func (r *UpdateGameRequest) Empty() bool {
	return r.Title == nil && r.ReleaseYear == nil && r.Genre == nil &&
		r.Description == nil && r.Platform == nil && r.Image == nil
}

// Normalize trims surrounding whitespace on the supplied fields.
func (r *UpdateGameRequest) Normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.Title)
	trim(r.Genre)
	trim(r.Description)
	trim(r.Image)
	for i, p := range r.Platform {
		r.Platform[i] = strings.TrimSpace(p)
	}
}

// Apply copies the supplied fields of the patch onto g.
func (r *UpdateGameRequest) Apply(g *Game) {
	if r.Title != nil {
		g.Title = *r.Title
	}
	if r.ReleaseYear != nil {
		g.ReleaseYear = *r.ReleaseYear
	}
	if r.Genre != nil {
		g.Genre = *r.Genre
	}
	if r.Description != nil {
		g.Description = *r.Description
	}
	if r.Platform != nil {
		g.Platform = StringList(r.Platform)
	}
	if r.Image != nil {
		g.Image = *r.Image
	}
}
