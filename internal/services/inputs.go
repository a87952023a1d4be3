package services

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// OptionalID distinguishes an absent id field from an explicit null.
// The admin form posts "" for "no builder", which also clears it.
type OptionalID struct {
	Set bool
	ID  *uint
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.ID = nil
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		return nil
	}
	if len(b) > 1 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return err
	}
	id := uint(v)
	o.ID = &id
	return nil
}

// Value returns the id to store, or nil.
func (o OptionalID) Value() *uint {
	return o.ID
}

// Every input struct doubles as the create body and the partial-update patch:
// nil pointers are "not supplied". Required tags apply on create only.

type AdminInput struct {
	Name     *string `json:"name" validate:"required,notblank"`
	Email    *string `json:"email" validate:"required,notblank"`
	Password *string `json:"password" validate:"required,notblank"`
	Role     *string `json:"role"`
}

type PropertyInput struct {
	Title        *string    `json:"title" validate:"required,notblank"`
	Description  *string    `json:"description"`
	Price        *float64   `json:"price" validate:"required,gte=0"`
	Location     *string    `json:"location" validate:"required,notblank"`
	PropertyType *string    `json:"property_type" validate:"required,notblank"`
	Status       *string    `json:"status"`
	Bedrooms     *int       `json:"bedrooms"`
	Bathrooms    *int       `json:"bathrooms"`
	AreaSqft     *float64   `json:"area_sqft"`
	BuilderID    OptionalID `json:"builder_id"`
	IsFavorite   *bool      `json:"is_favorite"`
	Images       *[]string  `json:"images"`
}

type AgentInput struct {
	Name           *string `json:"name" validate:"required,notblank"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Position       *string `json:"position"`
	Experience     *string `json:"experience"`
	PropertiesSold *int    `json:"properties_sold"`
	Image          *string `json:"image"`
	Bio            *string `json:"bio"`
	IsFavorite     *bool   `json:"is_favorite"`
}

type BuilderInput struct {
	Name          *string `json:"name" validate:"required,notblank"`
	ProjectsCount *int    `json:"projects_count"`
	Image         *string `json:"image"`
	Description   *string `json:"description"`
}

type ProjectInput struct {
	Title          *string    `json:"title" validate:"required,notblank"`
	Description    *string    `json:"description"`
	Location       *string    `json:"location" validate:"required,notblank"`
	Status         *string    `json:"status"`
	CompletionDate *string    `json:"completion_date"`
	TotalUnits     *int       `json:"total_units"`
	BuilderID      OptionalID `json:"builder_id"`
	Images         *[]string  `json:"images"`
	Tag            *string    `json:"tag"`
	IsFavorite     *bool      `json:"is_favorite"`
	Type           *string    `json:"type"`
	Area           *string    `json:"area"`
	PriceRange     *string    `json:"price_range"`
	Address        *string    `json:"address"`
	City           *string    `json:"city"`
	State          *string    `json:"state"`
	Pincode        *string    `json:"pincode"`
}

type InquiryInput struct {
	UserName   *string `json:"user_name" validate:"required,notblank"`
	Email      *string `json:"email" validate:"required,notblank"`
	Phone      *string `json:"phone"`
	PropertyID *uint   `json:"property_id"`
	Message    *string `json:"message"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func valueOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}

// cleanImages drops blank entries the dashboard form leaves behind.
func cleanImages(in *[]string) []string {
	out := []string{}
	if in == nil {
		return out
	}
	for _, s := range *in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
