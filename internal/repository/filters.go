package repository

import (
	"strings"

	"github.com/megareality/estate/internal/models"
)

// PropertyFilter narrows property listings. Zero values mean "no constraint".
type PropertyFilter struct {
	PropertyType string
	Status       string
	Location     string
	MinPrice     *float64
	MaxPrice     *float64
}

// Match reports whether p satisfies every set constraint.
func (f PropertyFilter) Match(p *models.Property) bool {
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Location != "" && !containsFold(p.Location, f.Location) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status   string
	Tag      string
	Location string
}

func (f ProjectFilter) Match(p *models.Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Tag != "" && p.Tag != f.Tag {
		return false
	}
	if f.Location != "" && !containsFold(p.Location, f.Location) {
		return false
	}
	return true
}

// AgentFilter narrows agent listings by a case-insensitive name fragment.
type AgentFilter struct {
	Name string
}

func (f AgentFilter) Match(a *models.Agent) bool {
	return f.Name == "" || containsFold(a.Name, f.Name)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// keep filters rows in place. Substring matching runs in Go because SQLite's
// LOWER only folds ASCII.
func keep[T any](rows []T, match func(*T) bool) []T {
	out := rows[:0]
	for i := range rows {
		if match(&rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out
}
