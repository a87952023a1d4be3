// Package seed loads the starter data a fresh store needs: one admin able to
// log in and a handful of sample listings for the public pages.
package seed

import (
	"context"
	"time"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/pkg/logger"
	"github.com/megareality/estate/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

// Result reports what Run inserted.
type Result struct {
	Admins     int
	Properties int
}

// Run inserts the default admin and sample properties into tables that are
// still empty. Tables holding any row are left alone, so Run is safe on every start.
// Seeding writes straight to the repositories and appends no notifications.
func Run(ctx context.Context, repos *repository.Repositories, now time.Time) (Result, error) {
	var res Result

	admins, err := repos.Admins.All(ctx)
	if err != nil {
		return res, err
	}
	if len(admins) == 0 {
		a := &models.Admin{
			Name:         "Admin User",
			Email:        DefaultAdminEmail,
			PasswordHash: utils.HashPassword(DefaultAdminPassword),
			Role:         "admin",
			CreatedAt:    now,
		}
		if err := repos.Admins.Create(ctx, a); err != nil {
			return res, err
		}
		res.Admins++
	}

	props, err := repos.Properties.All(ctx)
	if err != nil {
		return res, err
	}
	if len(props) == 0 {
		for _, p := range SampleProperties(now) {
			if err := repos.Properties.Create(ctx, &p); err != nil {
				return res, err
			}
			res.Properties++
		}
	}

	logger.From(ctx).Info("seed complete", zap.Int("admins", res.Admins), zap.Int("properties", res.Properties))
	return res, nil
}

func sample(title, desc string, price float64, location, kind string, beds, baths int, area float64, image string, now time.Time) models.Property {
	return models.Property{
		Title:        title,
		Description:  desc,
		Price:        price,
		Location:     location,
		PropertyType: kind,
		Status:       "Available",
		Bedrooms:     beds,
		Bathrooms:    baths,
		AreaSqft:     area,
		Images:       datatypes.JSONSlice[string]{image},
		CreatedAt:    now,
	}
}

// SampleProperties returns the demo listings in insertion order.
func SampleProperties(now time.Time) []models.Property {
	return []models.Property{
		sample("Luxury Villa in Sector 15", "Beautiful modern villa with stunning garden views in the heart of Gurugram",
			2500000, "Sector 15, Gurugram, Haryana", "House", 5, 4, 4500,
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80", now),
		sample("Modern Apartment in MG Road", "Contemporary apartment in prime location of Gurugram",
			850000, "MG Road, Gurugram, Haryana", "Flat", 2, 2, 1200,
			"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800&q=80", now),
		sample("Premium Condo in DLF Phase 1", "Luxury condo with premium amenities in DLF Phase 1",
			1200000, "DLF Phase 1, Gurugram, Haryana", "Flat", 3, 3, 2100,
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&q=80", now),
		sample("Spacious House in South Delhi", "Elegant house with beautiful garden in South Delhi",
			3200000, "South Delhi, New Delhi", "House", 4, 3, 3500,
			"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&q=80", now),
		sample("Luxury Penthouse in Central Delhi", "Stunning penthouse with panoramic city views",
			4500000, "Central Delhi, New Delhi", "Flat", 4, 4, 3800,
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80", now),
		sample("Affordable Apartment in East Delhi", "Well-designed apartment in a developing locality of East Delhi",
			650000, "East Delhi, New Delhi", "Flat", 2, 2, 1100,
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80", now),
	}
}
