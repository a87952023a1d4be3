// Package repotest holds the behaviour checks shared by every store backend.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// Run exercises the behaviour every store backend must share. repos must be empty.
func Run(t *testing.T, repos *repository.Repositories) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ids follow max plus one", func(t *testing.T) {
		for i, name := range []string{"Godrej", "Sobha", "M3M"} {
			b := &models.Builder{Name: name, CreatedAt: now}
			require.NoError(t, repos.Builders.Create(ctx, b))
			assert.Equal(t, uint(i+1), b.ID)
		}
		require.NoError(t, repos.Builders.Delete(ctx, 2))
		b := &models.Builder{Name: "Tata", CreatedAt: now}
		require.NoError(t, repos.Builders.Create(ctx, b))
		assert.Equal(t, uint(4), b.ID)

		all, err := repos.Builders.All(ctx)
		require.NoError(t, err)
		ids := make([]uint, 0, len(all))
		for _, b := range all {
			ids = append(ids, b.ID)
		}
		assert.Equal(t, []uint{1, 3, 4}, ids)
	})

	t.Run("missing rows are not found", func(t *testing.T) {
		var b models.Builder
		err := repos.Builders.GetByID(ctx, 99, &b)
		assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
		assert.Equal(t, "Builder not found", appErr.MessageOf(err))
		assert.True(t, appErr.IsCode(repos.Builders.Delete(ctx, 99), appErr.CodeNotFound))
	})

	t.Run("property filters", func(t *testing.T) {
		builder := uint(1)
		for _, p := range []models.Property{
			{Title: "Villa", Price: 2500000, Location: "Sector 15, Gurugram", PropertyType: "House", Status: "Available", BuilderID: &builder},
			{Title: "Flat 100%", Price: 850000, Location: "MG Road, Gurugram", PropertyType: "Flat", Status: "Available"},
			{Title: "Condo", Price: 1200000, Location: "DLF Phase 1, Gurugram", PropertyType: "Flat", Status: "Sold"},
			{Title: "Studio", Price: 400000, Location: "ÉCOLE Road, Pondicherry", PropertyType: "Flat", Status: "Available"},
		} {
			p.Images = datatypes.JSONSlice[string]{"x.jpg"}
			p.CreatedAt = now
			require.NoError(t, repos.Properties.Create(ctx, &p))
		}

		lo, hi := 1000000.0, 3000000.0
		got, err := repos.Properties.List(ctx, repository.PropertyFilter{MinPrice: &lo, MaxPrice: &hi})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Villa", got[0].Title)
		assert.Equal(t, "Condo", got[1].Title)
		assert.Equal(t, []string{"x.jpg"}, []string(got[0].Images))
		require.NotNil(t, got[0].BuilderID)
		assert.Equal(t, builder, *got[0].BuilderID)

		got, err = repos.Properties.List(ctx, repository.PropertyFilter{Location: "GURUGRAM", PropertyType: "Flat", Status: "Available"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Flat 100%", got[0].Title)

		got, err = repos.Properties.List(ctx, repository.PropertyFilter{Location: "école"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Studio", got[0].Title)

		// LIKE wildcards in the filter are literal.
		got, err = repos.Properties.List(ctx, repository.PropertyFilter{Location: "%"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("agent and project filters", func(t *testing.T) {
		require.NoError(t, repos.Agents.Create(ctx, &models.Agent{Name: "Priya Sharma", CreatedAt: now}))
		require.NoError(t, repos.Agents.Create(ctx, &models.Agent{Name: "Rohit Verma", CreatedAt: now}))
		agents, err := repos.Agents.List(ctx, repository.AgentFilter{Name: "sharma"})
		require.NoError(t, err)
		require.Len(t, agents, 1)
		assert.Equal(t, "Priya Sharma", agents[0].Name)

		require.NoError(t, repos.Agents.Create(ctx, &models.Agent{Name: "ÖZLEM Çelik", CreatedAt: now}))
		agents, err = repos.Agents.List(ctx, repository.AgentFilter{Name: "özlem çelik"})
		require.NoError(t, err)
		require.Len(t, agents, 1)
		assert.Equal(t, "ÖZLEM Çelik", agents[0].Name)

		require.NoError(t, repos.Projects.Create(ctx, &models.Project{Title: "Camellias", Location: "Golf Course Road", Status: "Available", Tag: "new-launch", CreatedAt: now}))
		require.NoError(t, repos.Projects.Create(ctx, &models.Project{Title: "Magnolias", Location: "Golf Course Road", Status: "Completed", Tag: "available", CreatedAt: now}))
		projects, err := repos.Projects.List(ctx, repository.ProjectFilter{Location: "golf", Tag: "available"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Magnolias", projects[0].Title)

		require.NoError(t, repos.Projects.Create(ctx, &models.Project{Title: "Rue Dumas", Location: "ÉCOLE Road", Status: "Available", Tag: "new-launch", CreatedAt: now}))
		projects, err = repos.Projects.List(ctx, repository.ProjectFilter{Location: "école"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Rue Dumas", projects[0].Title)
	})

	t.Run("admins by email", func(t *testing.T) {
		require.NoError(t, repos.Admins.Create(ctx, &models.Admin{Name: "Asha", Email: "asha@example.com", PasswordHash: "h", Role: "admin", CreatedAt: now}))
		var a models.Admin
		require.NoError(t, repos.Admins.GetByEmail(ctx, "asha@example.com", &a))
		assert.Equal(t, "Asha", a.Name)
		assert.True(t, appErr.IsCode(repos.Admins.GetByEmail(ctx, "none@example.com", &a), appErr.CodeNotFound))
		n, err := repos.Admins.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("notification feed", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, repos.Notifications.Create(ctx, &models.Notification{
				Type: models.KindBuilder, Message: "m", AdminID: 1, AdminName: "Admin User",
				CreatedAt: now.Add(time.Duration(i%2) * time.Minute),
			}))
		}
		feed, err := repos.Notifications.ListRecent(ctx)
		require.NoError(t, err)
		require.Len(t, feed, 3)
		assert.Equal(t, []uint{2, 3, 1}, []uint{feed[0].ID, feed[1].ID, feed[2].ID})

		unread, err := repos.Notifications.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), unread)

		require.NoError(t, repos.Notifications.MarkAllRead(ctx))
		unread, err = repos.Notifications.CountUnread(ctx)
		require.NoError(t, err)
		assert.Zero(t, unread)
	})

	t.Run("home content upsert", func(t *testing.T) {
		sec := &models.HomeContentSection{Section: "hero", Content: datatypes.JSON(`{"title":"A"}`), UpdatedAt: now}
		require.NoError(t, repos.HomeContent.Upsert(ctx, sec))
		sec.Content = datatypes.JSON(`{"title":"B"}`)
		require.NoError(t, repos.HomeContent.Upsert(ctx, sec))

		var got models.HomeContentSection
		require.NoError(t, repos.HomeContent.Get(ctx, "hero", &got))
		assert.JSONEq(t, `{"title":"B"}`, string(got.Content))

		all, err := repos.HomeContent.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		assert.True(t, appErr.IsCode(repos.HomeContent.Get(ctx, "about", &got), appErr.CodeNotFound))

		require.NoError(t, repos.HomeContent.Upsert(ctx,
			&models.HomeContentSection{Section: "about", Content: datatypes.JSON(`{"title":"Us"}`), UpdatedAt: now},
			&models.HomeContentSection{Section: "hero", Content: datatypes.JSON(`{"title":"C"}`), UpdatedAt: now},
		))
		all, err = repos.HomeContent.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "about", all[0].Section)
		assert.JSONEq(t, `{"title":"C"}`, string(all[1].Content))
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, repos.Ping(ctx))
	})
}
