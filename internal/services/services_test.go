package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/repository/memory"
	"github.com/megareality/estate/pkg/database"
	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/megareality/estate/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Replace(zap.NewNop())
	m.Run()
}

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// backends lists every store the services run on in production.
var backends = []struct {
	name string
	open func(t *testing.T) *repository.Repositories
}{
	{"memory", func(*testing.T) *repository.Repositories { return memory.New() }},
	{"sqlite", openSQLite},
}

func openSQLite(t *testing.T) *repository.Repositories {
	t.Helper()
	db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "estate.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.AutoMigrate(db))
	return repository.NewGormRepositories(db)
}

func newTestServices(repos *repository.Repositories) *Services {
	return New(repos, Options{
		JWTSecret: []byte("test-secret"),
		Now:       func() time.Time { return fixedNow },
	})
}

// eachBackend runs fn once per store backend, each on an empty store.
func eachBackend(t *testing.T, fn func(t *testing.T, svc *Services)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, newTestServices(b.open(t)))
		})
	}
}

func ptr[T any](v T) *T { return &v }

func notifications(t *testing.T, svc *Services) []models.Notification {
	t.Helper()
	list, err := svc.Notifications.List(context.Background())
	require.NoError(t, err)
	return list
}

func TestPropertyCreateThenGet(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		created, err := svc.Properties.Create(ctx, &PropertyInput{
			Title:        ptr("Garden Flat"),
			Price:        ptr(975000.0),
			Location:     ptr("Sector 49, Gurugram"),
			PropertyType: ptr("Flat"),
			Bedrooms:     ptr(2),
			Images:       &[]string{"a.jpg", "", "b.jpg"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, fixedNow, created.CreatedAt)
		assert.Equal(t, "Available", created.Status)
		assert.False(t, created.IsFavorite)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string(created.Images))

		got, err := svc.Properties.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		n := notifications(t, svc)
		require.Len(t, n, 1)
		assert.Equal(t, models.KindProperty, n[0].Type)
		assert.Equal(t, "Property created: Garden Flat", n[0].Message)
		assert.Equal(t, SystemActor.ID, n[0].AdminID)
		assert.Equal(t, SystemActor.Name, n[0].AdminName)
	})
}

func TestPropertyCreateRequiresFields(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {

		_, err := svc.Properties.Create(context.Background(), &PropertyInput{Title: ptr("No price")})
		require.Error(t, err)
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))
		assert.Contains(t, appErr.MessageOf(err), "price is required")
		assert.Contains(t, appErr.MessageOf(err), "location is required")
		assert.Empty(t, notifications(t, svc))
	})
}

func TestEmptyUpdateStillNotifies(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		a, err := svc.Agents.Create(ctx, &AgentInput{Name: ptr("Priya Sharma"), Phone: ptr("+91 90000 00000")})
		require.NoError(t, err)

		updated, err := svc.Agents.Update(ctx, a.ID, &AgentInput{})
		require.NoError(t, err)
		assert.Equal(t, a, updated)

		n := notifications(t, svc)
		require.Len(t, n, 2)
		assert.Equal(t, "Agent updated: Priya Sharma", n[0].Message)
	})
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {

		_, err := svc.Builders.Update(context.Background(), 42, &BuilderInput{Name: ptr("x")})
		assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
		assert.Equal(t, "Builder not found", appErr.MessageOf(err))
	})
}

func TestBuilderNameResolution(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		b, err := svc.Builders.Create(ctx, &BuilderInput{Name: ptr("DLF")})
		require.NoError(t, err)

		p, err := svc.Projects.Create(ctx, &ProjectInput{
			Title:     ptr("The Camellias"),
			Location:  ptr("Golf Course Road"),
			BuilderID: OptionalID{Set: true, ID: &b.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, "DLF", p.BuilderName)
		assert.Equal(t, "Available", p.Status)
		assert.Equal(t, "available", p.Tag)

		_, err = svc.Builders.Update(ctx, b.ID, &BuilderInput{Name: ptr("DLF Limited")})
		require.NoError(t, err)
		got, err := svc.Projects.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "DLF Limited", got.BuilderName)

		unknown := uint(99)
		got, err = svc.Projects.Update(ctx, p.ID, &ProjectInput{BuilderID: OptionalID{Set: true, ID: &unknown}})
		require.NoError(t, err)
		assert.Equal(t, "", got.BuilderName)
		assert.Equal(t, &unknown, got.BuilderID)

		got, err = svc.Projects.Update(ctx, p.ID, &ProjectInput{BuilderID: OptionalID{Set: true, ID: &b.ID}})
		require.NoError(t, err)
		require.NoError(t, svc.Builders.Delete(ctx, b.ID))
		list, err := svc.Projects.List(ctx, repository.ProjectFilter{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "", list[0].BuilderName)
	})
}

func TestFavoriteToggle(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		p, err := svc.Properties.Create(ctx, &PropertyInput{
			Title: ptr("Villa"), Price: ptr(1.0), Location: ptr("Goa"), PropertyType: ptr("House"),
		})
		require.NoError(t, err)

		fav, err := svc.Properties.SetFavorite(ctx, p.ID, true)
		require.NoError(t, err)
		assert.True(t, fav.IsFavorite)
		_, err = svc.Properties.SetFavorite(ctx, p.ID, false)
		require.NoError(t, err)

		n := notifications(t, svc)
		require.Len(t, n, 3)
		assert.Equal(t, "Property removed from favorites: Villa", n[0].Message)
		assert.Equal(t, "Property added to favorites: Villa", n[1].Message)
	})
}

func TestPropertyFilters(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		for _, in := range []PropertyInput{
			{Title: ptr("A"), Price: ptr(2500000.0), Location: ptr("Sector 15, Gurugram"), PropertyType: ptr("House")},
			{Title: ptr("B"), Price: ptr(850000.0), Location: ptr("MG Road, Gurugram"), PropertyType: ptr("Flat")},
			{Title: ptr("C"), Price: ptr(1200000.0), Location: ptr("DLF Phase 1, Gurugram"), PropertyType: ptr("Flat")},
			{Title: ptr("D"), Price: ptr(3200000.0), Location: ptr("South Delhi"), PropertyType: ptr("House"), Status: ptr("Sold")},
		} {
			_, err := svc.Properties.Create(ctx, &in)
			require.NoError(t, err)
		}

		lo, hi := 1000000.0, 3000000.0
		got, err := svc.Properties.List(ctx, repository.PropertyFilter{MinPrice: &lo, MaxPrice: &hi})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C"}, titles(got))

		got, err = svc.Properties.List(ctx, repository.PropertyFilter{Location: "gurugram", PropertyType: "Flat"})
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "C"}, titles(got))

		got, err = svc.Properties.List(ctx, repository.PropertyFilter{Status: "Sold"})
		require.NoError(t, err)
		assert.Equal(t, []string{"D"}, titles(got))
	})
}

func titles(ps []models.Property) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestInquiryLifecycle(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		q, err := svc.Inquiries.Create(ctx, &InquiryInput{
			UserName:   ptr("Rahul"),
			Email:      ptr("rahul@example.com"),
			PropertyID: ptr(uint(404)),
		})
		require.NoError(t, err)
		assert.Equal(t, models.InquiryPending, q.Status)

		_, err = svc.Inquiries.UpdateStatus(ctx, q.ID, "closed")
		require.Error(t, err)
		assert.Equal(t, "Invalid status. Must be 'pending' or 'solved'", appErr.MessageOf(err))

		q, err = svc.Inquiries.UpdateStatus(ctx, q.ID, models.InquirySolved)
		require.NoError(t, err)
		assert.Equal(t, models.InquirySolved, q.Status)

		require.NoError(t, svc.Inquiries.Delete(ctx, q.ID))
		assert.True(t, appErr.IsCode(svc.Inquiries.Delete(ctx, q.ID), appErr.CodeNotFound))

		n := notifications(t, svc)
		require.Len(t, n, 3)
		assert.Equal(t, "Inquiry deleted: Rahul", n[0].Message)
		assert.Equal(t, "Inquiry status changed to solved: Rahul", n[1].Message)
		assert.Equal(t, "New inquiry from Rahul", n[2].Message)
	})
}

func TestNotificationsReadState(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		for _, name := range []string{"One", "Two", "Three"} {
			_, err := svc.Builders.Create(ctx, &BuilderInput{Name: ptr(name)})
			require.NoError(t, err)
		}
		before := notifications(t, svc)
		require.Len(t, before, 3)
		assert.Equal(t, []uint{3, 2, 1}, []uint{before[0].ID, before[1].ID, before[2].ID})

		n, err := svc.Notifications.MarkRead(ctx, 2)
		require.NoError(t, err)
		assert.True(t, n.Read)
		count, err := svc.Notifications.UnreadCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		_, err = svc.Notifications.MarkRead(ctx, 77)
		assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))

		require.NoError(t, svc.Notifications.MarkAllRead(ctx))
		require.NoError(t, svc.Notifications.MarkAllRead(ctx))
		after := notifications(t, svc)
		require.Len(t, after, 3)
		for i := range after {
			assert.Equal(t, before[i].ID, after[i].ID)
			assert.True(t, after[i].Read)
		}
		count, err = svc.Notifications.UnreadCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestActorAttribution(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := WithActor(context.Background(), Actor{ID: 7, Name: "Neha"})

		_, err := svc.Builders.Create(ctx, &BuilderInput{Name: ptr("Sobha")})
		require.NoError(t, err)

		n := notifications(t, svc)
		require.Len(t, n, 1)
		assert.Equal(t, uint(7), n[0].AdminID)
		assert.Equal(t, "Neha", n[0].AdminName)
	})
}

func TestUpdateRejectsBlankRequiredFields(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		a, err := svc.Agents.Create(ctx, &AgentInput{Name: ptr("Priya Sharma")})
		require.NoError(t, err)
		_, err = svc.Agents.Update(ctx, a.ID, &AgentInput{Name: ptr("  ")})
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))
		assert.Equal(t, "name is required", appErr.MessageOf(err))

		b, err := svc.Builders.Create(ctx, &BuilderInput{Name: ptr("DLF")})
		require.NoError(t, err)
		_, err = svc.Builders.Update(ctx, b.ID, &BuilderInput{Name: ptr("")})
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))

		p, err := svc.Properties.Create(ctx, &PropertyInput{
			Title: ptr("Villa"), Price: ptr(1.0), Location: ptr("Goa"), PropertyType: ptr("House"),
		})
		require.NoError(t, err)
		_, err = svc.Properties.Update(ctx, p.ID, &PropertyInput{Location: ptr(""), Price: ptr(-1.0)})
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))
		assert.Contains(t, appErr.MessageOf(err), "location is required")
		assert.Contains(t, appErr.MessageOf(err), "price must be at least 0")

		pr, err := svc.Projects.Create(ctx, &ProjectInput{Title: ptr("Camellias"), Location: ptr("Golf Course Road")})
		require.NoError(t, err)
		_, err = svc.Projects.Update(ctx, pr.ID, &ProjectInput{Title: ptr("")})
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))

		// Nothing was written and nothing was announced past the four creates.
		gotAgent, err := svc.Agents.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", gotAgent.Name)
		gotProperty, err := svc.Properties.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Goa", gotProperty.Location)
		assert.Len(t, notifications(t, svc), 4)

		// Optional fields may still be cleared.
		updated, err := svc.Properties.Update(ctx, p.ID, &PropertyInput{Description: ptr("")})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Description)
	})
}
