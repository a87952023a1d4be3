package memory

import (
	"context"
	"testing"

	"github.com/megareality/estate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestRowsAreCopied(t *testing.T) {
	ctx := context.Background()
	repos := New()

	builder := uint(3)
	p := &models.Property{Title: "Villa", Images: datatypes.JSONSlice[string]{"a.jpg"}, BuilderID: &builder}
	require.NoError(t, repos.Properties.Create(ctx, p))

	p.Images[0] = "mutated.jpg"
	*p.BuilderID = 9

	var got models.Property
	require.NoError(t, repos.Properties.GetByID(ctx, p.ID, &got))
	assert.Equal(t, "a.jpg", got.Images[0])
	assert.Equal(t, uint(3), *got.BuilderID)
}

func TestDeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repos := New()
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repos.Agents.Create(ctx, &models.Agent{Name: name}))
	}
	require.NoError(t, repos.Agents.Delete(ctx, 2))

	all, err := repos.Agents.All(ctx)
	require.NoError(t, err)
	names := []string{}
	for _, a := range all {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"a", "c", "d"}, names)
}

func TestUpdateMissingRow(t *testing.T) {
	repos := New()
	err := repos.Inquiries.Update(context.Background(), &models.Inquiry{ID: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Inquiry not found")
}
