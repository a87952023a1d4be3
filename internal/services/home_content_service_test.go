package services

import (
	"context"
	"testing"

	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeContentDefaults(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {

		all, err := svc.HomeContent.GetAll(context.Background())
		require.NoError(t, err)
		for _, sec := range []string{"hero", "about", "contact", "properties", "agents", "services", "autoscroll", "typewriter"} {
			assert.Contains(t, all, sec)
		}
		pages := all["autoscroll"].(map[string]any)["pages"].([]any)
		assert.Len(t, pages, 5)
	})
}

func TestHomeContentShallowMerge(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		got, err := svc.HomeContent.UpdateSection(ctx, "contact", map[string]any{"phone": "+91 11111 11111"})
		require.NoError(t, err)
		contact := got.(map[string]any)
		assert.Equal(t, "+91 11111 11111", contact["phone"])
		assert.Equal(t, "info@megareality.com", contact["email"])

		// Non-object values replace the section outright.
		_, err = svc.HomeContent.UpdateSection(ctx, "banner", "Diwali offers")
		require.NoError(t, err)

		all, err := svc.HomeContent.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Diwali offers", all["banner"])
		assert.Equal(t, "+91 11111 11111", all["contact"].(map[string]any)["phone"])

		n := notifications(t, svc)
		require.Len(t, n, 2)
		assert.Equal(t, "Home content updated: banner", n[0].Message)
		assert.Equal(t, "content", n[0].Type)
	})
}

func TestHomeContentReplaceAll(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		all, err := svc.HomeContent.ReplaceAll(ctx, map[string]any{
			"hero": map[string]any{"title": "Only title"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "Only title"}, all["hero"])
		assert.Contains(t, all, "about")

		n := notifications(t, svc)
		require.Len(t, n, 1)
		assert.Equal(t, "Home content replaced", n[0].Message)
	})
}

func TestHomeContentReplaceAllRejectsEmpty(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		for _, content := range []map[string]any{nil, {}} {
			_, err := svc.HomeContent.ReplaceAll(ctx, content)
			assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))
			assert.Equal(t, "Content is required", appErr.MessageOf(err))
		}

		// An unencodable section fails the whole replace before anything is stored.
		_, err := svc.HomeContent.ReplaceAll(ctx, map[string]any{
			"hero":   map[string]any{"title": "Kept out"},
			"broken": func() {},
		})
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))

		all, err := svc.HomeContent.GetAll(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "Kept out", all["hero"].(map[string]any)["title"])
		assert.Empty(t, notifications(t, svc))
	})
}
