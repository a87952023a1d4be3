package services

import "context"

// Actor is the admin a notification is attributed to.
type Actor struct {
	ID   uint
	Name string
}

// SystemActor is used when a request carries no verified admin identity.
var SystemActor = Actor{ID: 1, Name: "Admin User"}

type actorKey struct{}

// WithActor attaches the acting admin to ctx.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the acting admin, or SystemActor.
func ActorFrom(ctx context.Context) Actor {
	if a, ok := ctx.Value(actorKey{}).(Actor); ok {
		return a
	}
	return SystemActor
}
